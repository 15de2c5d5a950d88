package db

import (
	"path/filepath"
	"testing"

	"sports-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigratesSchema(t *testing.T) {
	DB, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	for _, table := range []string{"team", "player", "statistic"} {
		assert.True(t, DB.Migrator().HasTable(table), table)
	}
	assert.True(t, DB.Migrator().HasColumn(&models.Statistic{}, "win_probability"))
	assert.True(t, DB.Migrator().HasColumn(&models.Statistic{}, "wins"))
}

func TestForeignKeysEnforced(t *testing.T) {
	DB, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	err = DB.Create(&models.Player{Name: "Ghost", Number: 9, TeamID: 42}).Error
	assert.Error(t, err)
}

func TestTeamNameUnique(t *testing.T) {
	DB, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	require.NoError(t, DB.Create(&models.Team{Name: "Lions"}).Error)
	assert.Error(t, DB.Create(&models.Team{Name: "Lions"}).Error)
}
