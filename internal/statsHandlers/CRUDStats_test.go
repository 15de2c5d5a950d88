package statshandlers

import (
	"path/filepath"
	"testing"

	"sports-stats/internal/db"
	"sports-stats/internal/logger"
	"sports-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Handler, models.Team) {
	t.Helper()
	DB, err := db.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	team := models.Team{Name: "Lions"}
	require.NoError(t, DB.Create(&team).Error)
	return &Handler{models.Handler{DB: DB, Log: logger.Discard()}}, team
}

func TestCreateStatisticRecomputes(t *testing.T) {
	h, team := setup(t)

	stat, err := h.CreateStatistic(StatisticInput{TeamID: team.ID, Wins: 6, Draws: 2, Losses: 2, Goals: 14})
	require.NoError(t, err)
	assert.InDelta(t, 60.0, stat.WinProbability, 1e-9)
	assert.InDelta(t, 20.0, stat.LossProbability, 1e-9)

	var stored models.Statistic
	require.NoError(t, h.DB.First(&stored, stat.ID).Error)
	assert.InDelta(t, 60.0, stored.WinProbability, 1e-9)
	assert.InDelta(t, 20.0, stored.LossProbability, 1e-9)
	assert.Equal(t, 14, stored.Goals)
}

func TestCreateStatisticWithoutMatches(t *testing.T) {
	h, team := setup(t)

	stat, err := h.CreateStatistic(StatisticInput{TeamID: team.ID})
	require.NoError(t, err)
	assert.Zero(t, stat.WinProbability)
	assert.Zero(t, stat.LossProbability)
}

func TestUpdateStatisticRecomputes(t *testing.T) {
	h, team := setup(t)

	stat, err := h.CreateStatistic(StatisticInput{TeamID: team.ID, Wins: 6, Draws: 2, Losses: 2})
	require.NoError(t, err)

	updated, err := h.UpdateStatistic(stat.ID, StatisticInput{TeamID: team.ID, Wins: 1, Draws: 0, Losses: 3})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, updated.WinProbability, 1e-9)
	assert.InDelta(t, 75.0, updated.LossProbability, 1e-9)

	got, err := h.GetStatisticByID(stat.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got.WinProbability, 1e-9)
	assert.InDelta(t, 75.0, got.LossProbability, 1e-9)
	assert.Equal(t, "Lions", got.TeamName())

	_, err = h.UpdateStatistic(9999, StatisticInput{TeamID: team.ID})
	assert.ErrorIs(t, err, ErrStatisticNotFound)
}

func TestCreateStatisticUnknownTeam(t *testing.T) {
	h, _ := setup(t)

	_, err := h.CreateStatistic(StatisticInput{TeamID: 9999, Wins: 1})
	assert.Error(t, err)

	stats, err := h.ListStatistics()
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestListAndDeleteStatistics(t *testing.T) {
	h, team := setup(t)
	wolves := models.Team{Name: "Wolves"}
	require.NoError(t, h.DB.Create(&wolves).Error)

	first, err := h.CreateStatistic(StatisticInput{TeamID: team.ID, Wins: 6, Draws: 2, Losses: 2})
	require.NoError(t, err)
	_, err = h.CreateStatistic(StatisticInput{TeamID: wolves.ID})
	require.NoError(t, err)

	stats, err := h.ListStatistics()
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Lions", stats[0].TeamName())
	assert.Equal(t, "Wolves", stats[1].TeamName())

	page, err := h.PageStatistics(1, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Pages)

	require.NoError(t, h.DeleteStatistic(first.ID))
	assert.ErrorIs(t, h.DeleteStatistic(first.ID), ErrStatisticNotFound)
	_, err = h.GetStatisticByID(first.ID)
	assert.ErrorIs(t, err, ErrStatisticNotFound)
}
