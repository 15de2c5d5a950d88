package bot

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"

	"sports-stats/config"
	"sports-stats/internal/db"
	"sports-stats/internal/logger"
	"sports-stats/internal/models"
	stH "sports-stats/internal/statsHandlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok, "ожидалось текстовое сообщение")
	return msg.Text
}

const adminChat int64 = 42

func setup(t *testing.T) (*Bot, *fakeSender) {
	t.Helper()
	DB, err := db.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)

	lions := models.Team{Name: "Lions"}
	require.NoError(t, DB.Create(&lions).Error)
	require.NoError(t, DB.Create(&models.Player{Name: "Ana", Number: 9, TeamID: lions.ID}).Error)

	s := &fakeSender{}
	b := newBot(&config.Config{Admins: []int64{adminChat}}, DB, logger.Discard(), s)
	_, err = b.Stats.CreateStatistic(stH.StatisticInput{TeamID: lions.ID, Wins: 6, Draws: 2, Losses: 2})
	require.NoError(t, err)
	return b, s
}

func command(chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: chatID},
	}
}

func TestFormatTeams(t *testing.T) {
	assert.Equal(t, "No hay equipos registrados.", FormatTeams(nil))
	assert.Equal(t, "Equipos:\n1. Lions\n2. Wolves",
		FormatTeams([]models.Team{{Name: "Lions"}, {Name: "Wolves"}}))
}

func TestFormatPlayers(t *testing.T) {
	assert.Equal(t, "El equipo Lions no tiene jugadores.", FormatPlayers(&models.Team{Name: "Lions"}))

	team := &models.Team{Name: "Lions", Players: []models.Player{{Name: "Ana", Number: 9}, {Name: "Eva", Number: 10}}}
	assert.Equal(t, "Jugadores de Lions:\n#9 Ana\n#10 Eva", FormatPlayers(team))
}

func TestFormatStatistics(t *testing.T) {
	assert.Equal(t, "No hay estadísticas.", FormatStatistics(nil))

	s := models.Statistic{Team: &models.Team{Name: "Lions"}, MatchRecord: models.MatchRecord{Wins: 6, Draws: 2, Losses: 2}}
	s.Recompute()
	assert.Equal(t, "Equipo Lions - Prob. Ganar: 60.00%, Prob. Perder: 20.00% (PG 6, PE 2, PP 2)",
		FormatStatistics([]models.Statistic{s}))
}

func TestCommands(t *testing.T) {
	b, s := setup(t)

	b.processCommand(command(1, "/start"))
	assert.Equal(t, startMessage, s.lastText(t))

	b.processCommand(command(1, "/teams"))
	assert.Equal(t, "Equipos:\n1. Lions", s.lastText(t))

	b.processCommand(command(1, "/players Lions"))
	assert.Equal(t, "Jugadores de Lions:\n#9 Ana", s.lastText(t))

	b.processCommand(command(1, "/players@stats_bot   Lions  "))
	assert.Equal(t, "Jugadores de Lions:\n#9 Ana", s.lastText(t))

	b.processCommand(command(1, "/players Tigers"))
	assert.Equal(t, "Equipo no encontrado.", s.lastText(t))

	b.processCommand(command(1, "/players"))
	assert.Contains(t, s.lastText(t), "/players NOMBRE_DEL_EQUIPO")

	b.processCommand(command(1, "/stats"))
	assert.Contains(t, s.lastText(t), "Prob. Ganar: 60.00%")

	b.processCommand(command(1, "/unknown"))
	assert.Contains(t, s.lastText(t), "Comando desconocido")
}

func TestReportRequiresAdmin(t *testing.T) {
	b, s := setup(t)

	b.processCommand(command(1, "/report"))
	assert.Equal(t, "No tiene permisos para ejecutar este comando.", s.lastText(t))
}

func TestReportSendsPDF(t *testing.T) {
	b, s := setup(t)

	b.processCommand(command(adminChat, "/report"))
	require.Len(t, s.sent, 1)

	doc, ok := s.sent[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, adminChat, doc.ChatID)

	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "informe.pdf", file.Name)
	assert.True(t, bytes.HasPrefix(file.Bytes, []byte("%PDF-")))
}
