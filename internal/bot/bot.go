package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"sports-stats/config"
	"sports-stats/internal/models"
	"sports-stats/internal/report"
	stH "sports-stats/internal/statsHandlers"
	tmH "sports-stats/internal/teamHandlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sender — часть BotAPI, через которую бот отвечает в чат.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot отвечает на команды только для чтения; /report доступен администраторам.
type Bot struct {
	API    *tgbotapi.BotAPI
	Config *config.Config
	Log    logrus.FieldLogger

	Teams *tmH.Handler
	Stats *stH.Handler

	sender sender
	now    func() time.Time
}

// NewBot авторизуется в Telegram по tg_api_token.
func NewBot(cfg *config.Config, DB *gorm.DB, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TgApiToken)
	if err != nil {
		return nil, err
	}

	b := newBot(cfg, DB, log, api)
	b.API = api
	return b, nil
}

func newBot(cfg *config.Config, DB *gorm.DB, log logrus.FieldLogger, s sender) *Bot {
	handler := models.Handler{DB: DB, Log: log}
	return &Bot{
		Config: cfg,
		Log:    log,
		Teams:  &tmH.Handler{Handler: handler},
		Stats:  &stH.Handler{Handler: handler},
		sender: s,
		now:    time.Now,
	}
}

// Run получает обновления до отмены ctx.
func (b *Bot) Run(ctx context.Context) {
	b.Log.Infof("Авторизация выполнена на аккаунте %s", b.API.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			b.Log.Info("Бот остановлен")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				go b.processCommand(update.Message)
			}
		}
	}
}

// processCommand разбирает команду вида "/cmd[@bot] аргументы".
func (b *Bot) processCommand(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	parts := strings.SplitN(strings.TrimSpace(msg.Text), " ", 2)
	command, _, _ := strings.Cut(parts[0], "@")
	var args string
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}

	b.Log.WithFields(logrus.Fields{"chat_id": chatID, "command": command}).Debug("Команда бота")

	switch command {
	case "/start":
		b.sendMessage(chatID, startMessage)
	case "/teams":
		teams, err := b.Teams.ListTeams()
		if err != nil {
			b.fail(chatID, err)
			return
		}
		b.sendMessage(chatID, FormatTeams(teams))
	case "/players":
		// Формат: /players <имя команды>
		if args == "" {
			b.sendMessage(chatID, "Use el formato: /players NOMBRE_DEL_EQUIPO")
			return
		}
		team, err := b.Teams.GetTeamByName(args)
		if errors.Is(err, tmH.ErrTeamNotFound) {
			b.sendMessage(chatID, "Equipo no encontrado.")
			return
		} else if err != nil {
			b.fail(chatID, err)
			return
		}
		b.sendMessage(chatID, FormatPlayers(team))
	case "/stats":
		stats, err := b.Stats.ListStatistics()
		if err != nil {
			b.fail(chatID, err)
			return
		}
		b.sendMessage(chatID, FormatStatistics(stats))
	case "/report":
		if !b.isAdmin(chatID) {
			b.sendMessage(chatID, "No tiene permisos para ejecutar este comando.")
			return
		}
		b.sendReport(chatID)
	default:
		b.sendMessage(chatID, "Comando desconocido. Use /start para ver la lista de comandos.")
	}
}

func (b *Bot) sendReport(chatID int64) {
	stats, err := b.Stats.ListStatistics()
	if err != nil {
		b.fail(chatID, err)
		return
	}
	data, err := report.Generate(stats, report.Options{GeneratedAt: b.now()})
	if err != nil {
		b.fail(chatID, err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: report.FileName, Bytes: data})
	doc.Caption = report.Title
	if _, err := b.sender.Send(doc); err != nil {
		b.Log.WithError(err).WithField("chat_id", chatID).Error("Не удалось отправить отчёт")
	}
}

// isAdmin проверяет, является ли пользователь администратором.
func (b *Bot) isAdmin(chatID int64) bool {
	for _, admin := range b.Config.Admins {
		if admin == chatID {
			return true
		}
	}
	return false
}

func (b *Bot) fail(chatID int64, err error) {
	b.Log.WithError(err).WithField("chat_id", chatID).Error("Ошибка обработки команды")
	b.sendMessage(chatID, "Error interno. Inténtelo más tarde.")
}

// sendMessage отправляет сообщение в чат.
func (b *Bot) sendMessage(chatID int64, text string) {
	if _, err := b.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.Log.WithError(err).WithField("chat_id", chatID).Error("Не удалось отправить сообщение")
	}
}
