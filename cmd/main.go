package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sports-stats/config"
	wsh "sports-stats/internal/WSH"
	"sports-stats/internal/bot"
	dbpkg "sports-stats/internal/db"
	"sports-stats/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	configDir := flag.String("config", "config", "каталог с config.yaml")
	flag.Parse()

	// Инициализация конфигурации
	cfg, err := config.InitConfig(*configDir)
	if err != nil {
		logrus.Fatalf("Ошибка инициализации конфигурации: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация базы данных
	DB, err := dbpkg.InitDatabase(cfg, log)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}

	server, err := wsh.NewServer(cfg, DB, log)
	if err != nil {
		log.Fatalf("Не удалось инициализировать веб-сервер: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Бот запускается, только если задан токен
	if cfg.TgApiToken != "" {
		tgBot, err := bot.NewBot(cfg, DB, log)
		if err != nil {
			log.Fatalf("Не удалось инициализировать бота: %v", err)
		}
		go tgBot.Run(ctx)
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Ошибка остановки сервера")
	}

	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Сервер остановлен")
}
