package db

import (
	"fmt"
	"time"

	"sports-stats/config"
	"sports-stats/internal/models"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDatabase открывает базу из конфигурации и выполняет миграцию схемы.
func InitDatabase(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.PostgresDSN(),
		})
	default:
		dialector = sqliteDialector(cfg.SQLitePath)
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	DB, err := open(dialector, gormCfg, cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.DBDriver).Info("Подключение к базе данных установлено")
	return DB, nil
}

// Open открывает SQLite-файл по пути path с миграцией схемы. Используется
// тестами и локальными инструментами.
func Open(path string) (*gorm.DB, error) {
	return open(sqliteDialector(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}, config.DriverSQLite)
}

func sqliteDialector(path string) gorm.Dialector {
	// SQLite должна проверять внешние ключи на каждом соединении.
	return gormsqlite.New(gormsqlite.Config{
		DSN:        path + "?_pragma=foreign_keys(1)",
		DriverName: "sqlite",
	})
}

func open(dialector gorm.Dialector, gormCfg *gorm.Config, driver string) (*gorm.DB, error) {
	DB, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(DB); err != nil {
		return nil, err
	}
	return DB, nil
}

// Migrate создаёт таблицы team, player и statistic.
func Migrate(DB *gorm.DB) error {
	if err := DB.AutoMigrate(&models.Team{}, &models.Player{}, &models.Statistic{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
