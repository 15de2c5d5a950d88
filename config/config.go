package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`

	DBDriver   string `mapstructure:"db_driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	DBName     string `mapstructure:"dbname"`
	User_DB    string `mapstructure:"userdb"`
	PasswordDB string `mapstructure:"passworddb"`
	SSLMode    string `mapstructure:"sslmode"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	CORSOrigins []string `mapstructure:"cors_origins"`

	Admins     []int64 `mapstructure:"admins"`
	TgApiToken string  `mapstructure:"tg_api_token"`
}

// InitConfig читает config.yaml из dir (если он есть) и накладывает
// переменные окружения с префиксом STATS_.
func InitConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("sqlite_path", "estadisticas_deportivas.db")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 5432)
	v.SetDefault("dbname", "estadisticas")
	v.SetDefault("userdb", "postgres")
	v.SetDefault("passworddb", "")
	v.SetDefault("sslmode", "disable")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("admins", []int64{})
	v.SetDefault("tg_api_token", "")

	v.SetEnvPrefix("STATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported db_driver %q", cfg.DBDriver)
	}
	return &cfg, nil
}

// PostgresDSN собирает строку подключения в формате key=value.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		c.Host, c.User_DB, c.PasswordDB, c.DBName, c.Port, c.SSLMode)
}
