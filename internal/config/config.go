package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const (
	DirectoryStatic   = "static"
	DirectoryPostgres = "postgres"
)

type Config struct {
	Primary   Primary        `koanf:"primary"`
	Server    ServerConfig   `koanf:"server"`
	Auth      AuthConfig     `koanf:"auth"`
	Directory string         `koanf:"directory" validate:"required,oneof=static postgres"`
	Database  DatabaseConfig `koanf:"database"`
	Logger    LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// AuthConfig holds the shared-secret material and the timestamp freshness
// window. Partners maps partner reference numbers to plaintext passwords;
// in deployments with directory=postgres the map is only used to seed the
// partners table.
type AuthConfig struct {
	TimestampWindow time.Duration     `koanf:"timestamp_window" validate:"required"`
	Partners        map[string]string `koanf:"partners" validate:"required,min=1"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// defaults carries the built-in configuration, including the fixed partner
// set the service has always shipped with. Environment variables with the
// GATEWAY_ prefix override scalar values.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":           "development",
		"server.port":           "8080",
		"server.read_timeout":   "15s",
		"server.write_timeout":  "15s",
		"server.idle_timeout":   "60s",
		"auth.timestamp_window": "5m",
		"auth.partners": map[string]string{
			"FG-00001": "FAKEPASSWORD1234",
			"FG-00002": "FAKEPASSWORD4578",
		},
		"directory":    DirectoryStatic,
		"logger.level": "info",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
