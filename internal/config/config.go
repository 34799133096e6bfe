package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Session SessionConfig
	CORS    CORSConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	Driver string
	DSN    string
	Key    string
}

type SessionConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AdminConfig struct {
	Email    string
	Password string
}

// переменные окружения, как и раньше, без префикса
var envKeys = map[string]string{
	"server.port":          "SERVER_PORT",
	"storage.driver":       "DB_DRIVER",
	"storage.dsn":          "DB_DSN",
	"storage.key":          "STORAGE_KEY",
	"session.secret":       "SESSION_SECRET",
	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	"admin.email":          "ADMIN_EMAIL",
	"admin.password":       "ADMIN_PASSWORD",
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server.port", "8080")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.dsn", "staff-portal.db")
	v.SetDefault("storage.key", "staff_portal_v1")
	v.SetDefault("session.secret", "")
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "Password123!")

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	// необязательный файл конфигурации (yaml/toml/json)
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.Driver != DriverMemory && c.Storage.DSN == "" {
		return errors.New("DB_DSN is not set")
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	return nil
}
