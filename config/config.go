package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"planner/pkg/logger"
)

type AppConfig struct {
	Port        string `yaml:"port"`
	Timezone    string `yaml:"timezone"`
	DBDriver    string `yaml:"db_driver"` // sqlite|postgres
	DBPath      string `yaml:"db_path"`
	DatabaseURL string `yaml:"database_url"`
	DatabaseKey string `yaml:"database_key"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
}

func defaults() AppConfig {
	return AppConfig{
		Port:     "8080",
		Timezone: "UTC",
		DBDriver: "sqlite",
		DBPath:   "planner.db",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file, and the
// environment (including a .env file when present). Environment values win.
// An empty path falls back to CONFIG_FILE.
func Load(path string) (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debugf("[cfg] no .env file loaded: %v", err)
	}

	cfg := defaults()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&cfg.Port, "PORT")
	override(&cfg.Timezone, "TZ")
	override(&cfg.DBDriver, "DB_DRIVER")
	override(&cfg.DBPath, "DB_PATH")
	override(&cfg.DatabaseURL, "DATABASE_URL")
	override(&cfg.DatabaseKey, "DATABASE_KEY")
	override(&cfg.LogLevel, "LOG_LEVEL")
	override(&cfg.LogFile, "LOG_FILE")

	return cfg, nil
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logger.Log.Warnf("[cfg] unknown timezone %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// Redacted returns a copy safe to log.
func (c AppConfig) Redacted() AppConfig {
	if c.DatabaseKey != "" {
		c.DatabaseKey = "***"
	}
	return c
}
