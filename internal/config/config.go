package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Storage struct {
		Driver     string `yaml:"driver"` // file, sqlite, redis or memory
		FilePath   string `yaml:"file_path"`
		SQLitePath string `yaml:"sqlite_path"`
		RedisAddr  string `yaml:"redis_addr"`
		RedisDB    int    `yaml:"redis_db"`
		Key        string `yaml:"key"`
	} `yaml:"storage"`
	Recorder struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"recorder"`
	Schedule struct {
		DigestCron string `yaml:"digest_cron"`
		StreakCron string `yaml:"streak_cron"`
	} `yaml:"schedule"`
	Telemetry struct {
		TextfilePath string `yaml:"textfile_path"`
	} `yaml:"telemetry"`
	Presets struct {
		ExtraFile string `yaml:"extra_file"`
	} `yaml:"presets"`
	Practice struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"practice"`
}

// Load reads config from a YAML file, then .env, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// A missing .env is fine; variables already set win.
	_ = godotenv.Load()

	// Environment variable overrides
	if v := os.Getenv("FUNDLENS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FUNDLENS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("FUNDLENS_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("FUNDLENS_STORAGE_FILE_PATH"); v != "" {
		cfg.Storage.FilePath = v
	}
	if v := os.Getenv("FUNDLENS_STORAGE_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_DB: %w", err)
		}
		cfg.Storage.RedisDB = db
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Recorder.SQLitePath = v
	}
	if v := os.Getenv("CRON_DIGEST"); v != "" {
		cfg.Schedule.DigestCron = v
	}
	if v := os.Getenv("CRON_STREAK"); v != "" {
		cfg.Schedule.StreakCron = v
	}
	if v := os.Getenv("TEXTFILE_PATH"); v != "" {
		cfg.Telemetry.TextfilePath = v
	}
	if v := os.Getenv("FUNDLENS_PRESETS_FILE"); v != "" {
		cfg.Presets.ExtraFile = v
	}
	if v := os.Getenv("FUNDLENS_TIMEZONE"); v != "" {
		cfg.Practice.Timezone = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "file"
	}
	if cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = "data"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/fundlens.db"
	}
	if cfg.Storage.RedisAddr == "" {
		cfg.Storage.RedisAddr = "localhost:6379"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "vc-dashboard-progress"
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 0 9 * * *"
	}
	if cfg.Schedule.StreakCron == "" {
		cfg.Schedule.StreakCron = "0 0 20 * * *"
	}
	if cfg.Practice.Timezone == "" {
		cfg.Practice.Timezone = "UTC"
	}

	return cfg, nil
}

// Location resolves practice.timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Practice.Timezone)
	if err != nil {
		return nil, fmt.Errorf("practice.timezone: %w", err)
	}
	return loc, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Storage.Driver {
	case "file", "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("storage.driver must be one of file, sqlite, redis, memory")
	}
	if c.Storage.RedisDB < 0 {
		return fmt.Errorf("storage.redis_db must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
