package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Env string `yaml:"env"`
	} `yaml:"server"`

	Token struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"token"`

	Session struct {
		SnapshotPath string `yaml:"snapshot_path"`
	} `yaml:"session"`

	Seed struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"seed"`
}

// Default возвращает конфигурацию по умолчанию: development-режим,
// seed-данные включены, снапшот сессии рядом с бинарником.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Env = "development"
	cfg.Token.Secret = "dev-secret"
	cfg.Token.TTLMinutes = 60
	cfg.Session.SnapshotPath = ".jobboard_session.json"
	cfg.Seed.Enabled = true
	return cfg
}

// Load читает .env, затем config.yaml (путь из CONFIG_PATH или config/config.yaml),
// затем применяет переопределения из переменных окружения.
// Отсутствующий файл конфигурации не ошибка: остаются значения по умолчанию.
func Load() (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		decodeErr := decoder.Decode(cfg)
		f.Close()
		if decodeErr != nil {
			return nil, decodeErr
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Token.Secret = v
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Token.TTLMinutes = ttl
		}
	}
	if v := os.Getenv("SESSION_SNAPSHOT_PATH"); v != "" {
		cfg.Session.SnapshotPath = v
	}
	if v := os.Getenv("SEED_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Seed.Enabled = enabled
		}
	}
}
