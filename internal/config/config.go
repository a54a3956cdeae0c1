package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPgx  = "pgx"
	DriverGorm = "gorm"
)

type Config struct {
	Port          int
	AllowOrigins  []string
	Database      DatabaseConfig
	Vocabulary    VocabularyConfig
	RedisAddr     string
	RedisPassword string
}

type DatabaseConfig struct {
	Driver        string
	Connection    string
	Host          string
	Port          string
	Username      string
	Password      string
	Database      string
	Schema        string
	AdminUser     string
	AdminPassword string
}

type VocabularyConfig struct {
	URL      string
	CacheTTL time.Duration
	Timeout  time.Duration
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		AllowOrigins:  splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Database: DatabaseConfig{
			Driver:        strings.ToLower(getEnv("DB_DRIVER", DriverPgx)),
			Connection:    getEnv("DB_CONNECTION", "default"),
			Host:          os.Getenv("DB_HOST"),
			Port:          getEnv("DB_PORT", "5432"),
			Username:      os.Getenv("DB_USERNAME"),
			Password:      os.Getenv("DB_PASSWORD"),
			Database:      os.Getenv("DB_DATABASE"),
			Schema:        getEnv("DB_SCHEMA", "public"),
			AdminUser:     os.Getenv("DB_ADMIN_USER"),
			AdminPassword: os.Getenv("DB_ADMIN_PASSWORD"),
		},
		Vocabulary: VocabularyConfig{
			URL: os.Getenv("VOCABULARY_URL"),
		},
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	if cfg.Vocabulary.CacheTTL, err = time.ParseDuration(getEnv("VOCABULARY_CACHE_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("invalid VOCABULARY_CACHE_TTL: %w", err)
	}
	if cfg.Vocabulary.Timeout, err = time.ParseDuration(getEnv("VOCABULARY_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid VOCABULARY_TIMEOUT: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Configured reports whether enough settings are present to open a connection.
func (c DatabaseConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Database != ""
}

func (c DatabaseConfig) validate() error {
	switch c.Driver {
	case DriverPgx, DriverGorm:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (want %s or %s)", c.Driver, DriverPgx, DriverGorm)
	}
	if !c.Configured() {
		log.Println("Database configuration incomplete: DB_HOST, DB_USERNAME and DB_DATABASE are required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
