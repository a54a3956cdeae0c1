package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microdata/internal/config"
)

func dsn(user, password, host, port, database string) string {
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	)
}

// EnsureDatabaseExists creates the target database with the admin
// credentials when it is missing. It is a no-op without DB_ADMIN_USER.
func EnsureDatabaseExists(ctx context.Context, cfg config.DatabaseConfig) error {
	if cfg.AdminUser == "" {
		return nil
	}

	log.Printf("Checking if database '%s' exists...", cfg.Database)

	pool, err := pgxpool.New(ctx, dsn(cfg.AdminUser, cfg.AdminPassword, cfg.Host, cfg.Port, "postgres"))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Printf("Database '%s' already exists", cfg.Database)
		return nil
	}

	log.Printf("Database '%s' does not exist. Creating it...", cfg.Database)
	// CREATE DATABASE cannot run inside a transaction
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Database}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database '%s' created successfully", cfg.Database)
	return nil
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("database %q is not configured", cfg.Connection)
	}

	log.Printf("Connecting to database: postgres://%s:***@%s:%s/%s", cfg.Username, cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn(cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return pool, nil
}

// gormDSN is the URL form of the connection string with the session time
// zone and search path passed as runtime parameters.
func gormDSN(cfg config.DatabaseConfig) string {
	params := url.Values{}
	params.Set("TimeZone", "UTC")
	if cfg.Schema != "" {
		params.Set("search_path", cfg.Schema)
	}
	return dsn(cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database) + "&" + params.Encode()
}

// OpenGorm opens the same database through gorm, with the search path set
// to the configured schema.
func OpenGorm(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("database %q is not configured", cfg.Connection)
	}

	db, err := gorm.Open(postgres.Open(gormDSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully (gorm)")
	return db, nil
}
