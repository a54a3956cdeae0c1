package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"microdata/internal/config"
	"microdata/internal/database"
	"microdata/internal/repositories"
	"microdata/internal/services"
	"microdata/internal/vocabulary"
)

type Options struct {
	// RefreshVocabulary bypasses the cache and downloads the document again.
	RefreshVocabulary bool
}

// App holds the wired dependencies shared by the shell and the HTTP API.
type App struct {
	Config        *config.Config
	SchemaService *services.SchemaService
	VocabularyURL string
	closers       []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func Bootstrap(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg}

	backend, err := openBackend(ctx, app, cfg.Database)
	if err != nil {
		app.Close()
		return nil, err
	}

	fetcher := vocabulary.NewFetcher(cfg.Vocabulary.URL, &http.Client{Timeout: cfg.Vocabulary.Timeout})
	app.VocabularyURL = fetcher.URL()
	loader := vocabulary.NewLoader(openCache(ctx, app, cfg), fetcher)

	doc, err := loadVocabulary(ctx, loader, fetcher.URL(), opts.RefreshVocabulary)
	if err != nil {
		log.Printf("Vocabulary unavailable: %v", err)
	}

	app.SchemaService = services.NewSchemaService(doc, services.NewMaterializer(backend), cfg.Database.Connection)
	return app, nil
}

func loadVocabulary(ctx context.Context, loader *vocabulary.Loader, url string, refresh bool) (*vocabulary.Document, error) {
	if refresh {
		log.Printf("Downloading %s", url)
		return loader.Refresh(ctx)
	}
	return loader.Load(ctx)
}

func openBackend(ctx context.Context, app *App, cfg config.DatabaseConfig) (services.Backend, error) {
	switch cfg.Driver {
	case config.DriverGorm:
		db, err := database.OpenGorm(cfg)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			app.closers = append(app.closers, func() { sqlDB.Close() })
		}
		return repositories.NewGormTableRepository(db, cfg.Connection), nil
	default:
		if err := database.EnsureDatabaseExists(ctx, cfg); err != nil {
			return nil, err
		}
		pool, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() {
			pool.Close()
			log.Println("Database connection pool closed")
		})
		return repositories.NewTableRepository(pool, cfg.Connection, cfg.Schema), nil
	}
}

// openCache returns a Redis-backed cache when REDIS_ADDR is set and
// reachable, and a process-local cache otherwise.
func openCache(ctx context.Context, app *App, cfg *config.Config) vocabulary.Cache {
	if cfg.RedisAddr == "" {
		return vocabulary.NewMemoryCache()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("failed to connect to Redis at %s, using in-memory cache: %v", cfg.RedisAddr, err)
		rdb.Close()
		return vocabulary.NewMemoryCache()
	}
	log.Println("Connected to Redis successfully")

	app.closers = append(app.closers, func() { rdb.Close() })
	return repositories.NewVocabularyCacheRepository(rdb, cfg.Vocabulary.CacheTTL)
}
