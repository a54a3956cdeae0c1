package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"microdata/internal/config"
	"microdata/internal/server"
	"microdata/internal/shell"
)

func main() {
	refresh := flag.Bool("refresh", false, "download the vocabulary again instead of using the cache")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if !cfg.Database.Configured() {
		log.Fatalln("Your database configuration was not found. Set DB_HOST, DB_USERNAME and DB_DATABASE (or use a .env file).")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.Bootstrap(ctx, cfg, server.Options{RefreshVocabulary: *refresh})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()

	sh := shell.New(app.SchemaService, os.Stdin, os.Stdout, app.VocabularyURL)
	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("shell: %v", err)
	}
}
