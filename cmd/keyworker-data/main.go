package main

import (
	"context"
	"fmt"
	"os"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"
	"keyworker-data/internal/logger"
	"keyworker-data/internal/repository"
	"keyworker-data/internal/service"

	"go.uber.org/zap"
)

// Initializes (or migrates) the database file the desktop UI runs against:
// creates the schema, applies additive column guards, and seeds the default
// supervisor account on a fresh install.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "keyworker-data")
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		log.Fatal("open database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer db.Close()

	if err := repository.CreateSchema(db); err != nil {
		log.Fatal("create schema", zap.Error(err))
	}

	ctx := context.Background()
	app := service.NewApp(db, log)

	created, err := app.Bootstrap(ctx, cfg.Bootstrap.SupervisorPassword)
	if err != nil {
		log.Fatal("bootstrap supervisor", zap.Error(err))
	}
	if created {
		log.Info("default supervisor account created; password change is forced on first login")
	}

	residents, err := app.Residents.List(ctx)
	if err != nil {
		log.Fatal("list residents", zap.Error(err))
	}

	log.Info("database ready",
		zap.String("path", cfg.Database.Path),
		zap.Int("residents", len(residents)))
}
