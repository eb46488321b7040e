package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"
	"keyworker-data/internal/logger"
	"keyworker-data/internal/repository"
	"keyworker-data/internal/service"

	"go.uber.org/zap"
)

// Emergency reset for the supervisor account when the password has been
// lost. The new password is temporary: first_login is set, so the next
// login forces a change.
func main() {
	password := flag.String("password", "", "temporary password to set (required)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: reset-supervisor -password <temporary password>")
		os.Exit(2)
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "reset-supervisor")
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

	ctx := context.Background()
	users := repository.NewSQLiteUsersRepository(db)

	supervisor, err := users.GetByUsername(ctx, "supervisor")
	if err != nil {
		log.Fatal("look up supervisor", zap.Error(err))
	}
	if supervisor == nil {
		log.Fatal("no supervisor account exists; run keyworker-data to seed one")
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatal("hash password", zap.Error(err))
	}
	if err := users.SetPasswordHash(ctx, supervisor.ID, hash, true); err != nil {
		log.Fatal("reset password", zap.Error(err))
	}

	activity := repository.NewSQLiteActivityRepository(db)
	if err := activity.Record(ctx, "supervisor", "RESET PASSWORD", "Supervisor password reset from the command line."); err != nil {
		log.Warn("audit write failed", zap.Error(err))
	}

	log.Info("supervisor password reset; change is forced on next login")
}
