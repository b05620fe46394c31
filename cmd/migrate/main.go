package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"taskboard/config"
	"taskboard/database"
	"taskboard/logging"
)

const usage = `usage: migrate [command]

commands:
  up        apply all pending migrations (default)
  down      roll back the most recent migration
  status    print the state of every migration
  reset     roll back all migrations
  version   print the current schema version`

var commands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"reset":   true,
	"version": true,
}

func main() {
	godotenv.Load()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if !commands[command] {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	logger := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "migrate",
	})

	lock := flock.New(filepath.Join(os.TempDir(), "taskboard-migrate.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		logger.Fatal("Failed to acquire migration lock", "err", err)
	}
	if !locked {
		logger.Fatal("Another migration is already running")
	}
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout.Duration)
	db, err := database.Connect(ctx, cfg.Database, logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect", "err", err)
	}
	defer db.Close()

	if err := db.Migrate(context.Background(), command); err != nil {
		logger.Error("Migration failed", "command", command, "err", err)
		db.Close()
		lock.Unlock()
		os.Exit(1)
	}

	logger.Info("Migration complete", "command", command)
}
