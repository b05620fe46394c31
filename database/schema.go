package database

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// gooseLogger routes goose output through the service logger.
// Fatalf is downgraded to an error so a failed migration never exits the process.
type gooseLogger struct {
	logger *log.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate runs a goose command (up, down, status, reset, version, ...) with the
// embedded migrations over a database/sql view of the pool.
func (db *DB) Migrate(ctx context.Context, command string, args ...string) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: db.logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

// Bootstrap idempotently ensures the projects and tasks tables exist.
// Failure is logged and returned; the server keeps starting regardless.
func (db *DB) Bootstrap(ctx context.Context) error {
	if err := db.Migrate(ctx, "up"); err != nil {
		db.logger.Error("Database initialization error", "err", err)
		return err
	}
	db.logger.Info("Database schema ready")
	return nil
}
