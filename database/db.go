package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/config"
)

// DB wraps the shared connection pool. Every handler issues independent
// statements through it; there are no cross-statement transactions.
type DB struct {
	Pool   *pgxpool.Pool
	logger *log.Logger
}

// Open creates a tuned connection pool without contacting the server.
// Connections are made on first use, so statements against an unreachable
// database fail individually instead of preventing startup.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *log.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime.Duration > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime.Duration
	}
	if cfg.MaxConnIdleTime.Duration > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime.Duration
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{Pool: pool, logger: logger}, nil
}

// Connect opens the pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *log.Logger) (*DB, error) {
	db, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Pool.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	db.logger.Info("Database connection established", "max_conns", db.Pool.Config().MaxConns)
	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
	db.logger.Info("Database connection closed")
}
