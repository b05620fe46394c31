package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/config"
	"taskboard/logging"
)

// testDB is nil when TestMain could not reach Postgres.
var testDB *DB

// openTestDB connects to dbURL and applies the embedded migrations.
func openTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Default().Database
	cfg.URL = dbURL
	cfg.MinConns = 1

	db, err := Connect(ctx, cfg, logging.Discard())
	if err != nil {
		return nil, err
	}
	if err := db.Bootstrap(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// freshDB returns the shared database with both tables emptied, or skips
// the test under -short or without Postgres.
func freshDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if testDB == nil {
		t.Skip("postgres not available")
	}

	_, err := testDB.Pool.Exec(context.Background(), "TRUNCATE TABLE tasks, projects CASCADE")
	require.NoError(t, err)
	return testDB
}
