package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/lgasparetto/geoverify/gen/ent"
)

// OpenSQLite opens a local SQLite store for the batch CLI, which runs on
// clerk workstations without a Postgres around. Pass ":memory:" for a
// throwaway store. The schema is created on open.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	if path == ":memory:" {
		dsn = "file::memory:?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite store", "path", path, "error", err)
		return nil, err
	}
	// modernc sqlite is single-writer
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to migrate sqlite store", "path", path, "error", err)
		return nil, err
	}

	logger.Info("sqlite store ready", "path", path)
	return client, nil
}
