// Package sqlite adaptador de persistencia del snapshot sobre un archivo SQLite (go-sqlite3).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/carneiro-api/internal/domain"
)

// Open abre (o crea) la base en path y aplica el esquema.
// Una sola conexión: SQLite serializa las escrituras de todos modos.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir sqlite: %w", domain.ErrStorage, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %w", domain.ErrStorage, err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate crea la tabla del snapshot si no existe.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_snapshot (
			partition  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("%w: migrar sqlite: %w", domain.ErrStorage, err)
	}
	return nil
}
