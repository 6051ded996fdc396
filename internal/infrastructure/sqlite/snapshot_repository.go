package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo una fila por partición en app_snapshot.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load lee las particiones; (nil, nil) si la tabla está vacía.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT partition, payload FROM app_snapshot`)
	if err != nil {
		return nil, fmt.Errorf("%w: leer snapshot: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	parts := make(map[string][]byte, len(entity.Partitions))
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("%w: scan snapshot: %w", domain.ErrStorage, err)
		}
		parts[key] = []byte(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar snapshot: %w", domain.ErrStorage, err)
	}
	return entity.DecodePartitions(parts)
}

// Save reemplaza las cinco particiones en una transacción.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	parts, err := snap.EncodePartitions()
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", domain.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().Unix()
	for _, key := range entity.Partitions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO app_snapshot (partition, payload, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(partition) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
			key, string(parts[key]), now)
		if err != nil {
			return fmt.Errorf("%w: guardar partición %s: %w", domain.ErrStorage, key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrStorage, err)
	}
	return nil
}
