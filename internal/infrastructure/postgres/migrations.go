package postgres

import "context"

// schema tablas del snapshot. product_stock_view es una proyección de solo lectura para reportes externos
// y se reescribe completa en cada Save.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS app_snapshot (
		partition  TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS product_stock_view (
		product_id TEXT PRIMARY KEY,
		sku        TEXT NOT NULL,
		name       TEXT NOT NULL,
		stock      NUMERIC(18,4) NOT NULL,
		min_stock  NUMERIC(18,4) NOT NULL,
		low_stock  BOOLEAN NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return storageErr("migrar esquema", err)
		}
	}
	return nil
}
