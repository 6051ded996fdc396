package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo persiste el snapshot del inventario en app_snapshot (una fila JSONB por partición)
// y mantiene la proyección product_stock_view.
type SnapshotRepo struct {
	q  Querier
	tx *TxRunner
}

// NewSnapshotRepository construye el adaptador sobre el pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{q: pool, tx: NewTxRunner(pool)}
}

// Load lee las particiones; (nil, nil) si la tabla está vacía.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	rows, err := r.q.Query(ctx, `SELECT partition, payload FROM app_snapshot`)
	if err != nil {
		return nil, storageErr("leer snapshot", err)
	}
	defer rows.Close()

	parts := make(map[string][]byte, len(entity.Partitions))
	for rows.Next() {
		var (
			key     string
			payload []byte
		)
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, storageErr("scan snapshot", err)
		}
		parts[key] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterar snapshot", err)
	}
	return entity.DecodePartitions(parts)
}

// Save escribe las cinco particiones y reconstruye product_stock_view en una sola transacción.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	parts, err := snap.EncodePartitions()
	if err != nil {
		return err
	}
	return r.tx.Run(ctx, func(q Querier) error {
		for _, key := range entity.Partitions {
			_, err := q.Exec(ctx, `
				INSERT INTO app_snapshot (partition, payload, updated_at)
				VALUES ($1, $2::jsonb, now())
				ON CONFLICT (partition)
				DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
				key, string(parts[key]))
			if err != nil {
				return storageErr("guardar partición "+key, err)
			}
		}
		return writeStockView(ctx, q, snap.Products)
	})
}

func writeStockView(ctx context.Context, q Querier, products []entity.Product) error {
	if _, err := q.Exec(ctx, `DELETE FROM product_stock_view`); err != nil {
		return storageErr("limpiar product_stock_view", err)
	}
	if len(products) == 0 {
		return nil
	}
	_, err := q.CopyFrom(ctx,
		pgx.Identifier{"product_stock_view"},
		[]string{"product_id", "sku", "name", "stock", "min_stock", "low_stock", "updated_at"},
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.ID, p.SKU, p.Name, p.Stock, p.MinStock, p.IsLowStock(), p.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return storageErr("copiar product_stock_view", err)
	}
	return nil
}

// StockRow fila de product_stock_view.
type StockRow struct {
	ProductID string
	SKU       string
	Name      string
	Stock     decimal.Decimal
	MinStock  decimal.Decimal
	LowStock  bool
}

// LowStockRows consulta la proyección; la usan reportes externos y los tests de integración.
func (r *SnapshotRepo) LowStockRows(ctx context.Context) ([]StockRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, sku, name, stock, min_stock, low_stock
		FROM product_stock_view WHERE low_stock ORDER BY name`)
	if err != nil {
		return nil, storageErr("consultar product_stock_view", err)
	}
	defer rows.Close()

	var out []StockRow
	for rows.Next() {
		var s StockRow
		if err := rows.Scan(&s.ProductID, &s.SKU, &s.Name, &s.Stock, &s.MinStock, &s.LowStock); err != nil {
			return nil, storageErr("scan product_stock_view", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
