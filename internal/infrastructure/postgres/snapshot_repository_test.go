package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base descartable.
func newRepo(t *testing.T) *postgres.SnapshotRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE app_snapshot, product_stock_view`)
	require.NoError(t, err)
	return postgres.NewSnapshotRepository(pool)
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	snap := &entity.Snapshot{
		Products: []entity.Product{
			{ID: "p-1", SKU: "CACH-001", Name: "Cachaça", Stock: decimal.RequireFromString("2"), MinStock: decimal.RequireFromString("6"), UpdatedAt: now},
			{ID: "p-2", SKU: "CERV-001", Name: "Pilsen", Stock: decimal.RequireFromString("96"), MinStock: decimal.RequireFromString("48"), UpdatedAt: now},
		},
		Settings: entity.Settings{BrandName: "BAR DO CARNEIRO", AlertDays: 7},
	}
	require.NoError(t, repo.Save(ctx, snap))
	require.NoError(t, repo.Save(ctx, snap), "Save es idempotente")

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "BAR DO CARNEIRO", got.Settings.BrandName)

	low, err := repo.LowStockRows(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "p-1", low[0].ProductID)
	assert.True(t, decimal.RequireFromString("2").Equal(low[0].Stock))
}
