package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

func TestSnapshotPartitions(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	snap := entity.Snapshot{
		Products: []entity.Product{{ID: "p-1", Name: "Cachaça", Stock: decimal.RequireFromString("2.5"), CreatedAt: now, UpdatedAt: now}},
		Settings: entity.Settings{BrandName: "BAR DO CARNEIRO", AlertDays: 7},
	}

	parts, err := snap.EncodePartitions()
	require.NoError(t, err)
	assert.Len(t, parts, len(entity.Partitions))
	assert.JSONEq(t, `[]`, string(parts[entity.PartitionMoves]), "las colecciones vacías se guardan como []")

	got, err := entity.DecodePartitions(parts)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.True(t, got.Products[0].Stock.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, snap.Settings, got.Settings)
	assert.Empty(t, got.Moves)
}

func TestDecodePartitions_EmptyAndIncomplete(t *testing.T) {
	got, err := entity.DecodePartitions(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = entity.DecodePartitions(map[string][]byte{entity.PartitionProducts: []byte(`[]`)})
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}

func TestProductValues(t *testing.T) {
	p := entity.Product{Cost: decimal.NewFromInt(2), Price: decimal.NewFromInt(5), Stock: decimal.NewFromInt(3), MinStock: decimal.NewFromInt(3)}
	assert.True(t, p.IsLowStock())
	assert.True(t, decimal.NewFromInt(6).Equal(p.CostValue()))
	assert.True(t, decimal.NewFromInt(15).Equal(p.SaleValue()))
}

func TestStockMoveDelta(t *testing.T) {
	in := entity.StockMove{Type: entity.DirectionIn, Quantity: decimal.NewFromInt(4)}
	out := entity.StockMove{Type: entity.DirectionOut, Quantity: decimal.NewFromInt(4)}
	assert.True(t, decimal.NewFromInt(4).Equal(in.Delta()))
	assert.True(t, decimal.NewFromInt(-4).Equal(out.Delta()))
}
