package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

type captureGenerator struct {
	data report.StockReportData
	err  error
}

func (g *captureGenerator) GenerateStockReport(_ context.Context, data report.StockReportData) ([]byte, error) {
	g.data = data
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3"), nil
}

func newStore(t *testing.T) *inventory.Store {
	t.Helper()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s, err := inventory.Open(context.Background(), nil, inventory.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestStockReport_AssemblesData(t *testing.T) {
	store := newStore(t)
	gen := &captureGenerator{}
	uc := report.NewReportUseCase(store, gen)

	pdf, filename, err := uc.StockReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Equal(t, "estoque-bar-do-carneiro-20260310.pdf", filename)

	assert.Equal(t, "BAR DO CARNEIRO", gen.data.BrandName)
	assert.Equal(t, "BRL", gen.data.Currency)
	assert.Len(t, gen.data.LowStock, len(store.LowStockProducts()))
	assert.Len(t, gen.data.Expiring, len(store.ExpiringProducts()))
	assert.True(t, store.TotalValue().Equal(gen.data.Stats.TotalValue))
	for _, l := range gen.data.LowStock {
		assert.NotEmpty(t, l.SupplierName, "los productos semilla tienen proveedor")
	}
}

func TestStockReport_MissingSupplierLeavesNameEmpty(t *testing.T) {
	store := newStore(t)
	p := store.AddProduct(inventory.ProductInput{
		Name: "Gelo", SKU: "GEL-1", Unit: entity.UnitKilo,
		Stock: decimal.Zero, MinStock: decimal.NewFromInt(2),
	})
	gen := &captureGenerator{}

	_, _, err := report.NewReportUseCase(store, gen).StockReport(context.Background())
	require.NoError(t, err)

	var found bool
	for _, l := range gen.data.LowStock {
		if l.Product.ID == p.ID {
			found = true
			assert.Empty(t, l.SupplierName)
		}
	}
	assert.True(t, found)
}

func TestStockReport_GeneratorError(t *testing.T) {
	gen := &captureGenerator{err: errors.New("fuente no encontrada")}
	_, _, err := report.NewReportUseCase(newStore(t), gen).StockReport(context.Background())
	assert.ErrorContains(t, err, "fuente no encontrada")
}
