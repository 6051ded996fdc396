package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "BRL 0,00"},
		{"89.9", "BRL 89,90"},
		{"1234.5", "BRL 1.234,50"},
		{"1000000", "BRL 1.000.000,00"},
		{"-1500.25", "BRL -1.500,25"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney("BRL", decimal.RequireFromString(c.in)), c.in)
	}
	assert.Equal(t, "12,00", formatMoney("", decimal.NewFromInt(12)))
}

func TestGenerateStockReport_ProducesPDF(t *testing.T) {
	expiry := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	p := entity.Product{
		ID: "p-1", SKU: "CACH-001", Name: "Cachaça Artesanal",
		Stock: decimal.NewFromInt(2), MinStock: decimal.NewFromInt(5), ExpiryDate: &expiry,
	}
	data := report.StockReportData{
		BrandName:   "BAR DO CARNEIRO",
		Currency:    "BRL",
		GeneratedAt: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		AlertDays:   7,
		Stats: inventory.DashboardStats{
			TotalProducts: 1, LowStockCount: 1, ExpiringCount: 1,
			TotalCost: decimal.NewFromInt(60), TotalValue: decimal.RequireFromString("179.80"),
		},
		LowStock: []report.StockLine{{Product: p, SupplierName: "Distribuidora Sul"}},
		Expiring: []report.StockLine{{Product: p}},
	}

	out, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateStockReport_EmptyLists(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), report.StockReportData{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
