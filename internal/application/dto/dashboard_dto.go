package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del inventario más los últimos movimientos y el ranking de productos por movimientos.
type DashboardSummaryDTO struct {
	BrandName string `json:"brandName"`
	Currency  string `json:"currency"`

	TotalProducts int `json:"totalProducts"`
	LowStockCount int `json:"lowStockCount"`
	ExpiringCount int `json:"expiringCount"`
	TotalMoves    int `json:"totalMoves"`

	TotalCost  decimal.Decimal `json:"totalCost"`  // Σ cost × stock
	TotalValue decimal.Decimal `json:"totalValue"` // Σ price × stock

	RecentMoves []RecentMoveDTO `json:"recentMoves"` // del más reciente al más antiguo
	TopProducts []TopProductDTO `json:"topProducts"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// RecentMoveDTO movimiento con el nombre del producto para el widget del panel.
type RecentMoveDTO struct {
	entity.StockMove
	ProductName string `json:"productName"`
}

// TopProductDTO producto del ranking con su cantidad de movimientos.
type TopProductDTO struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	MoveCount int             `json:"moveCount"`
}

// NewDashboardSummary arma el DTO a partir de los agregados del Store.
func NewDashboardSummary(stats inventory.DashboardStats, settings entity.Settings, names map[string]string) DashboardSummaryDTO {
	out := DashboardSummaryDTO{
		BrandName:     settings.BrandName,
		Currency:      settings.Currency,
		TotalProducts: stats.TotalProducts,
		LowStockCount: stats.LowStockCount,
		ExpiringCount: stats.ExpiringCount,
		TotalMoves:    stats.TotalMoves,
		TotalCost:     stats.TotalCost,
		TotalValue:    stats.TotalValue,
		RecentMoves:   make([]RecentMoveDTO, 0, len(stats.RecentMoves)),
		TopProducts:   make([]TopProductDTO, 0, len(stats.TopProducts)),
		GeneratedAt:   stats.GeneratedAt,
	}
	for _, m := range stats.RecentMoves {
		out.RecentMoves = append(out.RecentMoves, RecentMoveDTO{StockMove: m, ProductName: names[m.ProductID]})
	}
	for _, t := range stats.TopProducts {
		out.TopProducts = append(out.TopProducts, TopProductDTO{
			ProductID: t.Product.ID,
			SKU:       t.Product.SKU,
			Name:      t.Product.Name,
			Stock:     t.Product.Stock,
			MoveCount: t.MoveCount,
		})
	}
	return out
}
