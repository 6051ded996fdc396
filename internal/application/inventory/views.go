package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

const (
	recentMovesLimit = 10
	topProductsLimit = 10
)

// ProductMoveCount producto con la cantidad de movimientos que lo referencian.
type ProductMoveCount struct {
	Product   entity.Product `json:"product"`
	MoveCount int            `json:"moveCount"`
}

// DashboardStats agregados del panel calculados sobre el estado actual.
type DashboardStats struct {
	TotalProducts int                `json:"totalProducts"`
	LowStockCount int                `json:"lowStockCount"`
	ExpiringCount int                `json:"expiringCount"`
	TotalCost     decimal.Decimal    `json:"totalCost"`
	TotalValue    decimal.Decimal    `json:"totalValue"`
	TotalMoves    int                `json:"totalMoves"`
	RecentMoves   []entity.StockMove `json:"recentMoves"`
	TopProducts   []ProductMoveCount `json:"topProducts"`
	GeneratedAt   time.Time          `json:"generatedAt"`
}

// DashboardStats calcula los agregados del panel. RecentMoves son los últimos 10 registrados,
// del más reciente al más antiguo; TopProducts ordena por cantidad de movimientos (desc) y
// conserva el orden de catálogo en los empates.
func (s *Store) DashboardStats() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := DashboardStats{
		TotalProducts: len(s.products),
		LowStockCount: len(s.lowStockLocked()),
		ExpiringCount: len(s.expiringLocked(now)),
		TotalCost:     s.totalCostLocked(),
		TotalValue:    s.totalValueLocked(),
		TotalMoves:    len(s.moves),
		GeneratedAt:   now,
	}

	n := min(recentMovesLimit, len(s.moves))
	stats.RecentMoves = make([]entity.StockMove, 0, n)
	for i := len(s.moves) - 1; i >= len(s.moves)-n; i-- {
		stats.RecentMoves = append(stats.RecentMoves, s.moves[i])
	}

	counts := make(map[string]int, len(s.products))
	for _, m := range s.moves {
		counts[m.ProductID]++
	}
	ranked := make([]ProductMoveCount, 0, len(s.products))
	for _, p := range s.products {
		ranked = append(ranked, ProductMoveCount{Product: p, MoveCount: counts[p.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].MoveCount > ranked[j].MoveCount })
	stats.TopProducts = ranked[:min(topProductsLimit, len(ranked))]
	return stats
}

// LowStockProducts productos con stock <= mínimo, en orden de catálogo.
func (s *Store) LowStockProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lowStockLocked()
}

// ExpiringProducts productos con vencimiento definido hasta hoy + AlertDays (inclusive),
// en orden de catálogo. "Hoy" es la fecha civil en la zona horaria configurada.
func (s *Store) ExpiringProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiringLocked(s.now())
}

// TotalCost suma de Cost * Stock sobre todo el catálogo.
func (s *Store) TotalCost() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalCostLocked()
}

// TotalValue suma de Price * Stock sobre todo el catálogo.
func (s *Store) TotalValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalValueLocked()
}

func (s *Store) lowStockLocked() []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) expiringLocked(now time.Time) []entity.Product {
	y, m, d := now.In(s.settings.Location()).Date()
	limit := time.Date(y, m, d+s.settings.AlertDays, 0, 0, 0, 0, time.UTC)

	out := make([]entity.Product, 0)
	for _, p := range s.products {
		if p.ExpiryDate == nil {
			continue
		}
		ey, em, ed := p.ExpiryDate.UTC().Date()
		if !time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).After(limit) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) totalCostLocked() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.CostValue())
	}
	return total
}

func (s *Store) totalValueLocked() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.SaleValue())
	}
	return total
}
