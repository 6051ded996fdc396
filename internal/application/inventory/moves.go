package inventory

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	stockrules "github.com/jhoicas/carneiro-api/internal/domain/inventory"
)

// Motivos de rechazo de RegisterMove; se combinan con errors.Join.
var (
	ErrMoveUnknownProduct   = errors.New("producto inexistente")
	ErrMoveUnknownEmployee  = errors.New("funcionario inexistente")
	ErrMoveInactiveEmployee = errors.New("funcionario inactivo")
	ErrMoveNotAllowed       = errors.New("funcionario sin permiso para ajustar stock")
)

// RegisterMove es AddMove con las reglas de registro verificadas bajo el mismo lock: el producto
// debe existir y el funcionario debe existir, estar activo y poder ajustar stock. Si alguna falla
// no se modifica nada y el error combina todos los motivos.
func (s *Store) RegisterMove(in MoveInput) (entity.StockMove, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.productIndex(in.ProductID) < 0 {
		errs = append(errs, ErrMoveUnknownProduct)
	}
	if idx := s.employeeIndex(in.EmployeeID); idx < 0 {
		errs = append(errs, ErrMoveUnknownEmployee)
	} else if e := s.employees[idx]; !e.Active {
		errs = append(errs, ErrMoveInactiveEmployee)
	} else if !e.CanAdjustStock {
		errs = append(errs, ErrMoveNotAllowed)
	}
	if len(errs) > 0 {
		return entity.StockMove{}, errors.Join(errs...)
	}
	return s.addMoveLocked(in), nil
}

// AddMove registra un movimiento y aplica su efecto sobre el stock del producto por el camino
// único de stock (piso en cero). Si el producto no existe el movimiento igualmente se agrega
// al log, sin efecto de stock.
func (s *Store) AddMove(in MoveInput) entity.StockMove {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMoveLocked(in)
}

func (s *Store) addMoveLocked(in MoveInput) entity.StockMove {
	now := s.now()
	m := entity.StockMove{
		ID:         s.uniqueID(func(id string) bool { return s.moveIndex(id) >= 0 }),
		ProductID:  in.ProductID,
		EmployeeID: in.EmployeeID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		UnitPrice:  in.UnitPrice,
		Reason:     in.Reason,
		Notes:      in.Notes,
		Date:       in.Date,
		CreatedAt:  now,
	}
	if m.Date.IsZero() {
		m.Date = now
	}

	var alert *LowStockAlert
	if idx := s.productIndex(in.ProductID); idx >= 0 {
		alert = s.applyStockLocked(idx, m.Delta(), now)
	}
	s.moves = append(slices.Clip(s.moves), m)
	s.persistLocked()
	s.publish(alert)
	return m
}

// UpdateProductStock ajusta el stock sin registrar movimiento. Comparte con AddMove el mismo
// camino de stock; el llamador no debe usarlo para un movimiento ya registrado con AddMove.
func (s *Store) UpdateProductStock(productID string, delta decimal.Decimal) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(productID)
	if idx < 0 {
		return entity.Product{}, false
	}
	alert := s.applyStockLocked(idx, delta, s.now())
	s.persistLocked()
	s.publish(alert)
	return s.products[idx], true
}

// Moves devuelve los movimientos que cumplen todos los campos informados del filtro, en orden de log.
func (s *Store) Moves(filter MoveFilter) []entity.StockMove {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.StockMove, 0, len(s.moves))
	for _, m := range s.moves {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.EmployeeID != "" && m.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// applyStockLocked es el único punto que modifica Product.Stock tras la creación.
// Devuelve una alerta cuando el producto cruza hacia stock bajo.
func (s *Store) applyStockLocked(idx int, delta decimal.Decimal, now time.Time) *LowStockAlert {
	p := s.products[idx]
	wasLow := p.IsLowStock()
	p.Stock = stockrules.ApplyDelta(p.Stock, delta)
	p.UpdatedAt = now
	s.products = replaceAt(s.products, idx, p)

	if wasLow || !p.IsLowStock() {
		return nil
	}
	return &LowStockAlert{
		ProductID:  p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		OccurredAt: now,
	}
}

// publish envía la alerta en segundo plano; un fallo del broker solo se registra.
// Close espera a que terminen los envíos en curso.
func (s *Store) publish(alert *LowStockAlert) {
	if alert == nil {
		return
	}
	a := *alert
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), defaultAlertTimeout)
		defer cancel()
		if err := s.alerts.PublishLowStock(ctx, a); err != nil {
			s.log.Error().Err(err).Str("product_id", a.ProductID).Msg("no se pudo publicar alerta de stock bajo")
		}
	}()
}

func (s *Store) moveIndex(id string) int {
	return slices.IndexFunc(s.moves, func(m entity.StockMove) bool { return m.ID == id })
}
