package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// RegisterMoveRequest entrada para registrar un movimiento de stock (POST /api/moves).
// Type: "in" (entrada) | "out" (salida). Date vacío toma el instante actual.
type RegisterMoveRequest struct {
	ProductID  string           `json:"productId"`
	EmployeeID string           `json:"employeeId"`
	Type       string           `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitCost   *decimal.Decimal `json:"unitCost"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	Reason     string           `json:"reason"`
	Notes      string           `json:"notes"`
	Date       string           `json:"date"` // RFC3339 o AAAA-MM-DD
}

func (r RegisterMoveRequest) Validate() error {
	var f fieldErrors
	f.required("productId", r.ProductID)
	f.required("employeeId", r.EmployeeID)
	if !entity.Direction(r.Type).Valid() {
		f.add("type", "debe ser in u out")
	}
	if !r.Quantity.IsPositive() {
		f.add("quantity", "debe ser mayor que cero")
	}
	if r.UnitCost != nil {
		nonNegative(&f, "unitCost", *r.UnitCost)
	}
	if r.UnitPrice != nil {
		nonNegative(&f, "unitPrice", *r.UnitPrice)
	}
	if !entity.Reason(r.Reason).Valid() {
		f.add("reason", "motivo inválido")
	}
	f.maxLen("notes", r.Notes, 500)
	if r.Date != "" {
		if _, err := parseInstant(r.Date); err != nil {
			f.add("date", "fecha inválida")
		}
	}
	return f.err()
}

func (r RegisterMoveRequest) ToInput() inventory.MoveInput {
	in := inventory.MoveInput{
		ProductID:  r.ProductID,
		EmployeeID: r.EmployeeID,
		Type:       entity.Direction(r.Type),
		Quantity:   r.Quantity,
		UnitCost:   r.UnitCost,
		UnitPrice:  r.UnitPrice,
		Reason:     entity.Reason(r.Reason),
		Notes:      r.Notes,
	}
	if r.Date != "" {
		if t, err := parseInstant(r.Date); err == nil {
			in.Date = t
		}
	}
	return in
}

// MoveListResponse movimientos filtrados, en orden de registro.
type MoveListResponse struct {
	Items []entity.StockMove `json:"items"`
	Total int                `json:"total"`
}
