package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction sentido del movimiento de stock.
type Direction string

// Sentidos de movimiento (value object conceptual).
const (
	DirectionIn  Direction = "in"  // entrada
	DirectionOut Direction = "out" // salida
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Reason motivo del movimiento.
type Reason string

const (
	ReasonPurchase    Reason = "compra"
	ReasonSale        Reason = "venda"
	ReasonLoss        Reason = "perda"
	ReasonConsumption Reason = "consumo_interno"
	ReasonAdjustment  Reason = "ajuste"
	ReasonTransfer    Reason = "transferencia"
)

// Valid indica si el motivo pertenece al conjunto cerrado.
func (r Reason) Valid() bool {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonLoss, ReasonConsumption, ReasonAdjustment, ReasonTransfer:
		return true
	}
	return false
}

// StockMove representa un movimiento de stock (entrada o salida) registrado por un funcionario.
// El log de movimientos es append-only salvo por los borrados en cascada.
type StockMove struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"productId"`
	EmployeeID string           `json:"employeeId"`
	Type       Direction        `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`            // siempre > 0
	UnitCost   *decimal.Decimal `json:"unitCost,omitempty"`  // relevante en entradas
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"` // relevante en salidas
	Reason     Reason           `json:"reason"`
	Notes      string           `json:"notes,omitempty"`
	Date       time.Time        `json:"date"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Delta devuelve la variación de stock que produce el movimiento: +Quantity en entradas, -Quantity en salidas.
func (m StockMove) Delta() decimal.Decimal {
	if m.Type == DirectionOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
