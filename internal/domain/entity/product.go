package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit unidad de medida de un producto del bar.
type Unit string

// Unidades válidas para Product.
const (
	UnitPiece  Unit = "un"
	UnitBox    Unit = "cx"
	UnitBale   Unit = "fd"
	UnitBottle Unit = "garrafa"
	UnitCan    Unit = "lata"
	UnitLiter  Unit = "litro"
	UnitKilo   Unit = "kg"
)

// Units lista las unidades aceptadas en el orden en que se muestran en los formularios.
var Units = []Unit{UnitPiece, UnitBox, UnitBale, UnitBottle, UnitCan, UnitLiter, UnitKilo}

// Valid indica si la unidad pertenece al conjunto cerrado.
func (u Unit) Valid() bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo del bar.
// Stock nunca es negativo: toda variación pasa por el camino único de stock del Store.
type Product struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	SKU        string           `json:"sku"`
	EAN        string           `json:"ean,omitempty"`
	Category   string           `json:"category"`
	SupplierID string           `json:"supplierId"`
	Unit       Unit             `json:"unit"`
	Volume     int              `json:"volumeMl"`
	ABV        decimal.Decimal  `json:"abv"`
	Cost       decimal.Decimal  `json:"cost"`  // costo unitario
	Price      decimal.Decimal  `json:"price"` // precio de venta
	Stock      decimal.Decimal  `json:"stock"`
	MinStock   decimal.Decimal  `json:"minStock"`
	MaxStock   *decimal.Decimal `json:"maxStock,omitempty"`
	Location   string           `json:"location"`
	ExpiryDate *time.Time       `json:"expiryDate,omitempty"` // fecha civil (medianoche UTC)
	ImageURL   string           `json:"image,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// IsLowStock indica si el stock alcanzó o cayó bajo el mínimo configurado.
func (p Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}

// CostValue costo inmovilizado: Cost * Stock.
func (p Product) CostValue() decimal.Decimal {
	return p.Cost.Mul(p.Stock)
}

// SaleValue valor de venta del stock: Price * Stock.
func (p Product) SaleValue() decimal.Decimal {
	return p.Price.Mul(p.Stock)
}
