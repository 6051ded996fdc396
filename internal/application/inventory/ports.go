package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockAlert evento emitido cuando un producto pasa a estar en o bajo su stock mínimo.
type LowStockAlert struct {
	ProductID  string          `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Stock      decimal.Decimal `json:"stock"`
	MinStock   decimal.Decimal `json:"min_stock"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// AlertPublisher puerto de salida para notificar alertas de stock bajo.
// Cualquier adaptador (Kafka, log, mock) debe implementar esta interfaz.
type AlertPublisher interface {
	PublishLowStock(ctx context.Context, alert LowStockAlert) error
}

// NoopAlertPublisher descarta las alertas. Es el publicador por defecto.
type NoopAlertPublisher struct{}

// PublishLowStock implementa AlertPublisher sin efectos.
func (NoopAlertPublisher) PublishLowStock(context.Context, LowStockAlert) error { return nil }
