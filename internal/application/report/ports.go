package report

import (
	"context"
	"time"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// StockSource lecturas del Store que necesita el reporte.
type StockSource interface {
	DashboardStats() inventory.DashboardStats
	LowStockProducts() []entity.Product
	ExpiringProducts() []entity.Product
	Settings() entity.Settings
	Suppliers() []entity.Supplier
}

// StockReportData datos ya armados para el render del PDF.
type StockReportData struct {
	BrandName   string
	Currency    string
	Location    *time.Location
	GeneratedAt time.Time
	AlertDays   int
	Stats       inventory.DashboardStats
	LowStock    []StockLine
	Expiring    []StockLine
}

// StockLine fila de las tablas de stock bajo y próximos a vencer.
type StockLine struct {
	Product      entity.Product
	SupplierName string
}

// StockReportGenerator puerto de salida para renderizar el reporte (maroto, html, mock).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
