package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
)

// DashboardHandler maneja los endpoints del panel.
type DashboardHandler struct {
	store    *inventory.Store
	reportUC *report.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(store *inventory.Store, reportUC *report.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{store: store, reportUC: reportUC}
}

// GetSummary devuelve los KPIs del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totales, valores de costo y venta, últimos 10 movimientos
// y ranking de productos por cantidad de movimientos).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	names := make(map[string]string)
	for _, p := range h.store.Products() {
		names[p.ID] = p.Name
	}
	return c.JSON(dto.NewDashboardSummary(h.store.DashboardStats(), h.store.Settings(), names))
}

// StockReport descarga el reporte de stock en PDF.
// GET /api/dashboard/report.pdf
func (h *DashboardHandler) StockReport(c *fiber.Ctx) error {
	pdf, filename, err := h.reportUC.StockReport(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
