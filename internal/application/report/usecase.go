// Package report arma el reporte de stock del bar a partir del estado del Store.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// ReportUseCase genera el PDF de stock (resumen, stock bajo y vencimientos).
type ReportUseCase struct {
	source    StockSource
	generator StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(source StockSource, generator StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{source: source, generator: generator}
}

// StockReport devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) StockReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	settings := uc.source.Settings()
	stats := uc.source.DashboardStats()

	names := make(map[string]string)
	for _, s := range uc.source.Suppliers() {
		names[s.ID] = s.Name
	}

	loc := settings.Location()
	data := StockReportData{
		BrandName:   settings.BrandName,
		Currency:    settings.Currency,
		Location:    loc,
		GeneratedAt: stats.GeneratedAt,
		AlertDays:   settings.AlertDays,
		Stats:       stats,
		LowStock:    lines(uc.source.LowStockProducts(), names),
		Expiring:    lines(uc.source.ExpiringProducts(), names),
	}

	pdfBytes, err = uc.generator.GenerateStockReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("estoque-%s-%s.pdf", slug(settings.BrandName), stats.GeneratedAt.In(loc).Format("20060102"))
	return pdfBytes, filename, nil
}

func lines(products []entity.Product, supplierNames map[string]string) []StockLine {
	out := make([]StockLine, 0, len(products))
	for _, p := range products {
		out = append(out, StockLine{Product: p, SupplierName: supplierNames[p.SupplierID]})
	}
	return out
}

// slug nombre de marca apto para archivo: minúsculas, ASCII alfanumérico y guiones.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "bar"
	}
	return out
}
