// Package pdf implementa el reporte de stock del bar en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca            │  Reporte de stock + fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos | stock bajo | vencimientos | valores   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Stock bajo (SKU | Producto | Proveedor | Stock/Mín) │
//	│  TABLA: Próximos a vencer (SKU | Producto | Vence | Stock)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generado el ...                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carneiro-api/internal/application/report"
)

var _ report.StockReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, data report.StockReportData) ([]byte, error) {
	loc := data.Location
	if loc == nil {
		loc = time.UTC
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de estoque", true).
		WithAuthor(data.BrandName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data, loc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("ESTOQUE BAIXO (%d)", len(data.LowStock))))
	m.AddRows(tableHeaderRow("Fornecedor", "Estoque / Mín."))
	if len(data.LowStock) == 0 {
		m.AddRows(emptyRow("Nenhum produto abaixo do mínimo."))
	}
	for _, l := range data.LowStock {
		m.AddRows(stockLineRow(l, nonEmpty(l.SupplierName, "—"),
			l.Product.Stock.String()+" / "+l.Product.MinStock.String(), colorAlert))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitleRow(fmt.Sprintf("VENCIMENTO EM ATÉ %d DIAS (%d)", data.AlertDays, len(data.Expiring))))
	m.AddRows(tableHeaderRow("Vence em", "Estoque"))
	if len(data.Expiring) == 0 {
		m.AddRows(emptyRow("Nenhum produto próximo do vencimento."))
	}
	for _, l := range data.Expiring {
		expiry := "—"
		if l.Product.ExpiryDate != nil {
			expiry = l.Product.ExpiryDate.UTC().Format("02/01/2006")
		}
		m.AddRows(stockLineRow(l, expiry, l.Product.Stock.String(), nil))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data, loc))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data report.StockReportData, loc *time.Location) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.BrandName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.GeneratedAt.In(loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro indicadores del panel.
func summaryRow(data report.StockReportData) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 6}),
		)
	}
	s := data.Stats
	return row.New(16).Add(
		cell("Produtos", fmt.Sprintf("%d", s.TotalProducts)),
		cell("Estoque baixo", fmt.Sprintf("%d", s.LowStockCount)),
		cell("Custo em estoque", formatMoney(data.Currency, s.TotalCost)),
		cell("Valor de venda", formatMoney(data.Currency, s.TotalValue)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(third, fourth string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 2, align.Left),
		h("Produto", 5, align.Left),
		h(third, 3, align.Left),
		h(fourth, 2, align.Right),
	)
}

func stockLineRow(l report.StockLine, third, fourth string, highlight *props.Color) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(l.Product.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(5).Add(text.New(l.Product.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(third, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(2).Add(text.New(fourth, props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right, Color: highlight})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
	))
}

func footerRow(data report.StockReportData, loc *time.Location) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d movimentações registradas. Datas no fuso %s.", data.Stats.TotalMoves, loc.String()),
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato pt-BR con dos decimales: "1234.5" -> "BRL 1.234,50".
func formatMoney(currency string, d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if currency != "" {
		out = currency + " " + out
	}
	return out
}
