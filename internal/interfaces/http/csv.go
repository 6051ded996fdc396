package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// sendCSV escribe filas separadas por ';' como adjunto. Con ?encoding=latin1 el cuerpo se
// convierte a ISO-8859-1; los caracteres sin representación se reemplazan.
func sendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}

	body := buf.Bytes()
	charset := "utf-8"
	if strings.EqualFold(c.Query("encoding"), "latin1") {
		enc := charmap.ISO8859_1.NewEncoder()
		out, _, err := transform.Bytes(encoding.ReplaceUnsupported(enc), body)
		if err != nil {
			return fmt.Errorf("csv: convertir a latin1: %w", err)
		}
		body = out
		charset = "iso-8859-1"
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset="+charset)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

func decimalOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
