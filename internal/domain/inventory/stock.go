package inventory

import "github.com/shopspring/decimal"

// ApplyDelta aplica una variación de stock con piso en cero (servicio de dominio).
// Una salida mayor al stock disponible deja el stock en 0 en lugar de fallar.
func ApplyDelta(current, delta decimal.Decimal) decimal.Decimal {
	next := current.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
