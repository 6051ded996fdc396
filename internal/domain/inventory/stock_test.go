package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/carneiro-api/internal/domain/inventory"
)

func TestApplyDelta(t *testing.T) {
	d := decimal.NewFromInt
	cases := []struct {
		name    string
		current decimal.Decimal
		delta   decimal.Decimal
		want    decimal.Decimal
	}{
		{"entrada suma", d(5), d(3), d(8)},
		{"salida parcial resta", d(5), d(-3), d(2)},
		{"salida exacta deja cero", d(5), d(-5), d(0)},
		{"salida mayor al stock queda en cero", d(5), d(-9), d(0)},
		{"fracciones", decimal.RequireFromString("1.5"), decimal.RequireFromString("-0.25"), decimal.RequireFromString("1.25")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.ApplyDelta(tc.current, tc.delta)
			assert.True(t, tc.want.Equal(got), "esperado %s, obtenido %s", tc.want, got)
			assert.False(t, got.IsNegative(), "el stock nunca debe ser negativo")
		})
	}
}
