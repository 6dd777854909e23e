package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledgerly-api/pkg/money"
)

func TestFormat_USD(t *testing.T) {
	assert.Equal(t, "$1,234.50", money.Format(1234.5, "USD"))
	assert.Equal(t, "$0.00", money.Format(0, "USD"))
	assert.Equal(t, "$1,000,000.00", money.Format(1_000_000, "USD"))
}

func TestFormat_OtrasMonedas(t *testing.T) {
	assert.Equal(t, "€99.90", money.Format(99.9, "EUR"))
	assert.Equal(t, "£12.00", money.Format(12, "GBP"))
	assert.Equal(t, "R$5,430.10", money.Format(5430.1, "BRL"))
}

// TestFormat_Fallback código inválido o sin símbolo conocido degrada al
// formato textual "CODE 1234.50", sin agrupación de miles.
func TestFormat_Fallback(t *testing.T) {
	assert.Equal(t, "XXX 1234.50", money.Format(1234.5, "XXX"))
	assert.Equal(t, "NOPE 10.00", money.Format(10, "NOPE"))
	assert.Equal(t, "??? 1.50", money.Format(1.5, ""))
}

// TestFormat_Normalizacion el código se recorta y se lleva a mayúsculas
// antes de resolver.
func TestFormat_Normalizacion(t *testing.T) {
	assert.Equal(t, "$1,234.50", money.Format(1234.5, " usd "))
	assert.Equal(t, "€1.00", money.Format(1, "eur"))
}

func TestFormat_Redondeo(t *testing.T) {
	assert.Equal(t, "$10.57", money.Format(10.567, "USD"))
	assert.Equal(t, "$10.50", money.Format(10.5, "USD"))
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.NewFromFloat(1234.5)
	assert.Equal(t, "$1,234.50", money.FormatDecimal(d, "USD"))
	assert.Equal(t, "XXX 1234.50", money.FormatDecimal(d, "XXX"))
}
