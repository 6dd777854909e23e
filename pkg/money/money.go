// Package money formatea montos para mostrar. Nunca falla: un código de
// moneda que no podemos formatear degrada al formato textual "CODE 1234.50".
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formatea números con agrupación de miles según en-US.
// message.Printer es seguro para uso concurrente.
var printer = message.NewPrinter(language.AmericanEnglish)

// symbolByCode símbolos de las monedas que el formateador soporta con
// símbolo antepuesto. Código fuera de esta tabla → formato de fallback.
var symbolByCode = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"COP": "$",
	"MXN": "$",
	"BRL": "R$",
	"CAD": "$",
	"AUD": "$",
	"INR": "₹",
	"NGN": "₦",
	"KES": "KSh",
	"ZAR": "R",
}

// Format formatea un monto con el símbolo de su moneda y separador de miles,
// siempre con 2 decimales: Format(1234.5, "USD") == "$1,234.50".
// Código ISO inválido o sin símbolo conocido cae al formato
// "<CODE> <monto-2dp>" sin agrupación: Format(1234.5, "XXX") == "XXX 1234.50".
func Format(amount float64, code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return fallback(amount, normalized)
	}
	symbol, ok := symbolByCode[unit.String()]
	if !ok {
		return fallback(amount, unit.String())
	}
	return symbol + printer.Sprintf("%.2f", amount)
}

// FormatDecimal variante para montos decimal.Decimal (facturas, recibos).
func FormatDecimal(amount decimal.Decimal, code string) string {
	return Format(amount.InexactFloat64(), code)
}

// fallback formato textual cuando la moneda no se soporta.
func fallback(amount float64, code string) string {
	if code == "" {
		code = "???"
	}
	return fmt.Sprintf("%s %.2f", code, amount)
}
