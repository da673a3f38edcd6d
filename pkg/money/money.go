// Package money concentra el par formatear/parsear de precios con coma decimal
// (es-AR). Todo precio que cruza un borde (request, respuesta, reporte) pasa
// por acá: formatear y parsear deben ser inversos para valores con hasta dos
// decimales.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Format devuelve el precio con coma decimal y punto de miles: 1234.5 → "1.234,50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// Parse convierte un precio en formato es-AR ("1.234,50", "$ 99,90") a decimal.
// Acepta también el formato con punto decimal si no hay coma ("1234.50").
func Parse(s string) (decimal.Decimal, error) {
	limpio := strings.TrimSpace(s)
	limpio = strings.TrimPrefix(limpio, "$")
	limpio = strings.ReplaceAll(limpio, " ", "")
	if limpio == "" {
		return decimal.Zero, fmt.Errorf("money: precio vacío")
	}
	if strings.Contains(limpio, ",") {
		// "1.234,50": los puntos son separadores de miles
		limpio = strings.ReplaceAll(limpio, ".", "")
		limpio = strings.Replace(limpio, ",", ".", 1)
	}
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: precio inválido %q: %w", s, err)
	}
	return d, nil
}
