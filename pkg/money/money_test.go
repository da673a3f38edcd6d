package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolavado/lavadero-api/pkg/money"
)

func TestFormat_ComaDecimalYMiles(t *testing.T) {
	casos := map[string]string{
		"0":        "0,00",
		"9.9":      "9,90",
		"1234.5":   "1.234,50",
		"99999.99": "99.999,99",
	}
	for in, want := range casos {
		d := decimal.RequireFromString(in)
		assert.Equal(t, want, money.Format(d), "formato de %s", in)
	}
}

func TestParse_FormatosAceptados(t *testing.T) {
	casos := map[string]string{
		"1.234,50": "1234.5",
		"$ 99,90":  "99.9",
		"1234.50":  "1234.5",
		"0,00":     "0",
	}
	for in, want := range casos {
		d, err := money.Parse(in)
		require.NoError(t, err, "parse de %q", in)
		assert.True(t, d.Equal(decimal.RequireFromString(want)), "parse de %q dio %s", in, d)
	}
}

func TestParse_Invalido(t *testing.T) {
	for _, in := range []string{"", "abc", "1,2,3"} {
		_, err := money.Parse(in)
		assert.Error(t, err, "parse de %q debe fallar", in)
	}
}

// El round-trip formatear→parsear debe reproducir el valor original para
// precios con hasta dos decimales.
func TestRoundTrip_DosDecimales(t *testing.T) {
	for _, s := range []string{"0", "0.5", "10", "99.99", "1234.56", "1000000", "123456.7"} {
		d := decimal.RequireFromString(s)
		back, err := money.Parse(money.Format(d))
		require.NoError(t, err)
		assert.True(t, back.Equal(d.Round(2)), "round-trip de %s dio %s", s, back)
	}
}
