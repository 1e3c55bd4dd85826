package stripe

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Stripe takes these zero-decimal currencies in two-decimal representation.
var twoDecimalOverrides = map[string]struct{}{
	"isk": {},
	"ugx": {},
}

// CurrencyScale reports how many minor-unit digits Stripe expects for an
// ISO 4217 currency code.
func CurrencyScale(code string) (int32, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("unsupported currency %q: %w", code, err)
	}

	if _, ok := twoDecimalOverrides[strings.ToLower(code)]; ok {
		return 2, nil
	}

	scale, _ := currency.Standard.Rounding(unit)

	return int32(scale), nil
}

// MinorUnits converts a whole-unit amount into minor units at the given scale.
func MinorUnits(amount decimal.Decimal, scale int32) int64 {
	return amount.Shift(scale).Round(0).IntPart()
}
