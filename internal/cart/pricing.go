package cart

import (
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	ProfileCart   = "cart"
	ProfileSingle = "single"
)

// Profile carries the pricing constants of one checkout flow.
type Profile struct {
	Name            string          `json:"name"`
	FreeChars       int             `json:"free_chars"`
	PerCharRate     decimal.Decimal `json:"per_char_rate"`
	RushFee         decimal.Decimal `json:"rush_fee"`
	ExtraServiceFee decimal.Decimal `json:"extra_service_fee"`
}

// CartProfile prices the multi-item cart flow: 18 free characters, then 2 per
// character, 30 for a rush order and 100 for the extra service.
func CartProfile() Profile {
	return Profile{
		Name:            ProfileCart,
		FreeChars:       18,
		PerCharRate:     decimal.NewFromInt(2),
		RushFee:         decimal.NewFromInt(30),
		ExtraServiceFee: decimal.NewFromInt(100),
	}
}

// SingleProfile prices the single-option flow: every character costs 5 and
// there are no order-level add-ons.
func SingleProfile() Profile {
	return Profile{
		Name:            ProfileSingle,
		FreeChars:       0,
		PerCharRate:     decimal.NewFromInt(5),
		RushFee:         decimal.Zero,
		ExtraServiceFee: decimal.Zero,
	}
}

// Breakdown is the derived cost of a cart. It is computed on demand and never stored.
type Breakdown struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	MessageSurcharge  decimal.Decimal `json:"message_surcharge"`
	ModifierSurcharge decimal.Decimal `json:"modifier_surcharge"`
	Total             decimal.Decimal `json:"total"`
}

// LineSubtotal is unit cost times quantity.
func LineSubtotal(l Line) decimal.Decimal {
	return l.Item.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (c *Cart) Subtotal() decimal.Decimal {
	return lo.Reduce(c.lines, func(acc decimal.Decimal, l Line, _ int) decimal.Decimal {
		return acc.Add(LineSubtotal(l))
	}, decimal.Zero)
}

// MessageSurcharge charges PerCharRate for every character past FreeChars.
// Length is measured in code points, not bytes.
func (c *Cart) MessageSurcharge() decimal.Decimal {
	extra := max(0, utf8.RuneCountInString(c.modifiers.Message)-max(0, c.profile.FreeChars))

	return c.profile.PerCharRate.Mul(decimal.NewFromInt(int64(extra)))
}

func (c *Cart) ModifierSurcharge() decimal.Decimal {
	surcharge := decimal.Zero

	if c.modifiers.Rush {
		surcharge = surcharge.Add(c.profile.RushFee)
	}

	if c.modifiers.ExtraService {
		surcharge = surcharge.Add(c.profile.ExtraServiceFee)
	}

	return surcharge
}

func (c *Cart) Total() decimal.Decimal {
	return c.Breakdown().Total
}

func (c *Cart) Breakdown() Breakdown {
	b := Breakdown{
		Subtotal:          c.Subtotal(),
		MessageSurcharge:  c.MessageSurcharge(),
		ModifierSurcharge: c.ModifierSurcharge(),
	}
	b.Total = b.Subtotal.Add(b.MessageSurcharge).Add(b.ModifierSurcharge)

	return b
}
