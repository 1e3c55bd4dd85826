// Package cart holds the in-memory cart and pricing engine used by an ordering session.
//
// A Cart is not safe for concurrent use. Callers that share one between goroutines
// must serialize access themselves.
package cart

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CatalogItem is a purchasable option as loaded from the catalog.
type CatalogItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// Line is one catalog item selected with a quantity of at least 1.
type Line struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}

// Modifiers are order-level add-ons independent of the lines.
type Modifiers struct {
	Message      string `json:"message"`
	Rush         bool   `json:"rush"`
	ExtraService bool   `json:"extra_service"`
}

// QuantityResult reports what SetQuantity did.
type QuantityResult string

const (
	QuantityUpdated  QuantityResult = "updated"
	QuantityRejected QuantityResult = "rejected"
	QuantityNoLine   QuantityResult = "no_line"
)

type Cart struct {
	profile   Profile
	lines     []Line
	modifiers Modifiers
	state     SubmissionState
}

func New(profile Profile) *Cart {
	return &Cart{
		profile: profile,
		state:   SubmissionIdle,
	}
}

func (c *Cart) Profile() Profile {
	return c.profile
}

// AddItem increments the line for item.ID, or appends a new line with quantity 1.
func (c *Cart) AddItem(item CatalogItem) {
	c.touch()

	if _, idx, ok := c.find(item.ID); ok {
		c.lines[idx].Quantity++
		return
	}

	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// RemoveItem deletes the line for itemID. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(itemID int64) {
	if _, _, ok := c.find(itemID); !ok {
		return
	}

	c.touch()
	c.lines = lo.Reject(c.lines, func(l Line, _ int) bool {
		return l.Item.ID == itemID
	})
}

// SetQuantity replaces the quantity of an existing line. Quantities below 1 are
// rejected and leave the cart untouched; removal goes through RemoveItem.
func (c *Cart) SetQuantity(itemID int64, quantity int) QuantityResult {
	if quantity < 1 {
		return QuantityRejected
	}

	_, idx, ok := c.find(itemID)
	if !ok {
		return QuantityNoLine
	}

	c.touch()
	c.lines[idx].Quantity = quantity

	return QuantityUpdated
}

func (c *Cart) SetMessage(text string) {
	c.touch()
	c.modifiers.Message = text
}

func (c *Cart) SetRush(rush bool) {
	c.touch()
	c.modifiers.Rush = rush
}

func (c *Cart) SetExtraService(extra bool) {
	c.touch()
	c.modifiers.ExtraService = extra
}

// Clear empties the lines and resets the modifiers to their defaults.
func (c *Cart) Clear() {
	c.lines = nil
	c.modifiers = Modifiers{}
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)

	return out
}

// Line returns the line for itemID, if any.
func (c *Cart) Line(itemID int64) (Line, bool) {
	l, _, ok := c.find(itemID)
	return l, ok
}

func (c *Cart) Modifiers() Modifiers {
	return c.modifiers
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	return lo.SumBy(c.lines, func(l Line) int { return l.Quantity })
}

func (c *Cart) find(itemID int64) (Line, int, bool) {
	return lo.FindIndexOf(c.lines, func(l Line) bool {
		return l.Item.ID == itemID
	})
}

// touch moves a settled submission back to idle once the user edits the cart again.
func (c *Cart) touch() {
	if c.state.IsTerminal() {
		c.state = SubmissionIdle
	}
}
