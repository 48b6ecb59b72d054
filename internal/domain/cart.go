package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine is one distinct menu item plus its requested quantity. A stored
// line always has Quantity >= 1; zero-or-negative quantities remove the line.
type CartLine struct {
	Item     MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the transient, session-owned item selection. Lines are keyed by
// item id and kept in insertion order so summaries enumerate
// deterministically.
type Cart struct {
	lines map[string]*CartLine
	order []string
}

func NewCart() *Cart {
	return &Cart{
		lines: make(map[string]*CartLine),
	}
}

// Add inserts the item with quantity 1, or bumps the quantity when the
// item is already in the cart.
func (c *Cart) Add(item MenuItem) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &CartLine{Item: item, Quantity: 1}
	c.order = append(c.order, item.ID)
}

// SetQuantity replaces the stored quantity. Quantity <= 0 removes the line.
// Setting a quantity for an item id that is not in the cart is a silent
// no-op, matching Add/Remove's tolerance of stale ids.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	if line, ok := c.lines[itemID]; ok {
		line.Quantity = quantity
	}
}

// Remove deletes the line if present.
func (c *Cart) Remove(itemID string) {
	if _, ok := c.lines[itemID]; !ok {
		return
	}
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}

// Line returns the stored line for an item id.
func (c *Cart) Line(itemID string) (CartLine, bool) {
	line, ok := c.lines[itemID]
	if !ok {
		return CartLine{}, false
	}
	return *line, true
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, id := range c.order {
		subtotal = subtotal.Add(c.lines[id].Total())
	}
	return subtotal
}
