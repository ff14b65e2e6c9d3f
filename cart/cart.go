// Package cart manages the line items of a profile's basket.
//
// A Cart holds at most one line per product id and every quantity stays at or above one:
// Decrement floors at one, Remove is the only way a line disappears.
package cart

import (
	"errors"

	"storefront/models"
)

var (
	ErrLineNotFound = errors.New("cart line not found")
	ErrCartEmpty    = errors.New("cart is empty")
)

type Cart struct {
	lines []models.CartLine
}

// New builds a cart from persisted lines. Duplicate product ids are merged and quantities
// below one are raised to one, so a hand-edited blob cannot break the invariants.
func New(lines []models.CartLine) *Cart {
	c := &Cart{lines: make([]models.CartLine, 0, len(lines))}
	for _, l := range lines {
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		if i := c.index(l.ID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) index(id int64) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart and returns the resulting line.
func (c *Cart) Add(p models.Product) models.CartLine {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i]
	}
	line := models.CartLine{Product: p, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

func (c *Cart) Increment(id int64) (models.CartLine, error) {
	i := c.index(id)
	if i < 0 {
		return models.CartLine{}, ErrLineNotFound
	}
	c.lines[i].Quantity++
	return c.lines[i], nil
}

// Decrement lowers the quantity by one but never below one.
func (c *Cart) Decrement(id int64) (models.CartLine, error) {
	i := c.index(id)
	if i < 0 {
		return models.CartLine{}, ErrLineNotFound
	}
	c.lines[i].Quantity = max(1, c.lines[i].Quantity-1)
	return c.lines[i], nil
}

func (c *Cart) Remove(id int64) error {
	i := c.index(id)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Clear() { c.lines = c.lines[:0] }

// Total is the sum of price × quantity. Drawer, cart page and checkout all use it.
func Total(lines []models.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the number of units in the cart, shown on the header badge.
func ItemCount(lines []models.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
