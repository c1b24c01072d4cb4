package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in the cart with its quantity.
type LineItem struct {
	Product  Product
	Quantity int
}

// Cart holds line items in insertion order, at most one per product ID.
// Quantities are always >= 1; the only way to drop an item is Remove.
type Cart struct {
	items []LineItem
}

// Add merges qty into an existing line for the same product, or appends a new
// line. qty below 1 counts as 1. There is no upper bound.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: qty})
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op; the bool reports whether anything changed.
func (c *Cart) Remove(productID string) bool {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity applies delta to the matched line, clamped at 1. It cannot
// remove an item; callers wanting removal use Remove.
func (c *Cart) UpdateQuantity(productID string, delta int) bool {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return true
		}
	}
	return false
}

// Total recomputes sum(price * qty) on every call. Exact decimal arithmetic;
// rounding to two places happens only at display time.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is sum of quantities across lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Items returns a copy; mutating it does not touch the cart.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Clear() { c.items = nil }
