// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line represents one product's presence in a shopping cart.
// A cart holds at most one line per product; re-adding a product
// increments the existing line instead of duplicating it.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Note      string          `json:"note,omitempty"`
	AddedAt   time.Time       `json:"added_at"`
}

// LineTotal returns unit price multiplied by quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the in-session collection of lines for one browsing session.
// Lines keep insertion order across updates. The type is not safe for
// concurrent mutation; each request operates on its own loaded copy.
type Cart struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot is the derived read-only view of a cart. Totals are recomputed
// on every call and can never go stale relative to the line collection.
type Snapshot struct {
	SessionID  string          `json:"session_id"`
	Lines      []Line          `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewCart creates an empty cart for the given session.
func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem adds a product to the cart. If a line for the same product
// already exists its quantity is incremented; otherwise a new line is
// appended. Quantity is clamped to at least 1.
func (c *Cart) AddItem(line Line, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += quantity
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}

	line.Quantity = quantity
	line.AddedAt = time.Now().UTC()
	c.Lines = append(c.Lines, line)
	c.UpdatedAt = line.AddedAt
}

// RemoveItem deletes the line for the given product. Removing a product
// that is not in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of
// zero or below removes the line entirely; the cart never holds a line
// with quantity <= 0. Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// SetNote attaches or replaces the free-text note on a line.
// Unknown products are ignored.
func (c *Cart) SetNote(productID uuid.UUID, note string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Note = note
			c.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// Clear empties the entire cart. Called after successful checkout.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.UpdatedAt = time.Now().UTC()
}

// Snapshot returns the lines in insertion order together with the
// derived totals.
func (c *Cart) Snapshot() Snapshot {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)

	totalItems := 0
	totalPrice := decimal.Zero
	for _, line := range lines {
		totalItems += line.Quantity
		totalPrice = totalPrice.Add(line.LineTotal())
	}

	return Snapshot{
		SessionID:  c.SessionID,
		Lines:      lines,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
