package domain

import (
	"errors"
	"fmt"

	catalog "github.com/dwikikusuma/shopcart/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNilProduct        = errors.New("product cannot be nil")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockViolationError reports an add that the product's stock cannot
// cover. Merging is set when an existing line item was being topped up.
type StockViolationError struct {
	Product   string
	Available int
	Requested int
	Merging   bool
}

func (e *StockViolationError) Error() string {
	if e.Merging {
		return fmt.Sprintf("adding %d more %s would exceed available stock: %v", e.Requested, e.Product, ErrInsufficientStock)
	}
	return fmt.Sprintf("%s: available %d, requested %d: %v", e.Product, e.Available, e.Requested, ErrInsufficientStock)
}

func (e *StockViolationError) Unwrap() error {
	return ErrInsufficientStock
}

// LineItem pairs a product reference with a purchase quantity. The
// product is shared with the catalog, not copied.
type LineItem struct {
	Product  *catalog.Product
	Quantity int
}

func (li LineItem) Total() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds at most one line item per product name, in insertion order.
type Cart struct {
	ID string

	items []LineItem
}

func NewCart() *Cart {
	return &Cart{ID: uuid.NewString()}
}

// AddResult describes a successful Add for status reporting. Quantity is
// the line item's quantity after the add.
type AddResult struct {
	Name     string
	Quantity int
	Merged   bool
}

// Add validates the request against current stock and either appends a
// new line item or merges into an existing one. The cart is unchanged on
// any failure.
func (c *Cart) Add(p *catalog.Product, quantity int) (AddResult, error) {
	if p == nil {
		return AddResult{}, ErrNilProduct
	}
	if quantity <= 0 {
		return AddResult{}, ErrInvalidQuantity
	}
	if !p.IsAvailable(quantity) {
		return AddResult{}, &StockViolationError{
			Product:   p.Name,
			Available: p.Quantity(),
			Requested: quantity,
		}
	}

	for i := range c.items {
		if c.items[i].Product.Name != p.Name {
			continue
		}
		merged := c.items[i].Quantity + quantity
		if !p.IsAvailable(merged) {
			return AddResult{}, &StockViolationError{
				Product:   p.Name,
				Available: p.Quantity(),
				Requested: quantity,
				Merging:   true,
			}
		}
		c.items[i].Quantity = merged
		return AddResult{Name: p.Name, Quantity: merged, Merged: true}, nil
	}

	c.items = append(c.items, LineItem{Product: p, Quantity: quantity})
	return AddResult{Name: p.Name, Quantity: quantity}, nil
}

// Remove drops the line item for the named product, reporting whether it
// was present.
func (c *Cart) Remove(name string) bool {
	for i := range c.items {
		if c.items[i].Product.Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Subtotal sums price times quantity over all line items.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
