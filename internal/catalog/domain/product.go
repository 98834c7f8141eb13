package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// Product is a catalog item. Expiry and shipping behavior are capabilities
// set at construction; a product without them never expires and has zero
// shipping weight.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal

	quantity int
	expiry   *time.Time
	weightKg float64
}

type Option func(*Product)

// WithExpiry marks the product as expirable after the given date.
func WithExpiry(date time.Time) Option {
	return func(p *Product) {
		d := date
		p.expiry = &d
	}
}

// WithWeight marks the product as shippable with a per-unit weight in kg.
func WithWeight(kg float64) Option {
	return func(p *Product) {
		p.weightKg = kg
	}
}

func NewProduct(name string, price decimal.Decimal, quantity int, opts ...Option) *Product {
	p := &Product{
		Name:     name,
		Price:    price,
		quantity: quantity,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Expirable() bool {
	return p.expiry != nil
}

func (p *Product) Shippable() bool {
	return p.weightKg > 0
}

// Weight returns the per-unit shipping weight in kg, 0 for products that
// are not shippable.
func (p *Product) Weight() float64 {
	return p.weightKg
}

func (p *Product) ExpiryDate() (time.Time, bool) {
	if p.expiry == nil {
		return time.Time{}, false
	}
	return *p.expiry, true
}

func (p *Product) IsExpired() bool {
	return p.ExpiredAt(time.Now())
}

// ExpiredAt reports whether the product is expired at the given instant.
// A product expiring exactly at now is still valid.
func (p *Product) ExpiredAt(now time.Time) bool {
	if p.expiry == nil {
		return false
	}
	return now.After(*p.expiry)
}

func (p *Product) IsAvailable(requested int) bool {
	return p.quantity >= requested
}

// ReduceQuantity removes sold units from stock. Callers are expected to
// have verified availability; over-reduction is a contract violation and
// leaves the quantity unchanged.
func (p *Product) ReduceQuantity(amount int) error {
	if amount < 0 {
		return fmt.Errorf("reduce quantity by %d: amount cannot be negative", amount)
	}
	if amount > p.quantity {
		return fmt.Errorf("product %s: have %d, want %d: %w", p.Name, p.quantity, amount, ErrInsufficientStock)
	}
	p.quantity -= amount
	return nil
}

// AddStock restocks the product. Non-positive amounts are ignored.
func (p *Product) AddStock(amount int) {
	if amount > 0 {
		p.quantity += amount
	}
}

func (p *Product) String() string {
	return fmt.Sprintf("%s - $%s (Qty: %d)", p.Name, p.Price.StringFixed(2), p.quantity)
}
