package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("amount cannot be negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Customer carries a spendable balance. The balance never goes negative;
// a deduction larger than the balance is rejected without mutation.
type Customer struct {
	ID   string
	Name string

	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		ID:      uuid.NewString(),
		Name:    name,
		balance: balance,
	}
}

func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

func (c *Customer) Deduct(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if c.balance.LessThan(amount) {
		return fmt.Errorf("balance %s, charge %s: %w", c.balance, amount, ErrInsufficientBalance)
	}
	c.balance = c.balance.Sub(amount)
	return nil
}

func (c *Customer) Add(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	c.balance = c.balance.Add(amount)
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (Balance: $%s)", c.Name, c.balance.StringFixed(2))
}
