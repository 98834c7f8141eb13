package domain

import "github.com/shopspring/decimal"

type ReceiptLine struct {
	Quantity  int
	Name      string
	LineTotal decimal.Decimal
}

// Receipt is the settlement record of a successful checkout.
type Receipt struct {
	ID       string
	Lines    []ReceiptLine
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
