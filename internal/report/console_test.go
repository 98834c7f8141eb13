package report

import (
	"bytes"
	"testing"

	cartdomain "github.com/dwikikusuma/shopcart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/shopcart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/shopcart/internal/checkout/domain"
	shippingdomain "github.com/dwikikusuma/shopcart/internal/shipping/domain"
	"github.com/shopspring/decimal"
)

func render(fn func(c *Console)) string {
	var buf bytes.Buffer
	fn(NewConsole(&buf))
	return buf.String()
}

func TestAddStatus(t *testing.T) {
	t.Run("new line item", func(t *testing.T) {
		got := render(func(c *Console) {
			c.AddStatus(cartdomain.AddResult{Name: "Cheese", Quantity: 2})
		})
		if want := "Added 2 Cheese(s) to cart\n"; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("merged line item", func(t *testing.T) {
		got := render(func(c *Console) {
			c.AddStatus(cartdomain.AddResult{Name: "Cheese", Quantity: 5, Merged: true})
		})
		if want := "Updated quantity for Cheese to 5\n"; got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}

func TestAddError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil product", cartdomain.ErrNilProduct, "Error: Product cannot be null\n"},
		{"invalid quantity", cartdomain.ErrInvalidQuantity, "Error: Quantity must be greater than 0\n"},
		{
			"insufficient stock",
			&cartdomain.StockViolationError{Product: "Limited TV", Available: 2, Requested: 5},
			"Error: Insufficient stock. Available: 2, Requested: 5\n",
		},
		{
			"merge over stock",
			&cartdomain.StockViolationError{Product: "Cheese", Available: 10, Requested: 3, Merging: true},
			"Error: Adding 3 more would exceed available stock\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render(func(c *Console) { c.AddError(tc.err) })
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckoutError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"empty cart", checkoutapp.ErrEmptyCart, "Error: Cart is empty\n"},
		{
			"expired product",
			&checkoutapp.ProductIssueError{Name: "Expired Cheese", Kind: checkoutapp.ErrProductExpired},
			"Error: Product Expired Cheese is expired\n",
		},
		{
			"out of stock",
			&checkoutapp.ProductIssueError{Name: "TV", Kind: checkoutapp.ErrOutOfStock},
			"Error: Product TV is out of stock\n",
		},
		{"insufficient balance", checkoutapp.ErrInsufficientBalance, "Error: Customer's balance is insufficient\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render(func(c *Console) { c.CheckoutError(tc.err) })
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestShipmentNotice(t *testing.T) {
	got := render(func(c *Console) {
		c.ShipmentNotice(shippingdomain.Manifest{
			Lines: []shippingdomain.ManifestLine{
				{Quantity: 2, Name: "Cheese", Grams: 400},
				{Quantity: 1, Name: "TV", Grams: 700},
			},
			TotalWeightKg: 1.1,
		})
	})

	want := "** Shipment notice **\n" +
		"2x Cheese       400g\n" +
		"1x TV           700g\n" +
		"Total package weight 1.1kg\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReceipt(t *testing.T) {
	got := render(func(c *Console) {
		c.Receipt(checkoutdomain.Receipt{
			Lines: []checkoutdomain.ReceiptLine{
				{Quantity: 2, Name: "Cheese", LineTotal: decimal.NewFromFloat(200.0)},
				{Quantity: 1, Name: "TV", LineTotal: decimal.NewFromFloat(500.0)},
				{Quantity: 1, Name: "Mobile scratch card", LineTotal: decimal.NewFromFloat(25.0)},
			},
			Subtotal: decimal.NewFromFloat(725.0),
			Shipping: decimal.RequireFromString("29.997"),
			Total:    decimal.RequireFromString("754.997"),
		})
	})

	want := "** Checkout receipt **\n" +
		"2x Cheese       200\n" +
		"1x TV           500\n" +
		"1x Mobile scratch card 25\n" +
		"----------------------\n" +
		"Subtotal         725\n" +
		"Shipping         29\n" +
		"Amount           754\n" +
		"END.\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
