package report

import (
	"errors"
	"fmt"
	"io"

	cartdomain "github.com/dwikikusuma/shopcart/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/shopcart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/shopcart/internal/checkout/domain"
	shippingdomain "github.com/dwikikusuma/shopcart/internal/shipping/domain"
)

// Console renders cart and checkout results as the demo's line-oriented
// text output. The writer is injectable so tests capture output instead
// of stdout.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) AddStatus(res cartdomain.AddResult) {
	if res.Merged {
		fmt.Fprintf(c.w, "Updated quantity for %s to %d\n", res.Name, res.Quantity)
		return
	}
	fmt.Fprintf(c.w, "Added %d %s(s) to cart\n", res.Quantity, res.Name)
}

func (c *Console) AddError(err error) {
	var stock *cartdomain.StockViolationError
	switch {
	case errors.Is(err, cartdomain.ErrNilProduct):
		fmt.Fprintln(c.w, "Error: Product cannot be null")
	case errors.Is(err, cartdomain.ErrInvalidQuantity):
		fmt.Fprintln(c.w, "Error: Quantity must be greater than 0")
	case errors.As(err, &stock) && stock.Merging:
		fmt.Fprintf(c.w, "Error: Adding %d more would exceed available stock\n", stock.Requested)
	case errors.As(err, &stock):
		fmt.Fprintf(c.w, "Error: Insufficient stock. Available: %d, Requested: %d\n", stock.Available, stock.Requested)
	default:
		fmt.Fprintf(c.w, "Error: %v\n", err)
	}
}

func (c *Console) CheckoutError(err error) {
	var issue *checkoutapp.ProductIssueError
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		fmt.Fprintln(c.w, "Error: Cart is empty")
	case errors.As(err, &issue) && errors.Is(issue.Kind, checkoutapp.ErrProductExpired):
		fmt.Fprintf(c.w, "Error: Product %s is expired\n", issue.Name)
	case errors.As(err, &issue) && errors.Is(issue.Kind, checkoutapp.ErrOutOfStock):
		fmt.Fprintf(c.w, "Error: Product %s is out of stock\n", issue.Name)
	case errors.Is(err, checkoutapp.ErrInsufficientBalance):
		fmt.Fprintln(c.w, "Error: Customer's balance is insufficient")
	default:
		fmt.Fprintf(c.w, "Error: %v\n", err)
	}
}

func (c *Console) ShipmentNotice(m shippingdomain.Manifest) {
	fmt.Fprintln(c.w, "** Shipment notice **")
	for _, line := range m.Lines {
		fmt.Fprintf(c.w, "%dx %-12s %dg\n", line.Quantity, line.Name, line.Grams)
	}
	fmt.Fprintf(c.w, "Total package weight %.1fkg\n", m.TotalWeightKg)
}

func (c *Console) Receipt(r checkoutdomain.Receipt) {
	fmt.Fprintln(c.w, "** Checkout receipt **")
	for _, line := range r.Lines {
		fmt.Fprintf(c.w, "%dx %-12s %d\n", line.Quantity, line.Name, line.LineTotal.IntPart())
	}
	fmt.Fprintln(c.w, "----------------------")
	fmt.Fprintf(c.w, "Subtotal         %d\n", r.Subtotal.IntPart())
	fmt.Fprintf(c.w, "Shipping         %d\n", r.Shipping.IntPart())
	fmt.Fprintf(c.w, "Amount           %d\n", r.Total.IntPart())
	fmt.Fprintln(c.w, "END.")
}
