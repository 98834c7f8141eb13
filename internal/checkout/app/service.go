package app

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/dwikikusuma/shopcart/internal/cart/domain"
	"github.com/dwikikusuma/shopcart/internal/checkout/domain"
	customerdomain "github.com/dwikikusuma/shopcart/internal/customer/domain"
	shippingapp "github.com/dwikikusuma/shopcart/internal/shipping/app"
	shippingdomain "github.com/dwikikusuma/shopcart/internal/shipping/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductExpired      = errors.New("product is expired")
	ErrOutOfStock          = errors.New("product is out of stock")
	ErrInsufficientBalance = errors.New("customer balance is insufficient")
)

// ProductIssueError names the first product that failed a checkout
// validation. Kind is ErrProductExpired or ErrOutOfStock.
type ProductIssueError struct {
	Name string
	Kind error
}

func (e *ProductIssueError) Error() string {
	return fmt.Sprintf("product %s: %v", e.Name, e.Kind)
}

func (e *ProductIssueError) Unwrap() error {
	return e.Kind
}

type Service struct {
	shipping *shippingapp.Service
	reporter Reporter
}

func NewService(shipping *shippingapp.Service, reporter Reporter) *Service {
	return &Service{
		shipping: shipping,
		reporter: reporter,
	}
}

// Checkout validates the cart against product and customer state, then
// settles: shipment notice, balance deduction, stock decrement, receipt,
// and finally clears the cart. Nothing is mutated or printed until every
// validation has passed, so a failed checkout leaves customer, products
// and cart exactly as they were.
func (s *Service) Checkout(ctx context.Context, cart *cartdomain.Cart, customer *customerdomain.Customer) (domain.Receipt, error) {
	if cart == nil || cart.IsEmpty() {
		return domain.Receipt{}, ErrEmptyCart
	}

	items := cart.Items()

	for _, item := range items {
		if item.Product.IsExpired() {
			return domain.Receipt{}, &ProductIssueError{Name: item.Product.Name, Kind: ErrProductExpired}
		}
	}

	// Stock may have moved since the items were added.
	for _, item := range items {
		if !item.Product.IsAvailable(item.Quantity) {
			return domain.Receipt{}, &ProductIssueError{Name: item.Product.Name, Kind: ErrOutOfStock}
		}
	}

	subtotal := cart.Subtotal()
	pkg := packageItems(items)
	shippingCost := s.shipping.Cost(pkg)
	total := subtotal.Add(shippingCost)

	if customer.Balance().LessThan(total) {
		return domain.Receipt{}, ErrInsufficientBalance
	}

	// Commit phase. The pre-checks above guarantee the mutations below
	// cannot fail; an error here is a broken invariant.
	if manifest, ok := s.shipping.Manifest(pkg); ok {
		s.reporter.ShipmentNotice(manifest)
	}

	if err := customer.Deduct(total); err != nil {
		return domain.Receipt{}, fmt.Errorf("deduct balance: %w", err)
	}

	for _, item := range items {
		if err := item.Product.ReduceQuantity(item.Quantity); err != nil {
			return domain.Receipt{}, fmt.Errorf("reduce stock: %w", err)
		}
	}

	receipt := domain.Receipt{
		ID:       uuid.NewString(),
		Lines:    make([]domain.ReceiptLine, 0, len(items)),
		Subtotal: subtotal,
		Shipping: shippingCost,
		Total:    total,
	}
	for _, item := range items {
		receipt.Lines = append(receipt.Lines, domain.ReceiptLine{
			Quantity:  item.Quantity,
			Name:      item.Product.Name,
			LineTotal: item.Total(),
		})
	}
	s.reporter.Receipt(receipt)

	cart.Clear()
	return receipt, nil
}

func packageItems(items []cartdomain.LineItem) []shippingdomain.PackageItem {
	var pkg []shippingdomain.PackageItem
	for _, item := range items {
		if !item.Product.Shippable() {
			continue
		}
		pkg = append(pkg, shippingdomain.PackageItem{
			Name:     item.Product.Name,
			WeightKg: item.Product.Weight(),
			Quantity: item.Quantity,
		})
	}
	return pkg
}
