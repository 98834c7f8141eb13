package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	cartdomain "github.com/dwikikusuma/shopcart/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/shopcart/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/shopcart/internal/catalog/domain"
	"github.com/dwikikusuma/shopcart/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/shopcart/internal/checkout/app"
	customerdomain "github.com/dwikikusuma/shopcart/internal/customer/domain"
	"github.com/dwikikusuma/shopcart/internal/report"
	shippingapp "github.com/dwikikusuma/shopcart/internal/shipping/app"
	"github.com/dwikikusuma/shopcart/pkg/config"
	"github.com/dwikikusuma/shopcart/pkg/logger"
	"github.com/dwikikusuma/shopcart/pkg/shutdown"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop", Env: cfg.AppEnv, Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	out := os.Stdout
	console := report.NewConsole(out)

	catalogRepo := memory.NewProductRepo()
	catalogSvc := catalogapp.NewService(catalogRepo)

	shippingSvc := shippingapp.NewService(decimal.NewFromFloat(cfg.ShippingRatePerKg))
	checkoutSvc := checkoutapp.NewService(shippingSvc, console)

	if err := run(ctx, out, console, catalogSvc, checkoutSvc, log); err != nil {
		log.Error("demo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, console *report.Console, catalogSvc *catalogapp.Service, checkoutSvc *checkoutapp.Service, log *slog.Logger) error {
	fmt.Fprintln(out, "Program Started")

	now := time.Now()

	cheese, err := catalogSvc.CreateProduct(ctx, "Cheese", decimal.NewFromFloat(100.0), 10,
		catalogdomain.WithExpiry(now.AddDate(0, 0, 7)), catalogdomain.WithWeight(0.2))
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	tv, err := catalogSvc.CreateProduct(ctx, "TV", decimal.NewFromFloat(500.0), 5,
		catalogdomain.WithWeight(0.7))
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	scratchCard, err := catalogSvc.CreateProduct(ctx, "Mobile scratch card", decimal.NewFromFloat(25.0), 50)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	biscuits, err := catalogSvc.CreateProduct(ctx, "Biscuits", decimal.NewFromFloat(75.0), 20,
		catalogdomain.WithExpiry(now.AddDate(0, 0, 30)))
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	log.Info("catalog seeded", slog.Int("products", 4))

	customer := customerdomain.NewCustomer("John Doe", decimal.NewFromFloat(1000.0))
	fmt.Fprintf(out, "Customer: %s\n\n", customer)

	checkout := func(c *cartdomain.Cart, cust *customerdomain.Customer) {
		if _, err := checkoutSvc.Checkout(ctx, c, cust); err != nil {
			console.CheckoutError(err)
		}
	}
	add := func(c *cartdomain.Cart, p *catalogdomain.Product, qty int) {
		res, err := c.Add(p, qty)
		if err != nil {
			console.AddError(err)
			return
		}
		console.AddStatus(res)
	}

	fmt.Fprintln(out, "Testing")
	cart := cartdomain.NewCart()
	add(cart, cheese, 2)
	add(cart, tv, 1)
	add(cart, scratchCard, 1)
	checkout(cart, customer)

	fmt.Fprintln(out, "\n1. Empty Cart Test:")
	checkout(cartdomain.NewCart(), customer)

	fmt.Fprintln(out, "\n2. Insufficient Balance Test:")
	poorCustomer := customerdomain.NewCustomer("Poor Customer", decimal.NewFromFloat(50.0))
	expensiveCart := cartdomain.NewCart()
	add(expensiveCart, tv, 2)
	checkout(expensiveCart, poorCustomer)

	fmt.Fprintln(out, "\n3. Expired Product Test:")
	expiredCheese, err := catalogSvc.CreateProduct(ctx, "Expired Cheese", decimal.NewFromFloat(100.0), 10,
		catalogdomain.WithExpiry(now.AddDate(0, 0, -1)), catalogdomain.WithWeight(0.2))
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	expiredCart := cartdomain.NewCart()
	add(expiredCart, expiredCheese, 1)
	checkout(expiredCart, customer)

	fmt.Fprintln(out, "\n4. Out of Stock Test:")
	limitedTV, err := catalogSvc.CreateProduct(ctx, "Limited TV", decimal.NewFromFloat(500.0), 2,
		catalogdomain.WithWeight(0.7))
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	stockCart := cartdomain.NewCart()
	add(stockCart, limitedTV, 5)

	fmt.Fprintln(out, "\n5. Mixed Cart Test:")
	mixedCart := cartdomain.NewCart()
	add(mixedCart, cheese, 1)
	add(mixedCart, biscuits, 2)
	add(mixedCart, scratchCard, 1)
	checkout(mixedCart, customer)

	log.Info("demo finished", slog.String("customer", customer.Name), slog.String("balance", customer.Balance().StringFixed(2)))
	return nil
}
