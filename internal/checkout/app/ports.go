package app

import (
	"github.com/dwikikusuma/shopcart/internal/checkout/domain"
	shippingdomain "github.com/dwikikusuma/shopcart/internal/shipping/domain"
)

// Reporter renders checkout output. The console implementation lives in
// internal/report; tests substitute a capturing fake.
type Reporter interface {
	ShipmentNotice(m shippingdomain.Manifest)
	Receipt(r domain.Receipt)
}
