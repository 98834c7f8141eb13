package app

import (
	"github.com/dwikikusuma/shopcart/internal/shipping/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	rate decimal.Decimal
}

// NewService builds a shipping calculator charging ratePerKg per kilogram
// of total package weight.
func NewService(ratePerKg decimal.Decimal) *Service {
	return &Service{rate: ratePerKg}
}

func (s *Service) Rate() decimal.Decimal {
	return s.rate
}

// Cost is the total shippable weight times the rate. Pure.
func (s *Service) Cost(items []domain.PackageItem) decimal.Decimal {
	return decimal.NewFromFloat(totalWeight(items)).Mul(s.rate)
}

// Manifest builds the shipment notice for the given items. The second
// return is false when there is nothing to ship.
func (s *Service) Manifest(items []domain.PackageItem) (domain.Manifest, bool) {
	if len(items) == 0 {
		return domain.Manifest{}, false
	}

	m := domain.Manifest{Lines: make([]domain.ManifestLine, 0, len(items))}
	for _, item := range items {
		itemWeight := item.WeightKg * float64(item.Quantity)
		m.Lines = append(m.Lines, domain.ManifestLine{
			Quantity: item.Quantity,
			Name:     item.Name,
			Grams:    int64(itemWeight * 1000),
		})
	}
	m.TotalWeightKg = totalWeight(items)
	return m, true
}

func totalWeight(items []domain.PackageItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.WeightKg * float64(item.Quantity)
	}
	return total
}
