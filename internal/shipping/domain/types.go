package domain

// PackageItem is a transient view of a shippable cart line: it exists
// only for the duration of a shipping calculation.
type PackageItem struct {
	Name     string
	WeightKg float64
	Quantity int
}

type ManifestLine struct {
	Quantity int
	Name     string
	Grams    int64
}

// Manifest is the structured shipment notice for one package.
type Manifest struct {
	Lines         []ManifestLine
	TotalWeightKg float64
}
