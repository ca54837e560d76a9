package services

import "math"

// taxRate pairs a sales-tax rate with its customer-facing label.
type taxRate struct {
	rate  float64
	label string
}

// Rates for the markets the storefront ships to; the store trades from the
// UK, so unknown destinations fall back to UK VAT.
var taxRates = map[string]taxRate{
	"United Kingdom": {0.20, "VAT (20%)"},
	"Ireland":        {0.23, "VAT (23%)"},
	"France":         {0.20, "TVA (20%)"},
	"Germany":        {0.19, "MwSt (19%)"},
	"Netherlands":    {0.21, "BTW (21%)"},
	"United States":  {0.0, "Sales tax (0%)"},
}

var defaultTaxRate = taxRate{0.20, "VAT (20%)"}

// ComputeTax returns the tax due on a subtotal for the given destination
// country, rounded to the nearest penny. Deterministic, no side effects.
func ComputeTax(subtotal float64, country string) float64 {
	r, ok := taxRates[country]
	if !ok {
		r = defaultTaxRate
	}
	return math.Round(subtotal*r.rate*100) / 100
}

// TaxLabelFor returns the display label for the destination's tax line.
func TaxLabelFor(country string) string {
	if r, ok := taxRates[country]; ok {
		return r.label
	}
	return defaultTaxRate.label
}
