package cart

import "math"

// Pricing holds the display-pricing rules applied when deriving totals.
// These mirror the backend's rules for presentation only; the backend
// recomputes everything at order placement.
type Pricing struct {
	// FreeShippingThreshold waives the flat fee when the subtotal is
	// greater than or equal to it (inclusive).
	FreeShippingThreshold float64
	// FlatShippingFee is charged below the threshold.
	FlatShippingFee float64
	// TaxRate is the fixed fraction of the subtotal charged as tax.
	TaxRate float64
}

// DefaultPricing carries the marketplace's NPR display-pricing rules.
var DefaultPricing = Pricing{
	FreeShippingThreshold: 1000,
	FlatShippingFee:       100,
	TaxRate:               0.05,
}

// Totals are the derived monetary figures for a cart. They are never
// stored; callers recompute them from the current cart on demand.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives display totals from a cart. Each monetary figure
// is rounded to two decimal places before being combined. A nil or
// empty cart yields all-zero totals.
func ComputeTotals(c *Cart, p Pricing) Totals {
	if c == nil || len(c.Items) == 0 {
		return Totals{}
	}

	raw := 0.0
	for _, item := range c.Items {
		raw += item.UnitPrice * float64(item.Quantity)
	}
	subtotal := round2(raw)

	shipping := p.FlatShippingFee
	if subtotal >= p.FreeShippingThreshold {
		shipping = 0
	}

	tax := round2(subtotal * p.TaxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    round2(subtotal + shipping + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
