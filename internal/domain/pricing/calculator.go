package pricing

import "math"

// Quote is the displayable pricing outcome for one product. Both fields are
// nil when the price is "on request" or no rule applies.
type Quote struct {
	DiscountedPriceCents *int64
	DiscountPercent      *int
}

// Calculate applies a resolved rule to a base price. Pure and idempotent:
// identical inputs always yield identical output.
func Calculate(basePriceCents *int64, rule *Rule) Quote {
	if basePriceCents == nil || rule == nil {
		return Quote{}
	}

	discounted := rule.Discount().Apply(*basePriceCents)
	percent := displayPercent(*basePriceCents, discounted)

	return Quote{
		DiscountedPriceCents: &discounted,
		DiscountPercent:      &percent,
	}
}

// displayPercent is the integer half-up rounding of the effective
// reduction, e.g. 1000 -> 900 displays as 10.
func displayPercent(base, discounted int64) int {
	if base <= 0 {
		return 0
	}
	ratio := 1 - float64(discounted)/float64(base)
	return int(math.Floor(ratio*100 + 0.5))
}
