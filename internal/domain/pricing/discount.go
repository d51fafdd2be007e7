package pricing

import (
	"errors"
	"math"
)

var (
	ErrInvalidPercentage   = errors.New("percentage must be greater than 0 and at most 100")
	ErrNegativeFixedAmount = errors.New("fixed amount must not be negative")
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

// Discount is a validated discount value. Money is int64 cents throughout;
// percentage amounts are rounded half-up to whole cents when applied.
type Discount struct {
	discountType DiscountType
	percentage   float64
	amountCents  int64
}

func NewPercentageDiscount(value float64) (Discount, error) {
	if value <= 0 || value > 100 {
		return Discount{}, ErrInvalidPercentage
	}
	return Discount{discountType: DiscountTypePercentage, percentage: value}, nil
}

func NewFixedAmountDiscount(cents int64) (Discount, error) {
	if cents < 0 {
		return Discount{}, ErrNegativeFixedAmount
	}
	return Discount{discountType: DiscountTypeFixedAmount, amountCents: cents}, nil
}

func (d Discount) Type() DiscountType { return d.discountType }
func (d Discount) Percentage() float64 { return d.percentage }
func (d Discount) AmountCents() int64  { return d.amountCents }

// Apply returns the discounted price in cents, clamped at zero.
func (d Discount) Apply(basePriceCents int64) int64 {
	var discounted int64
	switch d.discountType {
	case DiscountTypePercentage:
		off := int64(math.Round(float64(basePriceCents) * d.percentage / 100))
		discounted = basePriceCents - off
	case DiscountTypeFixedAmount:
		discounted = basePriceCents - d.amountCents
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}
