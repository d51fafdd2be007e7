//go:build unit

package pricing_test

import (
	"testing"

	"chefpartner/internal/domain/pricing"
	"chefpartner/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	base := func(cents int64) *int64 { return &cents }

	t.Run("price on request yields null quote", func(t *testing.T) {
		rule := builder.NewRuleBuilder().BuildResolved()
		quote := pricing.Calculate(nil, rule)
		assert.Nil(t, quote.DiscountedPriceCents)
		assert.Nil(t, quote.DiscountPercent)
	})

	t.Run("no rule yields null quote", func(t *testing.T) {
		quote := pricing.Calculate(base(100000), nil)
		assert.Nil(t, quote.DiscountedPriceCents)
		assert.Nil(t, quote.DiscountPercent)
	})

	t.Run("10 percent off 1000", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithPercentage(10).BuildResolved()
		quote := pricing.Calculate(base(100000), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		require.NotNil(t, quote.DiscountPercent)
		assert.Equal(t, int64(90000), *quote.DiscountedPriceCents)
		assert.Equal(t, 10, *quote.DiscountPercent)
	})

	t.Run("20 percent off 500", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithPercentage(20).BuildResolved()
		quote := pricing.Calculate(base(50000), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		assert.Equal(t, int64(40000), *quote.DiscountedPriceCents)
		assert.Equal(t, 20, *quote.DiscountPercent)
	})

	t.Run("100 percent yields zero price and full display percent", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithPercentage(100).BuildResolved()
		quote := pricing.Calculate(base(100000), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		assert.Equal(t, int64(0), *quote.DiscountedPriceCents)
		assert.Equal(t, 100, *quote.DiscountPercent)
	})

	t.Run("fixed amount", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithFixedAmount(5000).BuildResolved()
		quote := pricing.Calculate(base(50000), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		assert.Equal(t, int64(45000), *quote.DiscountedPriceCents)
		assert.Equal(t, 10, *quote.DiscountPercent)
	})

	t.Run("fixed amount exceeding base clamps at zero", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithFixedAmount(200000).BuildResolved()
		quote := pricing.Calculate(base(50000), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		assert.Equal(t, int64(0), *quote.DiscountedPriceCents)
		assert.Equal(t, 100, *quote.DiscountPercent)
	})

	t.Run("display percent rounds half up", func(t *testing.T) {
		// 12500 off 100000 is exactly 12.5 percent
		rule := builder.NewRuleBuilder().WithFixedAmount(12500).BuildResolved()
		quote := pricing.Calculate(base(100000), rule)
		require.NotNil(t, quote.DiscountPercent)
		assert.Equal(t, 13, *quote.DiscountPercent)
	})

	t.Run("fractional percentage rounds the cent amount", func(t *testing.T) {
		// 7.5% of 999 cents is 74.925, rounded to 75
		rule := builder.NewRuleBuilder().WithPercentage(7.5).BuildResolved()
		quote := pricing.Calculate(base(999), rule)
		require.NotNil(t, quote.DiscountedPriceCents)
		assert.Equal(t, int64(924), *quote.DiscountedPriceCents)
	})

	t.Run("idempotent over identical inputs", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithPercentage(15).BuildResolved()
		price := base(123456)

		first := pricing.Calculate(price, rule)
		second := pricing.Calculate(price, rule)

		require.NotNil(t, first.DiscountedPriceCents)
		assert.Equal(t, *first.DiscountedPriceCents, *second.DiscountedPriceCents)
		assert.Equal(t, *first.DiscountPercent, *second.DiscountPercent)
	})

	t.Run("discounted price is never negative", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 49999, 200000} {
			rule := builder.NewRuleBuilder().WithFixedAmount(cents).BuildResolved()
			quote := pricing.Calculate(base(50000), rule)
			require.NotNil(t, quote.DiscountedPriceCents)
			assert.GreaterOrEqual(t, *quote.DiscountedPriceCents, int64(0))
		}
	})
}
