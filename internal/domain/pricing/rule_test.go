//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"chefpartner/internal/domain/pricing"
	"chefpartner/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RuleBuilder)
	errIs  error
}

func TestRule(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRuleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, pricing.DiscountTypePercentage, actual.Discount().Type())
	})

	t.Run("discount value validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero percentage",
				mutate: func(b *builder.RuleBuilder) { b.WithPercentage(0) },
				errIs:  pricing.ErrInvalidPercentage,
			},
			{
				name:   "negative percentage",
				mutate: func(b *builder.RuleBuilder) { b.WithPercentage(-5) },
				errIs:  pricing.ErrInvalidPercentage,
			},
			{
				name:   "maximum valid percentage",
				mutate: func(b *builder.RuleBuilder) { b.WithPercentage(100) },
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.RuleBuilder) { b.WithPercentage(100.5) },
				errIs:  pricing.ErrInvalidPercentage,
			},
			{
				name:   "zero fixed amount",
				mutate: func(b *builder.RuleBuilder) { b.WithFixedAmount(0) },
			},
			{
				name:   "negative fixed amount",
				mutate: func(b *builder.RuleBuilder) { b.WithFixedAmount(-100) },
				errIs:  pricing.ErrNegativeFixedAmount,
			},
		})
	})

	t.Run("validity window validation", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		until := from.Add(-time.Hour)

		runCases(t, []testCase{
			{
				name:   "from after until",
				mutate: func(b *builder.RuleBuilder) { b.WithWindow(&from, &until) },
				errIs:  pricing.ErrInvalidValidityWindow,
			},
			{
				name:   "open-ended window",
				mutate: func(b *builder.RuleBuilder) { b.WithWindow(&from, nil) },
			},
			{
				name:   "point window",
				mutate: func(b *builder.RuleBuilder) { b.WithWindow(&from, &from) },
			},
		})
	})

	t.Run("IsValidAt", func(t *testing.T) {
		now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
		past := now.Add(-24 * time.Hour)
		future := now.Add(24 * time.Hour)

		cases := []struct {
			name     string
			mutate   func(*builder.RuleBuilder)
			expected bool
		}{
			{"active with no window", func(b *builder.RuleBuilder) {}, true},
			{"inactive", func(b *builder.RuleBuilder) { b.WithActive(false) }, false},
			{"window contains now", func(b *builder.RuleBuilder) { b.WithWindow(&past, &future) }, true},
			{"not yet valid", func(b *builder.RuleBuilder) { b.WithWindow(&future, nil) }, false},
			{"expired", func(b *builder.RuleBuilder) { b.WithWindow(nil, &past) }, false},
			{"valid_from is inclusive", func(b *builder.RuleBuilder) { b.WithWindow(&now, nil) }, true},
			{"valid_until is inclusive", func(b *builder.RuleBuilder) { b.WithWindow(nil, &now) }, true},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				rule := builder.NewRuleBuilder().With(c.mutate).BuildResolved()
				assert.Equal(t, c.expected, rule.IsValidAt(now))
			})
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRuleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
