package pricing

import (
	"time"

	"github.com/google/uuid"
)

// Resolution is the outcome of rule selection. Rule is nil when no rule
// applies, which is a normal "no discount" outcome. AmbiguousWith lists the
// ids of same-tier rules the winner beat on the tie-break; administrators
// should treat a non-empty list as a configuration warning.
type Resolution struct {
	Rule          *Rule
	AmbiguousWith []uuid.UUID
}

// Resolve selects at most one applicable rule for a product at the given
// evaluation time. Precedence is product > category > brand > all; the first
// tier with a match wins and tiers are never stacked. Within a tier the
// oldest rule by created_at wins, rule id breaking exact timestamp ties, so
// the outcome never depends on input ordering.
func Resolve(rules []*Rule, product ProductRef, at time.Time) Resolution {
	var valid []*Rule
	for _, r := range rules {
		if r.IsValidAt(at) {
			valid = append(valid, r)
		}
	}

	for _, tier := range []Tier{TierProduct, TierCategory, TierBrand, TierAll} {
		var matched []*Rule
		for _, r := range valid {
			if r.Scope().Tier() == tier && r.Scope().Matches(product) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}

		winner := matched[0]
		for _, r := range matched[1:] {
			if beats(r, winner) {
				winner = r
			}
		}

		var ambiguous []uuid.UUID
		for _, r := range matched {
			if r.ID() != winner.ID() {
				ambiguous = append(ambiguous, r.ID())
			}
		}
		return Resolution{Rule: winner, AmbiguousWith: ambiguous}
	}

	return Resolution{}
}

func beats(a, b *Rule) bool {
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().Before(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}
