package queries

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type DiscountRuleQueries interface {
	// ListByPartner returns a partner's rules plus configuration warnings
	// for targets contested by more than one active rule at the same tier.
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*DiscountRuleView, []AmbiguityWarning, error)
}

type discountRuleQueriesImpl struct {
	readStore DiscountRuleReadStore
}

func NewDiscountRuleQueries(readStore DiscountRuleReadStore) DiscountRuleQueries {
	return &discountRuleQueriesImpl{readStore: readStore}
}

func (q *discountRuleQueriesImpl) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*DiscountRuleView, []AmbiguityWarning, error) {
	views, err := q.readStore.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, nil, err
	}
	return views, detectAmbiguities(views), nil
}

func detectAmbiguities(views []*DiscountRuleView) []AmbiguityWarning {
	type key struct {
		appliesTo string
		target    string
	}
	contested := make(map[key][]uuid.UUID)

	for _, v := range views {
		if !v.IsActive {
			continue
		}
		k := key{appliesTo: v.AppliesTo, target: ruleTarget(v)}
		contested[k] = append(contested[k], v.ID)
	}

	var warnings []AmbiguityWarning
	for k, ids := range contested {
		if len(ids) < 2 {
			continue
		}
		warnings = append(warnings, AmbiguityWarning{
			AppliesTo: k.appliesTo,
			Target:    k.target,
			RuleIDs:   ids,
		})
	}
	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].AppliesTo != warnings[j].AppliesTo {
			return warnings[i].AppliesTo < warnings[j].AppliesTo
		}
		return warnings[i].Target < warnings[j].Target
	})
	return warnings
}

func ruleTarget(v *DiscountRuleView) string {
	switch {
	case v.ProductID != nil:
		return v.ProductID.String()
	case v.CategoryID != nil:
		return v.CategoryID.String()
	case v.BrandSlug != nil:
		return *v.BrandSlug
	default:
		return "all"
	}
}
