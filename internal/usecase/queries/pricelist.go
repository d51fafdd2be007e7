package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/clock"
)

type PartnerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PartnerView, error)
}

type ProductReadStore interface {
	FindByBrand(ctx context.Context, brandSlug string) ([]*ProductView, error)
}

type DiscountRuleReadStore interface {
	// FindActiveByPartner returns the partner's rule set as domain rules,
	// ordered by created_at then id.
	FindActiveByPartner(ctx context.Context, partnerID uuid.UUID) ([]*pricing.Rule, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*DiscountRuleView, error)
}

type PriceListQueries interface {
	// GetPriceList resolves the partner's discount per product. A nil
	// partnerID yields plain list prices.
	GetPriceList(ctx context.Context, partnerID *uuid.UUID, brandSlug string) ([]*PriceListItem, error)
}

type priceListQueriesImpl struct {
	partners PartnerReadStore
	products ProductReadStore
	rules    DiscountRuleReadStore
	clock    clock.Clock
}

func NewPriceListQueries(partners PartnerReadStore, products ProductReadStore, rules DiscountRuleReadStore, clock clock.Clock) PriceListQueries {
	return &priceListQueriesImpl{
		partners: partners,
		products: products,
		rules:    rules,
		clock:    clock,
	}
}

func (q *priceListQueriesImpl) GetPriceList(ctx context.Context, partnerID *uuid.UUID, brandSlug string) ([]*PriceListItem, error) {
	products, err := q.products.FindByBrand(ctx, brandSlug)
	if err != nil {
		return nil, err
	}

	rules := q.loadRules(ctx, partnerID)

	now := q.clock.Now()
	items := make([]*PriceListItem, 0, len(products))
	for _, p := range products {
		item := &PriceListItem{
			ProductID:      p.ID,
			Name:           p.Name,
			SKU:            p.SKU,
			BrandSlug:      p.BrandSlug,
			ListPriceCents: p.PriceCents,
		}

		res := pricing.Resolve(rules, pricing.ProductRef{
			ProductID:   p.ID,
			BrandSlug:   p.BrandSlug,
			CategoryIDs: p.CategoryIDs,
		}, now)
		if len(res.AmbiguousWith) > 0 {
			slog.Warn("ambiguous discount rule match resolved by tie-break",
				"winner_rule_id", res.Rule.ID(),
				"ambiguous_with", res.AmbiguousWith,
				"product_id", p.ID)
		}

		quote := pricing.Calculate(p.PriceCents, res.Rule)
		item.DiscountedPriceCents = quote.DiscountedPriceCents
		item.DiscountPercent = quote.DiscountPercent
		if res.Rule != nil && quote.DiscountedPriceCents != nil {
			id := res.Rule.ID()
			item.AppliedRuleID = &id
		}

		items = append(items, item)
	}

	return items, nil
}

// loadRules returns an empty rule set when the viewer is anonymous, the
// partner is not approved, or the rule fetch fails. A fetch failure degrades
// to undiscounted list prices instead of blocking the price list.
func (q *priceListQueriesImpl) loadRules(ctx context.Context, partnerID *uuid.UUID) []*pricing.Rule {
	if partnerID == nil {
		return nil
	}

	partner, err := q.partners.FindByID(ctx, *partnerID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("partner lookup failed, serving list prices",
				"partner_id", *partnerID, "error", err.Error())
		}
		return nil
	}
	if !partner.Approved {
		return nil
	}

	rules, err := q.rules.FindActiveByPartner(ctx, *partnerID)
	if err != nil {
		slog.Warn("discount rule fetch failed, serving list prices",
			"partner_id", *partnerID, "error", err.Error())
		return nil
	}
	return rules
}
