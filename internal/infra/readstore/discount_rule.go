package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra"
	"chefpartner/internal/infra/db"
	"chefpartner/internal/pkg/errs"
	"chefpartner/internal/pkg/pgconv"
	"chefpartner/internal/usecase/queries"
)

type DiscountRuleReadStore struct {
	db db.DBTX
}

func NewDiscountRuleReadStore(dbtx db.DBTX) *DiscountRuleReadStore {
	return &DiscountRuleReadStore{db: dbtx}
}

const ruleColumns = `
	id, partner_id, applies_to, brand_slug, category_id, product_id,
	discount_type, discount_value, is_active, valid_from, valid_until,
	created_at, updated_at`

// FindActiveByPartner hydrates the partner's active rule set into domain
// rules. The resolver's tie-break is created_at then id; the ordering here
// is for stable output only.
func (r *DiscountRuleReadStore) FindActiveByPartner(ctx context.Context, partnerID uuid.UUID) ([]*pricing.Rule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+ruleColumns+`
		FROM discount_rules
		WHERE partner_id = $1 AND is_active = TRUE
		ORDER BY created_at, id`, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active discount rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		view, err := scanRuleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rule row", err)
		}
		rule, err := toDomainRule(view)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to hydrate discount rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discount rule rows", err)
	}
	return rules, nil
}

func (r *DiscountRuleReadStore) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*queries.DiscountRuleView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+ruleColumns+`
		FROM discount_rules
		WHERE partner_id = $1
		ORDER BY created_at, id`, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	defer rows.Close()

	var views []*queries.DiscountRuleView
	for rows.Next() {
		view, err := scanRuleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rule row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discount rule rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRuleView(row rowScanner) (*queries.DiscountRuleView, error) {
	var (
		view       queries.DiscountRuleView
		brandSlug  pgtype.Text
		categoryID pgtype.UUID
		productID  pgtype.UUID
		validFrom  pgtype.Timestamptz
		validUntil pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID,
		&view.PartnerID,
		&view.AppliesTo,
		&brandSlug,
		&categoryID,
		&productID,
		&view.Type,
		&view.Value,
		&view.IsActive,
		&validFrom,
		&validUntil,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.BrandSlug = pgconv.StringPtrFromPgtype(brandSlug)
	view.CategoryID = pgconv.UUIDPtrFromPgtype(categoryID)
	view.ProductID = pgconv.UUIDPtrFromPgtype(productID)
	view.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	view.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	return &view, nil
}

func toDomainRule(view *queries.DiscountRuleView) (*pricing.Rule, error) {
	var scope pricing.Scope
	switch view.AppliesTo {
	case "all":
		scope = pricing.ScopeAll{}
	case "brand":
		if view.BrandSlug == nil {
			return nil, errs.New("brand rule without brand_slug")
		}
		scope = pricing.ScopeBrand{Slug: *view.BrandSlug}
	case "category":
		if view.CategoryID == nil {
			return nil, errs.New("category rule without category_id")
		}
		scope = pricing.ScopeCategory{CategoryID: *view.CategoryID}
	case "product":
		if view.ProductID == nil {
			return nil, errs.New("product rule without product_id")
		}
		scope = pricing.ScopeProduct{ProductID: *view.ProductID}
	default:
		return nil, errs.New("unknown applies_to: " + view.AppliesTo)
	}

	var (
		discount pricing.Discount
		err      error
	)
	switch view.Type {
	case string(pricing.DiscountTypeFixedAmount):
		discount, err = pricing.NewFixedAmountDiscount(int64(view.Value))
	case string(pricing.DiscountTypePercentage):
		discount, err = pricing.NewPercentageDiscount(view.Value)
	default:
		return nil, errs.New("unknown discount type: " + view.Type)
	}
	if err != nil {
		return nil, err
	}

	return pricing.ReconstructRule(
		view.ID,
		view.PartnerID,
		scope,
		discount,
		view.IsActive,
		view.ValidFrom,
		view.ValidUntil,
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}
