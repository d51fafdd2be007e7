package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra"
	"chefpartner/internal/infra/db"
	"chefpartner/internal/pkg/pgconv"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type DiscountRuleRepository struct{}

func NewDiscountRuleRepository() *DiscountRuleRepository {
	return &DiscountRuleRepository{}
}

const upsertRuleQuery = `
INSERT INTO discount_rules (
	id, partner_id, applies_to, brand_slug, category_id, product_id,
	discount_type, discount_value, is_active, valid_from, valid_until
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	applies_to     = EXCLUDED.applies_to,
	brand_slug     = EXCLUDED.brand_slug,
	category_id    = EXCLUDED.category_id,
	product_id     = EXCLUDED.product_id,
	discount_type  = EXCLUDED.discount_type,
	discount_value = EXCLUDED.discount_value,
	is_active      = EXCLUDED.is_active,
	valid_from     = EXCLUDED.valid_from,
	valid_until    = EXCLUDED.valid_until,
	updated_at     = now()
RETURNING id`

func (r *DiscountRuleRepository) Upsert(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) (uuid.UUID, error) {
	appliesTo, brandSlug, categoryID, productID := flattenScope(rule.Scope())

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, upsertRuleQuery,
		rule.ID(),
		rule.PartnerID(),
		appliesTo,
		brandSlug,
		categoryID,
		productID,
		string(rule.Discount().Type()),
		ruleValue(rule.Discount()),
		rule.IsActive(),
		pgconv.TimePtrToPgtype(rule.ValidFrom()),
		pgconv.TimePtrToPgtype(rule.ValidUntil()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, mapWriteError("failed to upsert discount rule", err)
	}
	return id, nil
}

func (r *DiscountRuleRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM discount_rules WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("failed to delete discount rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRuleRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE discount_rules SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return mapWriteError("failed to toggle discount rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

// flattenScope projects the scope variant onto the flat applies_to/target
// columns. Exactly one target column is non-null, none for "all".
func flattenScope(scope pricing.Scope) (string, pgtype.Text, pgtype.UUID, pgtype.UUID) {
	brandSlug := pgtype.Text{}
	categoryID := pgtype.UUID{}
	productID := pgtype.UUID{}

	switch s := scope.(type) {
	case pricing.ScopeBrand:
		brandSlug = pgconv.StringToPgtype(s.Slug)
	case pricing.ScopeCategory:
		categoryID = pgconv.UUIDToPgtype(s.CategoryID)
	case pricing.ScopeProduct:
		productID = pgconv.UUIDToPgtype(s.ProductID)
	}
	return scope.Tier().String(), brandSlug, categoryID, productID
}

func ruleValue(d pricing.Discount) float64 {
	if d.Type() == pricing.DiscountTypeFixedAmount {
		return float64(d.AmountCents())
	}
	return d.Percentage()
}

func mapWriteError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
