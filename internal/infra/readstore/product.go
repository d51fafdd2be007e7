package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"chefpartner/internal/infra"
	"chefpartner/internal/infra/db"
	"chefpartner/internal/pkg/pgconv"
	"chefpartner/internal/usecase/queries"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const findProductsByBrandQuery = `
SELECT
	p.id,
	p.name,
	p.sku,
	p.brand_slug,
	p.price_cents,
	COALESCE(
		array_agg(pc.category_id::text) FILTER (WHERE pc.category_id IS NOT NULL),
		'{}'
	) AS category_ids
FROM products p
LEFT JOIN product_categories pc ON pc.product_id = p.id
WHERE p.brand_slug = $1
GROUP BY p.id, p.name, p.sku, p.brand_slug, p.price_cents
ORDER BY p.name, p.id`

func (r *ProductReadStore) FindByBrand(ctx context.Context, brandSlug string) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, findProductsByBrandQuery, brandSlug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by brand", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		var (
			view        queries.ProductView
			priceCents  pgtype.Int8
			categoryIDs []string
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.SKU, &view.BrandSlug, &priceCents, &categoryIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		view.PriceCents = pgconv.Int64PtrFromPgtype(priceCents)

		view.CategoryIDs = make([]uuid.UUID, 0, len(categoryIDs))
		for _, raw := range categoryIDs {
			id, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				return nil, infra.WrapRepoErr("failed to parse product category id", parseErr)
			}
			view.CategoryIDs = append(view.CategoryIDs, id)
		}

		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return views, nil
}
