package readstore

import (
	"context"

	"github.com/google/uuid"

	"chefpartner/internal/domain/catalog"
	"chefpartner/internal/infra"
	"chefpartner/internal/infra/db"
	"chefpartner/internal/pkg/pgconv"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(dbtx db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: dbtx}
}

const findCategoryRowsQuery = `
SELECT c.id, c.path, c.depth, c.name
FROM categories c
JOIN brands b ON b.id = c.brand_id
WHERE b.slug = $1
ORDER BY c.path`

func (r *CategoryReadStore) FindRowsByBrand(ctx context.Context, brandSlug string) ([]catalog.CategoryRow, error) {
	if err := r.brandExists(ctx, brandSlug); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, findCategoryRowsQuery, brandSlug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find categories by brand", err)
	}
	defer rows.Close()

	var result []catalog.CategoryRow
	for rows.Next() {
		var row catalog.CategoryRow
		if err := rows.Scan(&row.ID, &row.Path, &row.Depth, &row.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}
	return result, nil
}

const directCountsQuery = `
SELECT pc.category_id, count(*)
FROM product_categories pc
JOIN categories c ON c.id = pc.category_id
JOIN brands b ON b.id = c.brand_id
WHERE b.slug = $1
GROUP BY pc.category_id`

func (r *CategoryReadStore) DirectProductCounts(ctx context.Context, brandSlug string) (map[uuid.UUID]int64, error) {
	rows, err := r.db.Query(ctx, directCountsQuery, brandSlug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count products per category", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var (
			id    uuid.UUID
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan count row", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate count rows", err)
	}
	return counts, nil
}

func (r *CategoryReadStore) brandExists(ctx context.Context, brandSlug string) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM brands WHERE slug = $1`, brandSlug).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("brand not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to find brand by slug", err)
	}
	return nil
}
