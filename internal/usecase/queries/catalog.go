package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"chefpartner/internal/domain/catalog"
	"chefpartner/internal/infra"
	"chefpartner/internal/pkg/errs"
)

var ErrBrandNotFound = errs.New("brand not found")

type CategoryReadStore interface {
	FindRowsByBrand(ctx context.Context, brandSlug string) ([]catalog.CategoryRow, error)
	DirectProductCounts(ctx context.Context, brandSlug string) (map[uuid.UUID]int64, error)
}

type CatalogQueries interface {
	GetCategoryCounts(ctx context.Context, brandSlug string) ([]*CategoryCountView, error)
}

type catalogQueriesImpl struct {
	categories CategoryReadStore
}

func NewCatalogQueries(categories CategoryReadStore) CatalogQueries {
	return &catalogQueriesImpl{categories: categories}
}

func (q *catalogQueriesImpl) GetCategoryCounts(ctx context.Context, brandSlug string) ([]*CategoryCountView, error) {
	rows, err := q.categories.FindRowsByBrand(ctx, brandSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	// A count fetch failure must not block browsing: fall back to zero
	// counts and let the category listing render.
	direct, err := q.categories.DirectProductCounts(ctx, brandSlug)
	if err != nil {
		slog.Warn("direct product count fetch failed, serving zero counts",
			"brand_slug", brandSlug, "error", err.Error())
		direct = map[uuid.UUID]int64{}
	}

	hierarchical := catalog.HierarchicalCounts(rows, direct)

	views := make([]*CategoryCountView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &CategoryCountView{
			CategoryID:        row.ID,
			Name:              row.Name,
			Path:              row.Path,
			Depth:             row.Depth,
			DirectCount:       direct[row.ID],
			HierarchicalCount: hierarchical[row.ID],
		})
	}
	return views, nil
}
