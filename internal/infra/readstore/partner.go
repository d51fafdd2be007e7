package readstore

import (
	"context"

	"github.com/google/uuid"

	"chefpartner/internal/infra"
	"chefpartner/internal/infra/db"
	"chefpartner/internal/pkg/pgconv"
	"chefpartner/internal/usecase/queries"
)

type PartnerReadStore struct {
	db db.DBTX
}

func NewPartnerReadStore(dbtx db.DBTX) *PartnerReadStore {
	return &PartnerReadStore{db: dbtx}
}

func (r *PartnerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PartnerView, error) {
	var view queries.PartnerView
	err := r.db.QueryRow(ctx,
		`SELECT id, name, approved FROM partners WHERE id = $1`, id).
		Scan(&view.ID, &view.Name, &view.Approved)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find partner by ID", err)
	}
	return &view, nil
}
