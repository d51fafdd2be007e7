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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view      queries.AuthorizedUserView
		partnerID pgtype.UUID
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, partner_id, is_active FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.Email, &view.Role, &partnerID, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.PartnerID = pgconv.UUIDPtrFromPgtype(partnerID)
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		partnerID    pgtype.UUID
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, partner_id, is_active, password_hash FROM users WHERE email = $1`, email).
		Scan(&view.ID, &view.Email, &view.Role, &partnerID, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	view.PartnerID = pgconv.UUIDPtrFromPgtype(partnerID)
	return &view, passwordHash, nil
}
