package shared

import (
	"context"

	"chefpartner/internal/domain/pricing"
	"chefpartner/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rules() DiscountRuleRepository
	Users() UserRepository
	DB() db.DBTX
}

type DiscountRuleRepository interface {
	Upsert(ctx context.Context, db db.DBTX, rule *pricing.Rule) (uuid.UUID, error)
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
	SetActive(ctx context.Context, db db.DBTX, id uuid.UUID, active bool) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}
