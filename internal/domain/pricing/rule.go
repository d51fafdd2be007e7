package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidValidityWindow = errors.New("valid_from must not be after valid_until")

// Rule is a partner-scoped pricing override. Validation happens here at
// construction; the resolver assumes only well-formed rules.
type Rule struct {
	id         uuid.UUID
	partnerID  uuid.UUID
	scope      Scope
	discount   Discount
	active     bool
	validFrom  *time.Time
	validUntil *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRule(partnerID uuid.UUID, scope Scope, discount Discount, active bool, validFrom, validUntil *time.Time) (*Rule, error) {
	if validFrom != nil && validUntil != nil && validFrom.After(*validUntil) {
		return nil, ErrInvalidValidityWindow
	}
	return &Rule{
		id:         uuid.New(),
		partnerID:  partnerID,
		scope:      scope,
		discount:   discount,
		active:     active,
		validFrom:  validFrom,
		validUntil: validUntil,
	}, nil
}

// ReconstructRule rebuilds a rule from persisted state without re-running
// the write-time checks.
func ReconstructRule(id, partnerID uuid.UUID, scope Scope, discount Discount, active bool, validFrom, validUntil *time.Time, createdAt, updatedAt time.Time) *Rule {
	return &Rule{
		id:         id,
		partnerID:  partnerID,
		scope:      scope,
		discount:   discount,
		active:     active,
		validFrom:  validFrom,
		validUntil: validUntil,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Rule) ID() uuid.UUID          { return r.id }
func (r *Rule) PartnerID() uuid.UUID   { return r.partnerID }
func (r *Rule) Scope() Scope           { return r.scope }
func (r *Rule) Discount() Discount     { return r.discount }
func (r *Rule) IsActive() bool         { return r.active }
func (r *Rule) ValidFrom() *time.Time  { return r.validFrom }
func (r *Rule) ValidUntil() *time.Time { return r.validUntil }
func (r *Rule) CreatedAt() time.Time   { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time   { return r.updatedAt }

// IsValidAt reports whether the rule is active and its validity window
// contains t. Nil bounds are open.
func (r *Rule) IsValidAt(t time.Time) bool {
	if !r.active {
		return false
	}
	if r.validFrom != nil && r.validFrom.After(t) {
		return false
	}
	if r.validUntil != nil && r.validUntil.Before(t) {
		return false
	}
	return true
}
