package request

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"chefpartner/internal/domain/pricing"
)

var (
	ErrMissingTarget    = errors.New("target reference missing for applies_to")
	ErrExtraneousTarget = errors.New("target reference not allowed for applies_to")
	ErrUnknownAppliesTo = errors.New("unknown applies_to")
	ErrUnknownType      = errors.New("unknown discount type")
)

type UpsertDiscountRuleRequest struct {
	AppliesTo  string     `json:"applies_to" binding:"required,oneof=all brand category product"`
	BrandSlug  *string    `json:"brand_slug,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Type       string     `json:"type" binding:"required,oneof=percentage fixed_amount"`
	Value      float64    `json:"value" binding:"required"`
	IsActive   bool       `json:"is_active"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// ToScope maps the flat applies_to/target fields onto a scope variant.
// Exactly one target must be populated and it must match applies_to.
func (r UpsertDiscountRuleRequest) ToScope() (pricing.Scope, error) {
	targets := 0
	if r.BrandSlug != nil {
		targets++
	}
	if r.CategoryID != nil {
		targets++
	}
	if r.ProductID != nil {
		targets++
	}

	switch r.AppliesTo {
	case "all":
		if targets != 0 {
			return nil, ErrExtraneousTarget
		}
		return pricing.ScopeAll{}, nil
	case "brand":
		if r.BrandSlug == nil {
			return nil, ErrMissingTarget
		}
		if targets != 1 {
			return nil, ErrExtraneousTarget
		}
		return pricing.ScopeBrand{Slug: *r.BrandSlug}, nil
	case "category":
		if r.CategoryID == nil {
			return nil, ErrMissingTarget
		}
		if targets != 1 {
			return nil, ErrExtraneousTarget
		}
		return pricing.ScopeCategory{CategoryID: *r.CategoryID}, nil
	case "product":
		if r.ProductID == nil {
			return nil, ErrMissingTarget
		}
		if targets != 1 {
			return nil, ErrExtraneousTarget
		}
		return pricing.ScopeProduct{ProductID: *r.ProductID}, nil
	default:
		return nil, ErrUnknownAppliesTo
	}
}

func (r UpsertDiscountRuleRequest) ToDiscount() (pricing.Discount, error) {
	switch r.Type {
	case "percentage":
		return pricing.NewPercentageDiscount(r.Value)
	case "fixed_amount":
		return pricing.NewFixedAmountDiscount(int64(math.Round(r.Value)))
	default:
		return pricing.Discount{}, ErrUnknownType
	}
}

func (r UpsertDiscountRuleRequest) ToDomain(partnerID uuid.UUID) (*pricing.Rule, error) {
	scope, err := r.ToScope()
	if err != nil {
		return nil, err
	}
	discount, err := r.ToDiscount()
	if err != nil {
		return nil, err
	}
	return pricing.NewRule(partnerID, scope, discount, r.IsActive, r.ValidFrom, r.ValidUntil)
}
