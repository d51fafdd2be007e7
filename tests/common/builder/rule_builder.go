//go:build unit || e2e

package builder

import (
	"time"

	"chefpartner/internal/domain/pricing"
	reqdto "chefpartner/internal/handler/dto/request"
	"chefpartner/internal/usecase/queries"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	ID          uuid.UUID
	PartnerID   uuid.UUID
	Scope       pricing.Scope
	Type        pricing.DiscountType
	Percentage  float64
	AmountCents int64
	Active      bool
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	CreatedAt   time.Time
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:         uuid.New(),
		PartnerID:  uuid.New(),
		Scope:      pricing.ScopeAll{},
		Type:       pricing.DiscountTypePercentage,
		Percentage: 10,
		Active:     true,
		CreatedAt:  time.Now(),
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) buildDiscount() (pricing.Discount, error) {
	if b.Type == pricing.DiscountTypeFixedAmount {
		return pricing.NewFixedAmountDiscount(b.AmountCents)
	}
	return pricing.NewPercentageDiscount(b.Percentage)
}

// BuildDomain runs the write-time validation path.
func (b *RuleBuilder) BuildDomain() (*pricing.Rule, error) {
	discount, err := b.buildDiscount()
	if err != nil {
		return nil, err
	}
	return pricing.NewRule(b.PartnerID, b.Scope, discount, b.Active, b.ValidFrom, b.ValidUntil)
}

// BuildResolved reconstructs a persisted rule with a fixed id and
// created_at, as the resolver sees them.
func (b *RuleBuilder) BuildResolved() *pricing.Rule {
	discount, err := b.buildDiscount()
	if err != nil {
		panic("rule builder: " + err.Error())
	}
	return pricing.ReconstructRule(b.ID, b.PartnerID, b.Scope, discount, b.Active, b.ValidFrom, b.ValidUntil, b.CreatedAt, b.CreatedAt)
}

func (b *RuleBuilder) BuildView() *queries.DiscountRuleView {
	view := &queries.DiscountRuleView{
		ID:         b.ID,
		PartnerID:  b.PartnerID,
		AppliesTo:  b.Scope.Tier().String(),
		Type:       string(b.Type),
		IsActive:   b.Active,
		ValidFrom:  b.ValidFrom,
		ValidUntil: b.ValidUntil,
		CreatedAt:  b.CreatedAt,
	}
	switch s := b.Scope.(type) {
	case pricing.ScopeBrand:
		view.BrandSlug = &s.Slug
	case pricing.ScopeCategory:
		id := s.CategoryID
		view.CategoryID = &id
	case pricing.ScopeProduct:
		id := s.ProductID
		view.ProductID = &id
	}
	if b.Type == pricing.DiscountTypeFixedAmount {
		view.Value = float64(b.AmountCents)
	} else {
		view.Value = b.Percentage
	}
	return view
}

func (b *RuleBuilder) BuildUpsertRequestDTO() reqdto.UpsertDiscountRuleRequest {
	req := reqdto.UpsertDiscountRuleRequest{
		AppliesTo: b.Scope.Tier().String(),
		Type:      string(b.Type),
		IsActive:  b.Active,
	}
	switch s := b.Scope.(type) {
	case pricing.ScopeBrand:
		req.BrandSlug = &s.Slug
	case pricing.ScopeCategory:
		id := s.CategoryID
		req.CategoryID = &id
	case pricing.ScopeProduct:
		id := s.ProductID
		req.ProductID = &id
	}
	if b.Type == pricing.DiscountTypeFixedAmount {
		req.Value = float64(b.AmountCents)
	} else {
		req.Value = b.Percentage
	}
	req.ValidFrom = b.ValidFrom
	req.ValidUntil = b.ValidUntil
	return req
}

// Fluent builder methods
func (b *RuleBuilder) WithID(id uuid.UUID) *RuleBuilder {
	b.ID = id
	return b
}

func (b *RuleBuilder) WithPartnerID(id uuid.UUID) *RuleBuilder {
	b.PartnerID = id
	return b
}

func (b *RuleBuilder) WithScope(scope pricing.Scope) *RuleBuilder {
	b.Scope = scope
	return b
}

func (b *RuleBuilder) WithPercentage(value float64) *RuleBuilder {
	b.Type = pricing.DiscountTypePercentage
	b.Percentage = value
	return b
}

func (b *RuleBuilder) WithFixedAmount(cents int64) *RuleBuilder {
	b.Type = pricing.DiscountTypeFixedAmount
	b.AmountCents = cents
	return b
}

func (b *RuleBuilder) WithActive(active bool) *RuleBuilder {
	b.Active = active
	return b
}

func (b *RuleBuilder) WithWindow(from, until *time.Time) *RuleBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *RuleBuilder) WithCreatedAt(t time.Time) *RuleBuilder {
	b.CreatedAt = t
	return b
}
