package pricing

import (
	"slices"

	"github.com/google/uuid"
)

// Tier is the precedence level of a rule scope. Higher values are more
// specific and win over lower ones; tiers are never combined.
type Tier int

const (
	TierAll Tier = iota
	TierBrand
	TierCategory
	TierProduct
)

func (t Tier) String() string {
	switch t {
	case TierProduct:
		return "product"
	case TierCategory:
		return "category"
	case TierBrand:
		return "brand"
	case TierAll:
		return "all"
	default:
		return "unknown"
	}
}

// ProductRef is the product-side input to rule matching: the product id,
// its brand slug and the set of categories it is assigned to.
type ProductRef struct {
	ProductID   uuid.UUID
	BrandSlug   string
	CategoryIDs []uuid.UUID
}

// Scope is the target of a discount rule. Exactly one variant exists per
// applies_to kind, each carrying only its own target reference.
type Scope interface {
	Tier() Tier
	Matches(p ProductRef) bool
	isScope()
}

type ScopeAll struct{}

func (ScopeAll) Tier() Tier               { return TierAll }
func (ScopeAll) Matches(_ ProductRef) bool { return true }
func (ScopeAll) isScope()                 {}

type ScopeBrand struct {
	Slug string
}

func (s ScopeBrand) Tier() Tier { return TierBrand }
func (s ScopeBrand) Matches(p ProductRef) bool {
	return s.Slug == p.BrandSlug
}
func (ScopeBrand) isScope() {}

type ScopeCategory struct {
	CategoryID uuid.UUID
}

func (s ScopeCategory) Tier() Tier { return TierCategory }
func (s ScopeCategory) Matches(p ProductRef) bool {
	return slices.Contains(p.CategoryIDs, s.CategoryID)
}
func (ScopeCategory) isScope() {}

type ScopeProduct struct {
	ProductID uuid.UUID
}

func (s ScopeProduct) Tier() Tier { return TierProduct }
func (s ScopeProduct) Matches(p ProductRef) bool {
	return s.ProductID == p.ProductID
}
func (ScopeProduct) isScope() {}
