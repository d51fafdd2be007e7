package queries

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	PartnerID *uuid.UUID `json:"partner_id,omitempty"`
	IsActive  bool       `json:"is_active"`
}

type PartnerView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Approved bool      `json:"approved"`
}

type ProductView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	BrandSlug   string      `json:"brand_slug"`
	PriceCents  *int64      `json:"price_cents"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// PriceListItem is one row of a partner's price list. The discount fields
// are nil for "price on request" products and when no rule applies.
type PriceListItem struct {
	ProductID            uuid.UUID  `json:"product_id"`
	Name                 string     `json:"name"`
	SKU                  string     `json:"sku"`
	BrandSlug            string     `json:"brand_slug"`
	ListPriceCents       *int64     `json:"list_price_cents"`
	DiscountedPriceCents *int64     `json:"discounted_price_cents"`
	DiscountPercent      *int       `json:"discount_percent"`
	AppliedRuleID        *uuid.UUID `json:"applied_rule_id,omitempty"`
}

type CategoryCountView struct {
	CategoryID        uuid.UUID `json:"category_id"`
	Name              string    `json:"name"`
	Path              string    `json:"path"`
	Depth             int       `json:"depth"`
	DirectCount       int64     `json:"direct_count"`
	HierarchicalCount int64     `json:"hierarchical_count"`
}

type DiscountRuleView struct {
	ID         uuid.UUID  `json:"id"`
	PartnerID  uuid.UUID  `json:"partner_id"`
	AppliesTo  string     `json:"applies_to"`
	BrandSlug  *string    `json:"brand_slug,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Type       string     `json:"type"`
	Value      float64    `json:"value"`
	IsActive   bool       `json:"is_active"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AmbiguityWarning flags a partner with more than one active rule competing
// at the same precedence tier for the same target.
type AmbiguityWarning struct {
	AppliesTo string      `json:"applies_to"`
	Target    string      `json:"target"`
	RuleIDs   []uuid.UUID `json:"rule_ids"`
}
