package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"chefpartner/internal/usecase/queries"
)

type DiscountRuleResponse struct {
	ID         uuid.UUID  `json:"id"`
	PartnerID  uuid.UUID  `json:"partnerId"`
	AppliesTo  string     `json:"appliesTo"`
	BrandSlug  *string    `json:"brandSlug,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	ProductID  *uuid.UUID `json:"productId,omitempty"`
	Type       string     `json:"type"`
	Value      float64    `json:"value"`
	IsActive   bool       `json:"isActive"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type RuleWarningResponse struct {
	AppliesTo string      `json:"appliesTo"`
	Target    string      `json:"target"`
	RuleIDs   []uuid.UUID `json:"ruleIds"`
}

// DiscountRuleListResponse carries the rules plus configuration warnings
// about ambiguous same-tier targets.
type DiscountRuleListResponse struct {
	Rules    []*DiscountRuleResponse `json:"rules"`
	Warnings []*RuleWarningResponse  `json:"warnings,omitempty"`
}

type CreateDiscountRuleResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromDiscountRuleView(view *queries.DiscountRuleView) *DiscountRuleResponse {
	var resp DiscountRuleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDiscountRuleList(views []*queries.DiscountRuleView, warnings []queries.AmbiguityWarning) *DiscountRuleListResponse {
	resp := &DiscountRuleListResponse{
		Rules: make([]*DiscountRuleResponse, len(views)),
	}
	for i, view := range views {
		resp.Rules[i] = FromDiscountRuleView(view)
	}
	for _, w := range warnings {
		var wr RuleWarningResponse
		_ = copier.Copy(&wr, &w)
		resp.Warnings = append(resp.Warnings, &wr)
	}
	return resp
}
