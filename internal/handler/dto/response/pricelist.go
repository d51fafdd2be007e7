package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"chefpartner/internal/usecase/queries"
)

type PriceListItemResponse struct {
	ProductID            uuid.UUID  `json:"productId"`
	Name                 string     `json:"name"`
	SKU                  string     `json:"sku"`
	BrandSlug            string     `json:"brandSlug"`
	ListPriceCents       *int64     `json:"listPriceCents"`
	DiscountedPriceCents *int64     `json:"discountedPriceCents"`
	DiscountPercent      *int       `json:"discountPercent"`
	AppliedRuleID        *uuid.UUID `json:"appliedRuleId,omitempty"`
}

func FromPriceListItem(item *queries.PriceListItem) *PriceListItemResponse {
	var resp PriceListItemResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromPriceListItems(items []*queries.PriceListItem) []*PriceListItemResponse {
	resp := make([]*PriceListItemResponse, len(items))
	for i, item := range items {
		resp[i] = FromPriceListItem(item)
	}
	return resp
}
