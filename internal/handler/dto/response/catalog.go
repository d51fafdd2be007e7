package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"chefpartner/internal/usecase/queries"
)

type CategoryCountResponse struct {
	CategoryID        uuid.UUID `json:"categoryId"`
	Name              string    `json:"name"`
	Path              string    `json:"path"`
	Depth             int       `json:"depth"`
	DirectCount       int64     `json:"directCount"`
	HierarchicalCount int64     `json:"hierarchicalCount"`
}

func FromCategoryCounts(views []*queries.CategoryCountView) []*CategoryCountResponse {
	resp := make([]*CategoryCountResponse, len(views))
	for i, view := range views {
		var r CategoryCountResponse
		_ = copier.Copy(&r, view)
		resp[i] = &r
	}
	return resp
}
