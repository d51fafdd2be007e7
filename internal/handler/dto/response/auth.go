package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"chefpartner/internal/usecase/queries"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type CurrentUserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	PartnerID *uuid.UUID `json:"partnerId,omitempty"`
	IsActive  bool       `json:"isActive"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *CurrentUserResponse {
	var resp CurrentUserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
