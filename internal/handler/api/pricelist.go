package api

import (
	"net/http"

	resdto "chefpartner/internal/handler/dto/response"
	"chefpartner/internal/handler/middleware"
	"chefpartner/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PriceListHandler struct {
	priceListQueries queries.PriceListQueries
}

func NewPriceListHandler(priceListQueries queries.PriceListQueries) *PriceListHandler {
	return &PriceListHandler{
		priceListQueries: priceListQueries,
	}
}

// @Summary Partner price list
// @Description Products of a brand with the partner's resolved discounts
// @Tags price-list
// @Produce json
// @Security BearerAuth
// @Param brand query string true "Brand slug"
// @Success 200 {array} resdto.PriceListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /partner/price-list [get]
func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	brandSlug := c.Query("brand")
	if brandSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'brand' is required",
		})
		return
	}

	// Partner-less accounts (admins) and anonymous viewers get list prices.
	var partnerID *uuid.UUID
	if id, ok := middleware.GetPartnerID(c); ok {
		partnerID = &id
	}

	items, err := h.priceListQueries.GetPriceList(c.Request.Context(), partnerID, brandSlug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceListItems(items))
}
