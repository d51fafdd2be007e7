package api

import (
	"errors"
	"net/http"

	resdto "chefpartner/internal/handler/dto/response"
	"chefpartner/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Brand category tree with product counts
// @Description Categories of a brand with direct and rolled-up product counts
// @Tags catalog
// @Produce json
// @Param slug path string true "Brand slug"
// @Success 200 {array} resdto.CategoryCountResponse
// @Failure 404 {object} map[string]string
// @Router /catalog/brands/{slug}/categories [get]
func (h *CatalogHandler) GetCategoryCounts(c *gin.Context) {
	brandSlug := c.Param("slug")

	views, err := h.catalogQueries.GetCategoryCounts(c.Request.Context(), brandSlug)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBrandNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Brand not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryCounts(views))
}
