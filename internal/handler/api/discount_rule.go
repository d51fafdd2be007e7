package api

import (
	"errors"
	"net/http"

	reqdto "chefpartner/internal/handler/dto/request"
	resdto "chefpartner/internal/handler/dto/response"
	"chefpartner/internal/usecase/commands"
	"chefpartner/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountRuleHandler struct {
	ruleCommands commands.DiscountRuleCommands
	ruleQueries  queries.DiscountRuleQueries
}

func NewDiscountRuleHandler(ruleCommands commands.DiscountRuleCommands, ruleQueries queries.DiscountRuleQueries) *DiscountRuleHandler {
	return &DiscountRuleHandler{
		ruleCommands: ruleCommands,
		ruleQueries:  ruleQueries,
	}
}

// @Summary List partner discount rules
// @Description Rules of a partner plus warnings about ambiguous same-tier targets
// @Tags discount-rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 200 {object} resdto.DiscountRuleListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/partners/{id}/discount-rules [get]
func (h *DiscountRuleHandler) ListRules(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, warnings, err := h.ruleQueries.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountRuleList(views, warnings))
}

// @Summary Create discount rule
// @Tags discount-rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param request body reqdto.UpsertDiscountRuleRequest true "Rule definition"
// @Success 201 {object} resdto.CreateDiscountRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/partners/{id}/discount-rules [post]
func (h *DiscountRuleHandler) CreateRule(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpsertDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.ruleCommands.Create(c.Request.Context(), partnerID, req)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateDiscountRuleResponse{ID: id})
}

// @Summary Update discount rule
// @Tags discount-rules
// @Accept json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param ruleId path string true "Rule ID"
// @Param request body reqdto.UpsertDiscountRuleRequest true "Rule definition"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/partners/{id}/discount-rules/{ruleId} [put]
func (h *DiscountRuleHandler) UpdateRule(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(c, "ruleId")
	if !ok {
		return
	}

	var req reqdto.UpsertDiscountRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.ruleCommands.Update(c.Request.Context(), partnerID, ruleID, req); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete discount rule
// @Tags discount-rules
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param ruleId path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/partners/{id}/discount-rules/{ruleId} [delete]
func (h *DiscountRuleHandler) DeleteRule(c *gin.Context) {
	ruleID, ok := parseIDParam(c, "ruleId")
	if !ok {
		return
	}

	if err := h.ruleCommands.Delete(c.Request.Context(), ruleID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// @Summary Toggle discount rule
// @Tags discount-rules
// @Accept json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param ruleId path string true "Rule ID"
// @Param request body setActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/partners/{id}/discount-rules/{ruleId}/active [patch]
func (h *DiscountRuleHandler) SetRuleActive(c *gin.Context) {
	ruleID, ok := parseIDParam(c, "ruleId")
	if !ok {
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.ruleCommands.SetActive(c.Request.Context(), ruleID, req.IsActive); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DiscountRuleHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidRuleDefinition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid discount rule definition",
		})
	case errors.Is(err, commands.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Discount rule not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}
