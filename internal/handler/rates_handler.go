package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxara/internal/service"
)

// RatesHandler handles rate-table endpoints.
type RatesHandler struct {
	ratesService service.RatesService
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(ratesService service.RatesService) *RatesHandler {
	return &RatesHandler{ratesService: ratesService}
}

// Current handles GET /api/v1/rates
func (h *RatesHandler) Current(c *gin.Context) {
	RespondOK(c, h.ratesService.Current())
}

// ListOverrides handles GET /api/v1/admin/rates/overrides
func (h *RatesHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.ratesService.ListOverrides(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, overrides)
}

// OverrideInput is the request body for setting a rate override.
type OverrideInput struct {
	Key   string  `json:"key" binding:"required"`
	Value float64 `json:"value" binding:"required"`
}

// SetOverride handles PUT /api/v1/admin/rates/overrides
func (h *RatesHandler) SetOverride(c *gin.Context) {
	_, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input OverrideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.ratesService.SetOverride(c.Request.Context(), input.Key, input.Value, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, h.ratesService.Current())
}

// RemoveOverride handles DELETE /api/v1/admin/rates/overrides/:key
func (h *RatesHandler) RemoveOverride(c *gin.Context) {
	if err := h.ratesService.RemoveOverride(c.Request.Context(), c.Param("key")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, h.ratesService.Current())
}
