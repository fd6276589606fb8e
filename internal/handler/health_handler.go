package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"taxara/internal/service"
)

// HealthHandler handles health check endpoints. Readiness reports the active
// rate-table version so operators can confirm which snapshot is serving
// after a seed or override change.
type HealthHandler struct {
	db    *sqlx.DB
	rates service.RatesService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, rates service.RatesService) *HealthHandler {
	return &HealthHandler{db: db, rates: rates}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "taxara"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "taxara",
		"rate_version": h.rates.Current().Version,
	})
}
