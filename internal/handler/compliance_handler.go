package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/service"
)

// ComplianceHandler handles the compliance-finding review queue.
type ComplianceHandler struct {
	complianceService service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// List handles GET /api/v1/admin/findings
func (h *ComplianceHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	status := domain.FindingStatus(c.Query("status"))

	findings, total, err := h.complianceService.ListFindings(c.Request.Context(), tenantID, status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, findings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Review handles POST /api/v1/admin/findings/:id/review
func (h *ComplianceHandler) Review(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	findingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid finding id")
		return
	}

	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	finding, err := h.complianceService.ReviewFinding(c.Request.Context(), tenantID, findingID, userID, input.Approve)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, finding)
}
