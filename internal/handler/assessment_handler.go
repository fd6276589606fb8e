package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxara/internal/csvexport"
	"taxara/internal/service"
)

// AssessmentHandler handles tax assessment endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// Personal handles GET /api/v1/assessments/personal
func (h *AssessmentHandler) Personal(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.AssessPersonal(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, assessment)
}

// Corporate handles GET /api/v1/assessments/corporate
func (h *AssessmentHandler) Corporate(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.AssessCorporate(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, assessment)
}

// Cliff handles GET /api/v1/assessments/cliff
func (h *AssessmentHandler) Cliff(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	report, err := h.assessmentService.CheckCliff(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Reliefs handles GET /api/v1/assessments/reliefs
func (h *AssessmentHandler) Reliefs(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	findings, err := h.assessmentService.ScanReliefs(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, findings)
}

// Expenses handles GET /api/v1/assessments/expenses
func (h *AssessmentHandler) Expenses(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	review, err := h.assessmentService.ReviewExpenses(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, review)
}

// ExportExpenses handles GET /api/v1/assessments/expenses/export
func (h *AssessmentHandler) ExportExpenses(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	review, err := h.assessmentService.ReviewExpenses(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("expense-review-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	for i := range review.Rows {
		row := &review.Rows[i]
		if err := w.WriteRow(&row.Record, &row.Result); err != nil {
			return
		}
	}
	w.Flush()
}

// VatClassifyInput is the request body for POST /api/v1/vat/classify.
type VatClassifyInput struct {
	Description string `json:"description"`
}

// ClassifyVat handles POST /api/v1/vat/classify
func (h *AssessmentHandler) ClassifyVat(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input VatClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	classification, err := h.assessmentService.ClassifyVat(c.Request.Context(), tenantID, input.Description)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, classification)
}
