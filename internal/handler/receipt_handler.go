package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxara/internal/service"
)

// ReceiptHandler handles VAT-evidence receipt endpoints.
type ReceiptHandler struct {
	receiptService service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Upload handles POST /api/v1/transactions/:id/receipt
func (h *ReceiptHandler) Upload(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transaction id")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	receipt, err := h.receiptService.Upload(c.Request.Context(), service.UploadReceiptInput{
		TenantID:      tenantID,
		TransactionID: transactionID,
		UploadedBy:    userID,
		FileName:      header.Filename,
		ContentType:   header.Header.Get("Content-Type"),
		Size:          header.Size,
		Body:          file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, receipt)
}

// Delete handles DELETE /api/v1/receipts/:id
// Removing the evidence file also clears has_vat_evidence on the backing
// transaction, so the expense drops back to disallowed.
func (h *ReceiptHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid receipt id")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), tenantID, receiptID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "receipt deleted"})
}

// Download handles GET /api/v1/transactions/:id/receipt
func (h *ReceiptHandler) Download(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transaction id")
		return
	}

	url, err := h.receiptService.GetDownloadURL(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
