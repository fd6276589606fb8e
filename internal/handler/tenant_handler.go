package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxara/internal/service"
)

// TenantHandler handles admin tenant and user provisioning endpoints.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles POST /api/v1/admin/tenants
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var input service.CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, admin, err := h.tenantService.CreateTenant(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"tenant": tenant, "admin": admin})
}

// ListTenants handles GET /api/v1/admin/tenants
func (h *TenantHandler) ListTenants(c *gin.Context) {
	offset, limit := parsePagination(c)

	tenants, total, err := h.tenantService.ListTenants(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, tenants, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// CreateUser handles POST /api/v1/admin/users
func (h *TenantHandler) CreateUser(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.tenantService.CreateUser(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// ListUsers handles GET /api/v1/admin/users
func (h *TenantHandler) ListUsers(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)

	users, total, err := h.tenantService.ListUsers(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}
