package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
	"taxara/internal/middleware"
	"taxara/internal/service"
	"taxara/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	tenantID := uuid.New()
	userID := uuid.New()

	authSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		TenantID: tenantID,
		UserID:   userID,
		Email:    "user@acme.test",
		Role:     domain.RoleAdmin,
	}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/ping", func(c *gin.Context) {
		gotTenant, err := middleware.GetTenantID(c)
		assert.NoError(t, err)
		assert.Equal(t, tenantID, gotTenant)
		gotUser, err := middleware.GetUserID(c)
		assert.NoError(t, err)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, string(domain.RoleAdmin), middleware.GetRole(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_QueryParamToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Role:     domain.RoleMember,
	}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/export", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Browser-navigated download: token arrives as a query parameter.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export?access_token=good-token", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authSvc := new(mocks.MockAuthService)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(authSvc))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyRole, string(domain.RoleAdmin))
	})
	r.Use(middleware.RequireRole(domain.RoleAdmin))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyRole, string(domain.RoleMember))
	})
	r.Use(middleware.RequireRole(domain.RoleAdmin))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
