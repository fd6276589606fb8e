package router

import (
	"github.com/gin-gonic/gin"

	"taxara/internal/domain"
	"taxara/internal/handler"
	"taxara/internal/middleware"
	"taxara/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	profileH *handler.ProfileHandler,
	ledgerH *handler.LedgerHandler,
	receiptH *handler.ReceiptHandler,
	assessmentH *handler.AssessmentHandler,
	ratesH *handler.RatesHandler,
	complianceH *handler.ComplianceHandler,
	tenantH *handler.TenantHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Tax profile
	protected.GET("/profile", profileH.Get)
	protected.PUT("/profile", profileH.Upsert)

	// Ledger
	transactions := protected.Group("/transactions")
	transactions.POST("", ledgerH.Create)
	transactions.GET("", ledgerH.List)
	transactions.GET("/:id", ledgerH.Get)
	transactions.PUT("/:id", ledgerH.Update)
	transactions.DELETE("/:id", ledgerH.Delete)
	transactions.POST("/:id/receipt", receiptH.Upload)
	transactions.GET("/:id/receipt", receiptH.Download)
	protected.DELETE("/receipts/:id", receiptH.Delete)

	// Assessments
	assessments := protected.Group("/assessments")
	assessments.GET("/personal", assessmentH.Personal)
	assessments.GET("/corporate", assessmentH.Corporate)
	assessments.GET("/cliff", assessmentH.Cliff)
	assessments.GET("/reliefs", assessmentH.Reliefs)
	assessments.GET("/expenses", assessmentH.Expenses)
	assessments.GET("/expenses/export", assessmentH.ExportExpenses)

	// VAT classification
	protected.POST("/vat/classify", assessmentH.ClassifyVat)

	// Effective rate snapshot (read-only, any authenticated user)
	protected.GET("/rates", ratesH.Current)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", tenantH.CreateTenant)
	admin.GET("/tenants", tenantH.ListTenants)
	admin.POST("/users", tenantH.CreateUser)
	admin.GET("/users", tenantH.ListUsers)
	admin.GET("/rates/overrides", ratesH.ListOverrides)
	admin.PUT("/rates/overrides", ratesH.SetOverride)
	admin.DELETE("/rates/overrides/:key", ratesH.RemoveOverride)
	admin.GET("/findings", complianceH.List)
	admin.POST("/findings/:id/review", complianceH.Review)

	return r
}
