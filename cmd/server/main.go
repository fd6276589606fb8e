package main

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"taxara/internal/config"
	emailnoop "taxara/internal/email/noop"
	emailses "taxara/internal/email/ses"
	"taxara/internal/handler"
	"taxara/internal/port"
	"taxara/internal/repository/postgres"
	"taxara/internal/router"
	"taxara/internal/service"
	s3storage "taxara/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	profileRepo := postgres.NewProfileRepo(db)
	transactionRepo := postgres.NewTransactionRepo(db)
	receiptRepo := postgres.NewReceiptRepo(db)
	overrideRepo := postgres.NewRateOverrideRepo(db)
	findingRepo := postgres.NewFindingRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = emailses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = emailnoop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	ratesSvc := service.NewRatesService(overrideRepo)
	if err := ratesSvc.Refresh(context.Background()); err != nil {
		log.Printf("initial rate refresh failed, serving defaults: %v", err)
	}
	complianceSvc := service.NewComplianceService(findingRepo, userRepo, emailSender)
	assessmentSvc := service.NewAssessmentService(profileRepo, transactionRepo, ratesSvc, complianceSvc)
	profileSvc := service.NewProfileService(profileRepo)
	ledgerSvc := service.NewLedgerService(transactionRepo)
	receiptSvc := service.NewReceiptService(receiptRepo, transactionRepo, s3Client, cfg.S3)
	tenantSvc := service.NewTenantService(tenantRepo, userRepo)

	// Periodic rate-table refresh picks up overrides written outside the API
	// (seed tooling, manual SQL).
	c := cron.New()
	if _, err := c.AddFunc(cfg.Rates.RefreshCron, func() {
		if err := ratesSvc.Refresh(context.Background()); err != nil {
			log.Printf("scheduled rate refresh failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule rate refresh: %w", err)
	}
	c.Start()
	defer c.Stop()

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	receiptH := handler.NewReceiptHandler(receiptSvc)
	assessmentH := handler.NewAssessmentHandler(assessmentSvc)
	ratesH := handler.NewRatesHandler(ratesSvc)
	complianceH := handler.NewComplianceHandler(complianceSvc)
	tenantH := handler.NewTenantHandler(tenantSvc)
	healthH := handler.NewHealthHandler(db, ratesSvc)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, profileH, ledgerH, receiptH, assessmentH, ratesH, complianceH, tenantH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
