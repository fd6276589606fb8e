package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/engine"
	"taxara/internal/port"
)

// ReviewInput is the DTO for a finding review decision.
type ReviewInput struct {
	Approve bool `json:"approve"`
}

// ComplianceService manages the queue of relief findings awaiting admin
// review. Scans replace a tenant's pending findings wholesale so the queue
// always mirrors the latest ledger state. Approvals and cliff events notify
// the tenant's admins by email; delivery failures are logged, never
// propagated.
type ComplianceService interface {
	EnqueueFindings(ctx context.Context, tenantID uuid.UUID, findings []engine.Finding) error
	ListFindings(ctx context.Context, tenantID uuid.UUID, status domain.FindingStatus, offset, limit int) ([]domain.ComplianceFinding, int, error)
	ReviewFinding(ctx context.Context, tenantID, findingID, reviewerID uuid.UUID, approve bool) (*domain.ComplianceFinding, error)
	NotifyFinding(ctx context.Context, user *domain.User, finding *domain.ComplianceFinding) error
	AlertThreshold(ctx context.Context, tenantID uuid.UUID, message string) error
}

type complianceService struct {
	findingRepo port.FindingRepository
	userRepo    port.UserRepository
	email       port.EmailSender
}

// NewComplianceService creates a ComplianceService implementation.
func NewComplianceService(findingRepo port.FindingRepository, userRepo port.UserRepository, email port.EmailSender) ComplianceService {
	return &complianceService{findingRepo: findingRepo, userRepo: userRepo, email: email}
}

func (s *complianceService) EnqueueFindings(ctx context.Context, tenantID uuid.UUID, findings []engine.Finding) error {
	if err := s.findingRepo.DeletePendingByTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("compliance.EnqueueFindings: %w", err)
	}
	for _, f := range findings {
		finding := &domain.ComplianceFinding{
			TenantID:          tenantID,
			FindingType:       f.Type,
			PotentialAmount:   f.PotentialAmount,
			RecommendedAction: f.RecommendedAction,
			Impact:            f.Impact,
			Status:            domain.FindingPending,
		}
		if err := s.findingRepo.Create(ctx, finding); err != nil {
			return fmt.Errorf("compliance.EnqueueFindings: %w", err)
		}
	}
	return nil
}

func (s *complianceService) ListFindings(ctx context.Context, tenantID uuid.UUID, status domain.FindingStatus, offset, limit int) ([]domain.ComplianceFinding, int, error) {
	findings, total, err := s.findingRepo.ListByTenant(ctx, tenantID, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("compliance.ListFindings: %w", err)
	}
	return findings, total, nil
}

func (s *complianceService) ReviewFinding(ctx context.Context, tenantID, findingID, reviewerID uuid.UUID, approve bool) (*domain.ComplianceFinding, error) {
	status := domain.FindingDismissed
	if approve {
		status = domain.FindingApproved
	}
	if err := s.findingRepo.SetStatus(ctx, tenantID, findingID, reviewerID, status); err != nil {
		return nil, err
	}

	finding, err := s.findingRepo.GetByID(ctx, tenantID, findingID)
	if err != nil {
		return nil, err
	}

	// An approved finding is actionable for the tenant, so their admins
	// hear about it. Dismissals stay quiet.
	if approve {
		for _, admin := range s.tenantAdmins(ctx, tenantID) {
			_ = s.NotifyFinding(ctx, &admin, finding)
		}
	}
	return finding, nil
}

func (s *complianceService) NotifyFinding(ctx context.Context, user *domain.User, finding *domain.ComplianceFinding) error {
	err := s.email.SendFindingNotification(ctx, user.Email, user.FullName,
		finding.FindingType, finding.PotentialAmount)
	if err != nil {
		// Notification failure never blocks the review flow.
		log.Printf("compliance: finding notification to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *complianceService) AlertThreshold(ctx context.Context, tenantID uuid.UUID, message string) error {
	for _, admin := range s.tenantAdmins(ctx, tenantID) {
		if err := s.email.SendThresholdAlert(ctx, admin.Email, admin.FullName, message); err != nil {
			log.Printf("compliance: threshold alert to %s failed: %v", admin.Email, err)
		}
	}
	return nil
}

func (s *complianceService) tenantAdmins(ctx context.Context, tenantID uuid.UUID) []domain.User {
	users, _, err := s.userRepo.ListByTenant(ctx, tenantID, 0, 100)
	if err != nil {
		log.Printf("compliance: listing admins for tenant %s failed: %v", tenantID, err)
		return nil
	}
	admins := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleAdmin && u.IsActive {
			admins = append(admins, u)
		}
	}
	return admins
}
