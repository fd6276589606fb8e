package port

import (
	"context"

	"github.com/google/uuid"

	"taxara/internal/domain"
)

// FindingRepository defines the contract for the compliance-finding queue.
type FindingRepository interface {
	Create(ctx context.Context, finding *domain.ComplianceFinding) error
	GetByID(ctx context.Context, tenantID, findingID uuid.UUID) (*domain.ComplianceFinding, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, status domain.FindingStatus, offset, limit int) ([]domain.ComplianceFinding, int, error)
	ListPendingOlderThan(ctx context.Context, hours int, limit int) ([]domain.ComplianceFinding, error)
	SetStatus(ctx context.Context, tenantID, findingID, reviewerID uuid.UUID, status domain.FindingStatus) error
	DeletePendingByTenant(ctx context.Context, tenantID uuid.UUID) error
}
