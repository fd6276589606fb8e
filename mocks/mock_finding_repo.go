package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
)

// MockFindingRepo is a mock implementation of port.FindingRepository.
type MockFindingRepo struct {
	mock.Mock
}

func (m *MockFindingRepo) Create(ctx context.Context, finding *domain.ComplianceFinding) error {
	args := m.Called(ctx, finding)
	return args.Error(0)
}

func (m *MockFindingRepo) GetByID(ctx context.Context, tenantID, findingID uuid.UUID) (*domain.ComplianceFinding, error) {
	args := m.Called(ctx, tenantID, findingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceFinding), args.Error(1)
}

func (m *MockFindingRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, status domain.FindingStatus, offset, limit int) ([]domain.ComplianceFinding, int, error) {
	args := m.Called(ctx, tenantID, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ComplianceFinding), args.Int(1), args.Error(2)
}

func (m *MockFindingRepo) ListPendingOlderThan(ctx context.Context, hours int, limit int) ([]domain.ComplianceFinding, error) {
	args := m.Called(ctx, hours, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceFinding), args.Error(1)
}

func (m *MockFindingRepo) SetStatus(ctx context.Context, tenantID, findingID, reviewerID uuid.UUID, status domain.FindingStatus) error {
	args := m.Called(ctx, tenantID, findingID, reviewerID, status)
	return args.Error(0)
}

func (m *MockFindingRepo) DeletePendingByTenant(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}
