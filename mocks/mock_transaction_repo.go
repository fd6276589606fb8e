package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
	"taxara/internal/port"
)

// MockTransactionRepo is a mock implementation of port.TransactionRepository.
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, record *domain.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, tenantID, recordID uuid.UUID) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, tenantID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter, offset, limit int) ([]domain.TransactionRecord, int, error) {
	args := m.Called(ctx, tenantID, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepo) ListAllByTenant(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepo) SumByType(ctx context.Context, tenantID uuid.UUID, txType domain.TransactionType) (float64, error) {
	args := m.Called(ctx, tenantID, txType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepo) SetVatEvidence(ctx context.Context, tenantID, recordID uuid.UUID, hasEvidence bool) error {
	args := m.Called(ctx, tenantID, recordID, hasEvidence)
	return args.Error(0)
}

func (m *MockTransactionRepo) Update(ctx context.Context, record *domain.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransactionRepo) Delete(ctx context.Context, tenantID, recordID uuid.UUID) error {
	args := m.Called(ctx, tenantID, recordID)
	return args.Error(0)
}
