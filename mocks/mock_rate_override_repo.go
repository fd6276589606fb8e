package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
)

// MockRateOverrideRepo is a mock implementation of port.RateOverrideRepository.
type MockRateOverrideRepo struct {
	mock.Mock
}

func (m *MockRateOverrideRepo) Upsert(ctx context.Context, override *domain.RateOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockRateOverrideRepo) ListGlobal(ctx context.Context) ([]domain.RateOverride, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateOverride), args.Error(1)
}

func (m *MockRateOverrideRepo) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
