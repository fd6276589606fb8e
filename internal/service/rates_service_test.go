package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
	"taxara/internal/engine"
	"taxara/internal/service"
	"taxara/mocks"
)

func TestRatesService_SeedsDefaults(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	rt := svc.Current()
	assert.NotNil(t, rt)
	assert.Equal(t, int64(1), rt.Version)
	assert.Equal(t, 0.075, rt.VatRate)
}

func TestRatesService_Refresh_FoldsOverrides(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	repo.On("ListGlobal", mock.Anything).Return([]domain.RateOverride{
		{Key: engine.OverrideVatRate, Value: 0.10},
		{Key: engine.OverrideDevLevyRate, Value: 0.02},
		{Key: "not_a_real_key", Value: 99},
	}, nil)

	err := svc.Refresh(context.Background())

	assert.NoError(t, err)
	rt := svc.Current()
	assert.Equal(t, 0.10, rt.VatRate)
	assert.Equal(t, 0.02, rt.DevLevyRate)
	assert.Equal(t, int64(2), rt.Version)
}

func TestRatesService_Refresh_OldSnapshotUnaffected(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	before := svc.Current()

	repo.On("ListGlobal", mock.Anything).Return([]domain.RateOverride{
		{Key: engine.OverrideVatRate, Value: 0.20},
	}, nil)
	err := svc.Refresh(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0.075, before.VatRate)
	assert.Equal(t, 0.20, svc.Current().VatRate)
}

func TestRatesService_SetOverride_Success(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)
	adminID := uuid.New()

	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RateOverride")).Return(nil)
	repo.On("ListGlobal", mock.Anything).Return([]domain.RateOverride{
		{Key: engine.OverrideCITRate, Value: 0.25},
	}, nil)

	err := svc.SetOverride(context.Background(), engine.OverrideCITRate, 0.25, adminID)

	assert.NoError(t, err)
	assert.Equal(t, 0.25, svc.Current().CITRate)
	repo.AssertExpectations(t)
}

func TestRatesService_SetOverride_UnknownKey(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	err := svc.SetOverride(context.Background(), "no_such_key", 1.0, uuid.New())

	assert.ErrorIs(t, err, domain.ErrUnknownOverrideKey)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRatesService_RemoveOverride_Success(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	repo.On("Delete", mock.Anything, engine.OverrideVatRate).Return(nil)
	repo.On("ListGlobal", mock.Anything).Return([]domain.RateOverride{}, nil)

	err := svc.RemoveOverride(context.Background(), engine.OverrideVatRate)

	assert.NoError(t, err)
	assert.Equal(t, 0.075, svc.Current().VatRate)
	repo.AssertExpectations(t)
}

func TestRatesService_RemoveOverride_UnknownKey(t *testing.T) {
	repo := new(mocks.MockRateOverrideRepo)
	svc := service.NewRatesService(repo)

	err := svc.RemoveOverride(context.Background(), "no_such_key")

	assert.ErrorIs(t, err, domain.ErrUnknownOverrideKey)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
