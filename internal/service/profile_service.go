package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/port"
)

// ProfileInput is the DTO for creating or updating a tax profile.
type ProfileInput struct {
	AccountType         string  `json:"account_type" binding:"required,oneof=personal business"`
	Sector              string  `json:"sector"`
	BusinessStructure   string  `json:"business_structure"`
	AnnualIncome        float64 `json:"annual_income"`
	TurnoverBand        float64 `json:"turnover_band"`
	TotalAssets         float64 `json:"total_assets"`
	RentPaid            float64 `json:"rent_paid"`
	PensionContribution float64 `json:"pension_contribution"`
}

// ProfileService manages the per-tenant tax profile.
type ProfileService interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*domain.TenantProfile, error)
	Upsert(ctx context.Context, tenantID uuid.UUID, input ProfileInput) (*domain.TenantProfile, error)
}

type profileService struct {
	profileRepo port.ProfileRepository
}

// NewProfileService creates a ProfileService implementation.
func NewProfileService(profileRepo port.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context, tenantID uuid.UUID) (*domain.TenantProfile, error) {
	return s.profileRepo.GetByTenant(ctx, tenantID)
}

func (s *profileService) Upsert(ctx context.Context, tenantID uuid.UUID, input ProfileInput) (*domain.TenantProfile, error) {
	profile := &domain.TenantProfile{
		TenantID:            tenantID,
		AccountType:         domain.AccountType(input.AccountType),
		Sector:              domain.ParseSector(input.Sector),
		BusinessStructure:   domain.BusinessStructure(input.BusinessStructure),
		AnnualIncome:        input.AnnualIncome,
		TurnoverBand:        input.TurnoverBand,
		TotalAssets:         input.TotalAssets,
		RentPaid:            input.RentPaid,
		PensionContribution: input.PensionContribution,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile.Upsert: %w", err)
	}
	return profile, nil
}
