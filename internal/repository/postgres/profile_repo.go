package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxara/internal/domain"
	"taxara/internal/port"
)

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new PostgreSQL-backed ProfileRepository.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.TenantProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO tenant_profiles (tenant_id, account_type, sector, business_structure,
		annual_income, turnover_band, total_assets, rent_paid, pension_contribution, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id) DO UPDATE SET
			account_type = EXCLUDED.account_type,
			sector = EXCLUDED.sector,
			business_structure = EXCLUDED.business_structure,
			annual_income = EXCLUDED.annual_income,
			turnover_band = EXCLUDED.turnover_band,
			total_assets = EXCLUDED.total_assets,
			rent_paid = EXCLUDED.rent_paid,
			pension_contribution = EXCLUDED.pension_contribution,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		profile.TenantID, profile.AccountType, profile.Sector, profile.BusinessStructure,
		profile.AnnualIncome, profile.TurnoverBand, profile.TotalAssets,
		profile.RentPaid, profile.PensionContribution, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("profileRepo.Upsert: %w", err)
	}
	return nil
}

func (r *profileRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.TenantProfile, error) {
	var profile domain.TenantProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM tenant_profiles WHERE tenant_id = $1", tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileMissing
		}
		return nil, fmt.Errorf("profileRepo.GetByTenant: %w", err)
	}
	return &profile, nil
}

func (r *profileRepo) Delete(ctx context.Context, tenantID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tenant_profiles WHERE tenant_id = $1", tenantID)
	if err != nil {
		return fmt.Errorf("profileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
