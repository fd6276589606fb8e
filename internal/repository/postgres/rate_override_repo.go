package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taxara/internal/domain"
	"taxara/internal/port"
)

type rateOverrideRepo struct {
	db *sqlx.DB
}

// NewRateOverrideRepo creates a new PostgreSQL-backed RateOverrideRepository.
func NewRateOverrideRepo(db *sqlx.DB) port.RateOverrideRepository {
	return &rateOverrideRepo{db: db}
}

func (r *rateOverrideRepo) Upsert(ctx context.Context, override *domain.RateOverride) error {
	override.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO rate_overrides (key, value, updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) WHERE tenant_id IS NULL DO UPDATE SET
			value = EXCLUDED.value,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		override.Key, override.Value, override.UpdatedBy, override.UpdatedAt)
	if err != nil {
		return fmt.Errorf("rateOverrideRepo.Upsert: %w", err)
	}
	return nil
}

func (r *rateOverrideRepo) ListGlobal(ctx context.Context) ([]domain.RateOverride, error) {
	var overrides []domain.RateOverride
	err := r.db.SelectContext(ctx, &overrides,
		"SELECT * FROM rate_overrides WHERE tenant_id IS NULL ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("rateOverrideRepo.ListGlobal: %w", err)
	}
	return overrides, nil
}

func (r *rateOverrideRepo) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM rate_overrides WHERE key = $1 AND tenant_id IS NULL", key)
	if err != nil {
		return fmt.Errorf("rateOverrideRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
