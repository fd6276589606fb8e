package port

import (
	"context"

	"taxara/internal/domain"
)

// RateOverrideRepository defines the contract for rate-override persistence.
// Overrides are global (tenant_id NULL) unless scoped to a tenant.
type RateOverrideRepository interface {
	Upsert(ctx context.Context, override *domain.RateOverride) error
	ListGlobal(ctx context.Context) ([]domain.RateOverride, error)
	Delete(ctx context.Context, key string) error
}
