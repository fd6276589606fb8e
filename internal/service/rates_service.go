package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/engine"
	"taxara/internal/port"
)

// RatesService owns the live rate-table snapshot. Readers get an immutable
// pointer; writers rebuild the whole table from the stored overrides and
// swap it in atomically. Calculations running against an older snapshot are
// unaffected by a concurrent swap.
type RatesService interface {
	Current() *engine.RateTable
	Refresh(ctx context.Context) error
	SetOverride(ctx context.Context, key string, value float64, updatedBy uuid.UUID) error
	RemoveOverride(ctx context.Context, key string) error
	ListOverrides(ctx context.Context) ([]domain.RateOverride, error)
}

type ratesService struct {
	overrideRepo port.RateOverrideRepository
	snapshot     atomic.Pointer[engine.RateTable]
}

// NewRatesService creates a RatesService seeded with the statutory defaults.
// Call Refresh once at startup to fold in the stored overrides.
func NewRatesService(overrideRepo port.RateOverrideRepository) RatesService {
	s := &ratesService{overrideRepo: overrideRepo}
	s.snapshot.Store(engine.DefaultRateTable())
	return s
}

func (s *ratesService) Current() *engine.RateTable {
	return s.snapshot.Load()
}

func (s *ratesService) Refresh(ctx context.Context) error {
	overrides, err := s.overrideRepo.ListGlobal(ctx)
	if err != nil {
		return fmt.Errorf("rates.Refresh: %w", err)
	}

	values := make(map[string]float64, len(overrides))
	for _, o := range overrides {
		if !engine.KnownOverrideKey(o.Key) {
			log.Printf("rates: ignoring unknown override key %q", o.Key)
			continue
		}
		values[o.Key] = o.Value
	}

	next := engine.DefaultRateTable().WithOverrides(values)
	s.snapshot.Store(next)
	return nil
}

func (s *ratesService) SetOverride(ctx context.Context, key string, value float64, updatedBy uuid.UUID) error {
	if !engine.KnownOverrideKey(key) {
		return domain.ErrUnknownOverrideKey
	}

	override := &domain.RateOverride{Key: key, Value: value, UpdatedBy: updatedBy}
	if err := s.overrideRepo.Upsert(ctx, override); err != nil {
		return fmt.Errorf("rates.SetOverride: %w", err)
	}
	return s.Refresh(ctx)
}

func (s *ratesService) RemoveOverride(ctx context.Context, key string) error {
	if !engine.KnownOverrideKey(key) {
		return domain.ErrUnknownOverrideKey
	}
	if err := s.overrideRepo.Delete(ctx, key); err != nil {
		return fmt.Errorf("rates.RemoveOverride: %w", err)
	}
	return s.Refresh(ctx)
}

func (s *ratesService) ListOverrides(ctx context.Context) ([]domain.RateOverride, error) {
	overrides, err := s.overrideRepo.ListGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("rates.ListOverrides: %w", err)
	}
	return overrides, nil
}
