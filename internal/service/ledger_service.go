package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/port"
)

// TransactionInput is the DTO for creating or updating a ledger record.
type TransactionInput struct {
	Type           string    `json:"type" binding:"required,oneof=income expense"`
	Amount         float64   `json:"amount" binding:"required,gt=0"`
	CategoryName   string    `json:"category_name"`
	Description    string    `json:"description"`
	IsCapitalAsset bool      `json:"is_capital_asset"`
	AssetClass     string    `json:"asset_class"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// LedgerService manages ledger transactions. VAT evidence is never set
// directly; only the receipt flow flips it.
type LedgerService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input TransactionInput) (*domain.TransactionRecord, error)
	Get(ctx context.Context, tenantID, recordID uuid.UUID) (*domain.TransactionRecord, error)
	List(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter, offset, limit int) ([]domain.TransactionRecord, int, error)
	Update(ctx context.Context, tenantID, recordID uuid.UUID, input TransactionInput) (*domain.TransactionRecord, error)
	Delete(ctx context.Context, tenantID, recordID uuid.UUID) error
}

type ledgerService struct {
	transactionRepo port.TransactionRepository
}

// NewLedgerService creates a LedgerService implementation.
func NewLedgerService(transactionRepo port.TransactionRepository) LedgerService {
	return &ledgerService{transactionRepo: transactionRepo}
}

func (s *ledgerService) Create(ctx context.Context, tenantID uuid.UUID, input TransactionInput) (*domain.TransactionRecord, error) {
	record := &domain.TransactionRecord{
		TenantID:       tenantID,
		Type:           domain.TransactionType(input.Type),
		Amount:         input.Amount,
		CategoryName:   input.CategoryName,
		Description:    input.Description,
		IsCapitalAsset: input.IsCapitalAsset,
		AssetClass:     domain.ParseAssetClass(input.AssetClass),
		OccurredAt:     input.OccurredAt,
	}
	if err := s.transactionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("ledger.Create: %w", err)
	}
	return record, nil
}

func (s *ledgerService) Get(ctx context.Context, tenantID, recordID uuid.UUID) (*domain.TransactionRecord, error) {
	return s.transactionRepo.GetByID(ctx, tenantID, recordID)
}

func (s *ledgerService) List(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter, offset, limit int) ([]domain.TransactionRecord, int, error) {
	return s.transactionRepo.ListByTenant(ctx, tenantID, filter, offset, limit)
}

func (s *ledgerService) Update(ctx context.Context, tenantID, recordID uuid.UUID, input TransactionInput) (*domain.TransactionRecord, error) {
	record, err := s.transactionRepo.GetByID(ctx, tenantID, recordID)
	if err != nil {
		return nil, err
	}

	record.Type = domain.TransactionType(input.Type)
	record.Amount = input.Amount
	record.CategoryName = input.CategoryName
	record.Description = input.Description
	record.IsCapitalAsset = input.IsCapitalAsset
	record.AssetClass = domain.ParseAssetClass(input.AssetClass)
	if !input.OccurredAt.IsZero() {
		record.OccurredAt = input.OccurredAt
	}

	if err := s.transactionRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("ledger.Update: %w", err)
	}
	return record, nil
}

func (s *ledgerService) Delete(ctx context.Context, tenantID, recordID uuid.UUID) error {
	return s.transactionRepo.Delete(ctx, tenantID, recordID)
}
