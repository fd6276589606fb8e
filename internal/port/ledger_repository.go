package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taxara/internal/domain"
)

// TransactionFilter narrows ledger queries. Zero values mean "no filter".
type TransactionFilter struct {
	Type    domain.TransactionType
	From    time.Time
	To      time.Time
	Capital *bool
}

// TransactionRepository defines the contract for ledger persistence.
// All query methods include tenantID for tenant isolation.
type TransactionRepository interface {
	Create(ctx context.Context, record *domain.TransactionRecord) error
	GetByID(ctx context.Context, tenantID, recordID uuid.UUID) (*domain.TransactionRecord, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filter TransactionFilter, offset, limit int) ([]domain.TransactionRecord, int, error)
	ListAllByTenant(ctx context.Context, tenantID uuid.UUID, filter TransactionFilter) ([]domain.TransactionRecord, error)
	SumByType(ctx context.Context, tenantID uuid.UUID, txType domain.TransactionType) (float64, error)
	SetVatEvidence(ctx context.Context, tenantID, recordID uuid.UUID, hasEvidence bool) error
	Update(ctx context.Context, record *domain.TransactionRecord) error
	Delete(ctx context.Context, tenantID, recordID uuid.UUID) error
}

// ReceiptRepository defines the contract for receipt metadata persistence.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, tenantID, receiptID uuid.UUID) (*domain.Receipt, error)
	GetByTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) (*domain.Receipt, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error)
	Delete(ctx context.Context, tenantID, receiptID uuid.UUID) error
}
