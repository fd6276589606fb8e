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

type receiptRepo struct {
	db *sqlx.DB
}

// NewReceiptRepo creates a new PostgreSQL-backed ReceiptRepository.
func NewReceiptRepo(db *sqlx.DB) port.ReceiptRepository {
	return &receiptRepo{db: db}
}

func (r *receiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	receipt.ID = uuid.New()
	receipt.CreatedAt = time.Now().UTC()

	query := `INSERT INTO receipts (id, tenant_id, transaction_id, uploaded_by, file_name,
		file_type, file_size, s3_bucket, s3_key, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		receipt.ID, receipt.TenantID, receipt.TransactionID, receipt.UploadedBy,
		receipt.FileName, receipt.FileType, receipt.FileSize,
		receipt.S3Bucket, receipt.S3Key, receipt.ContentType, receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("receiptRepo.Create: %w", err)
	}
	return nil
}

func (r *receiptRepo) GetByID(ctx context.Context, tenantID, receiptID uuid.UUID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.db.GetContext(ctx, &receipt,
		"SELECT * FROM receipts WHERE id = $1 AND tenant_id = $2", receiptID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("receiptRepo.GetByID: %w", err)
	}
	return &receipt, nil
}

func (r *receiptRepo) GetByTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.db.GetContext(ctx, &receipt,
		`SELECT * FROM receipts WHERE tenant_id = $1 AND transaction_id = $2
		ORDER BY created_at DESC LIMIT 1`, tenantID, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReceiptMissing
		}
		return nil, fmt.Errorf("receiptRepo.GetByTransaction: %w", err)
	}
	return &receipt, nil
}

func (r *receiptRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM receipts WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("receiptRepo.ListByTenant count: %w", err)
	}

	var receipts []domain.Receipt
	err = r.db.SelectContext(ctx, &receipts,
		"SELECT * FROM receipts WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("receiptRepo.ListByTenant: %w", err)
	}
	return receipts, total, nil
}

func (r *receiptRepo) Delete(ctx context.Context, tenantID, receiptID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM receipts WHERE id = $1 AND tenant_id = $2", receiptID, tenantID)
	if err != nil {
		return fmt.Errorf("receiptRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
