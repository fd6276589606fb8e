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

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, record *domain.TransactionRecord) error {
	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()
	if record.OccurredAt.IsZero() {
		record.OccurredAt = record.CreatedAt
	}

	query := `INSERT INTO transactions (id, tenant_id, type, amount, category_name, description,
		has_vat_evidence, is_capital_asset, asset_class, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.TenantID, record.Type, record.Amount, record.CategoryName,
		record.Description, record.HasVatEvidence, record.IsCapitalAsset,
		record.AssetClass, record.OccurredAt, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("transactionRepo.Create: %w", err)
	}
	return nil
}

func (r *transactionRepo) GetByID(ctx context.Context, tenantID, recordID uuid.UUID) (*domain.TransactionRecord, error) {
	var record domain.TransactionRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM transactions WHERE id = $1 AND tenant_id = $2", recordID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("transactionRepo.GetByID: %w", err)
	}
	return &record, nil
}

// filterClause builds the WHERE tail for a filtered ledger query. Arguments
// are appended positionally after the tenant ID.
func filterClause(filter port.TransactionFilter, args []interface{}) (string, []interface{}) {
	clause := ""
	if filter.Type != "" {
		args = append(args, filter.Type)
		clause += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		clause += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		clause += fmt.Sprintf(" AND occurred_at < $%d", len(args))
	}
	if filter.Capital != nil {
		args = append(args, *filter.Capital)
		clause += fmt.Sprintf(" AND is_capital_asset = $%d", len(args))
	}
	return clause, args
}

func (r *transactionRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter, offset, limit int) ([]domain.TransactionRecord, int, error) {
	args := []interface{}{tenantID}
	clause, args := filterClause(filter, args)

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM transactions WHERE tenant_id = $1"+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("transactionRepo.ListByTenant count: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT * FROM transactions WHERE tenant_id = $1%s ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)-1, len(args))

	var records []domain.TransactionRecord
	err = r.db.SelectContext(ctx, &records, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("transactionRepo.ListByTenant: %w", err)
	}
	return records, total, nil
}

func (r *transactionRepo) ListAllByTenant(ctx context.Context, tenantID uuid.UUID, filter port.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := []interface{}{tenantID}
	clause, args := filterClause(filter, args)

	var records []domain.TransactionRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM transactions WHERE tenant_id = $1"+clause+" ORDER BY occurred_at ASC",
		args...)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.ListAllByTenant: %w", err)
	}
	return records, nil
}

func (r *transactionRepo) SumByType(ctx context.Context, tenantID uuid.UUID, txType domain.TransactionType) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE tenant_id = $1 AND type = $2",
		tenantID, txType)
	if err != nil {
		return 0, fmt.Errorf("transactionRepo.SumByType: %w", err)
	}
	return total, nil
}

func (r *transactionRepo) SetVatEvidence(ctx context.Context, tenantID, recordID uuid.UUID, hasEvidence bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE transactions SET has_vat_evidence = $1 WHERE id = $2 AND tenant_id = $3",
		hasEvidence, recordID, tenantID)
	if err != nil {
		return fmt.Errorf("transactionRepo.SetVatEvidence: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepo) Update(ctx context.Context, record *domain.TransactionRecord) error {
	query := `UPDATE transactions SET type = $1, amount = $2, category_name = $3, description = $4,
		has_vat_evidence = $5, is_capital_asset = $6, asset_class = $7, occurred_at = $8
		WHERE id = $9 AND tenant_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		record.Type, record.Amount, record.CategoryName, record.Description,
		record.HasVatEvidence, record.IsCapitalAsset, record.AssetClass,
		record.OccurredAt, record.ID, record.TenantID)
	if err != nil {
		return fmt.Errorf("transactionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepo) Delete(ctx context.Context, tenantID, recordID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = $1 AND tenant_id = $2", recordID, tenantID)
	if err != nil {
		return fmt.Errorf("transactionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
