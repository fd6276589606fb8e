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

type findingRepo struct {
	db *sqlx.DB
}

// NewFindingRepo creates a new PostgreSQL-backed FindingRepository.
func NewFindingRepo(db *sqlx.DB) port.FindingRepository {
	return &findingRepo{db: db}
}

func (r *findingRepo) Create(ctx context.Context, finding *domain.ComplianceFinding) error {
	finding.ID = uuid.New()
	finding.CreatedAt = time.Now().UTC()
	if finding.Status == "" {
		finding.Status = domain.FindingPending
	}

	query := `INSERT INTO compliance_findings (id, tenant_id, finding_type, potential_amount,
		recommended_action, impact, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		finding.ID, finding.TenantID, finding.FindingType, finding.PotentialAmount,
		finding.RecommendedAction, finding.Impact, finding.Status, finding.CreatedAt)
	if err != nil {
		return fmt.Errorf("findingRepo.Create: %w", err)
	}
	return nil
}

func (r *findingRepo) GetByID(ctx context.Context, tenantID, findingID uuid.UUID) (*domain.ComplianceFinding, error) {
	var finding domain.ComplianceFinding
	err := r.db.GetContext(ctx, &finding,
		"SELECT * FROM compliance_findings WHERE id = $1 AND tenant_id = $2", findingID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("findingRepo.GetByID: %w", err)
	}
	return &finding, nil
}

func (r *findingRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, status domain.FindingStatus, offset, limit int) ([]domain.ComplianceFinding, int, error) {
	args := []interface{}{tenantID}
	clause := ""
	if status != "" {
		args = append(args, status)
		clause = " AND status = $2"
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM compliance_findings WHERE tenant_id = $1"+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("findingRepo.ListByTenant count: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT * FROM compliance_findings WHERE tenant_id = $1%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)-1, len(args))

	var findings []domain.ComplianceFinding
	err = r.db.SelectContext(ctx, &findings, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("findingRepo.ListByTenant: %w", err)
	}
	return findings, total, nil
}

func (r *findingRepo) ListPendingOlderThan(ctx context.Context, hours int, limit int) ([]domain.ComplianceFinding, error) {
	var findings []domain.ComplianceFinding
	err := r.db.SelectContext(ctx, &findings,
		`SELECT * FROM compliance_findings
		WHERE status = $1 AND created_at < NOW() - ($2 || ' hours')::interval
		ORDER BY created_at ASC LIMIT $3`,
		domain.FindingPending, hours, limit)
	if err != nil {
		return nil, fmt.Errorf("findingRepo.ListPendingOlderThan: %w", err)
	}
	return findings, nil
}

func (r *findingRepo) SetStatus(ctx context.Context, tenantID, findingID, reviewerID uuid.UUID, status domain.FindingStatus) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE compliance_findings SET status = $1, reviewed_by = $2, reviewed_at = $3
		WHERE id = $4 AND tenant_id = $5 AND status = $6`,
		status, reviewerID, now, findingID, tenantID, domain.FindingPending)
	if err != nil {
		return fmt.Errorf("findingRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Either the finding does not exist or it has already been reviewed.
		var exists bool
		checkErr := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM compliance_findings WHERE id = $1 AND tenant_id = $2)",
			findingID, tenantID)
		if checkErr == nil && exists {
			return domain.ErrFindingAlreadyClosed
		}
		return domain.ErrNotFound
	}
	return nil
}

func (r *findingRepo) DeletePendingByTenant(ctx context.Context, tenantID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM compliance_findings WHERE tenant_id = $1 AND status = $2",
		tenantID, domain.FindingPending)
	if err != nil {
		return fmt.Errorf("findingRepo.DeletePendingByTenant: %w", err)
	}
	return nil
}
