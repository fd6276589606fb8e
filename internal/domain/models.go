package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated taxpayer account (individual or business).
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// TenantProfile holds the tax-relevant attributes of a tenant. The engine
// consumes it read-only; missing numeric fields are stored as zero and
// missing enumerated fields fall back to their defaults on load.
type TenantProfile struct {
	TenantID            uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	AccountType         AccountType       `db:"account_type" json:"account_type"`
	Sector              Sector            `db:"sector" json:"sector"`
	BusinessStructure   BusinessStructure `db:"business_structure" json:"business_structure"`
	AnnualIncome        float64           `db:"annual_income" json:"annual_income"`
	TurnoverBand        float64           `db:"turnover_band" json:"turnover_band"`
	TotalAssets         float64           `db:"total_assets" json:"total_assets"`
	RentPaid            float64           `db:"rent_paid" json:"rent_paid"`
	PensionContribution float64           `db:"pension_contribution" json:"pension_contribution"`
	UpdatedAt           time.Time         `db:"updated_at" json:"updated_at"`
}

// TransactionRecord is a single ledger entry supplied by the storage layer.
type TransactionRecord struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	TenantID       uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Type           TransactionType `db:"type" json:"type"`
	Amount         float64         `db:"amount" json:"amount"`
	CategoryName   string          `db:"category_name" json:"category_name"`
	Description    string          `db:"description" json:"description"`
	HasVatEvidence bool            `db:"has_vat_evidence" json:"has_vat_evidence"`
	IsCapitalAsset bool            `db:"is_capital_asset" json:"is_capital_asset"`
	AssetClass     AssetClass      `db:"asset_class" json:"asset_class"`
	OccurredAt     time.Time       `db:"occurred_at" json:"occurred_at"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// Receipt stores metadata about an uploaded VAT-evidence document.
type Receipt struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TenantID      uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	TransactionID uuid.UUID  `db:"transaction_id" json:"transaction_id"`
	UploadedBy    uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName      string     `db:"file_name" json:"file_name"`
	FileType      FileType   `db:"file_type" json:"file_type"`
	FileSize      int64      `db:"file_size" json:"file_size"`
	S3Bucket      string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key         string     `db:"s3_key" json:"s3_key"`
	ContentType   string     `db:"content_type" json:"content_type"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// RateOverride is an admin-set rate-table value. Unknown keys are stored but
// ignored when the snapshot is built.
type RateOverride struct {
	TenantID  *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	Key       string     `db:"key" json:"key"`
	Value     float64    `db:"value" json:"value"`
	UpdatedBy uuid.UUID  `db:"updated_by" json:"updated_by"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// ComplianceFinding is a relief-scanner finding queued for admin review.
type ComplianceFinding struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	TenantID          uuid.UUID     `db:"tenant_id" json:"tenant_id"`
	FindingType       string        `db:"finding_type" json:"finding_type"`
	PotentialAmount   float64       `db:"potential_amount" json:"potential_amount"`
	RecommendedAction string        `db:"recommended_action" json:"recommended_action"`
	Impact            string        `db:"impact" json:"impact"`
	Status            FindingStatus `db:"status" json:"status"`
	ReviewedBy        *uuid.UUID    `db:"reviewed_by" json:"reviewed_by"`
	ReviewedAt        *time.Time    `db:"reviewed_at" json:"reviewed_at"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
}
