package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"taxara/internal/config"
	"taxara/internal/domain"
	"taxara/internal/port"
)

// UploadReceiptInput carries an uploaded VAT-evidence file.
type UploadReceiptInput struct {
	TenantID      uuid.UUID
	TransactionID uuid.UUID
	UploadedBy    uuid.UUID
	FileName      string
	ContentType   string
	Size          int64
	Body          io.Reader
}

// ReceiptService stores VAT-evidence receipts and marks the backing
// transaction as evidenced. Attaching a receipt is what flips
// has_vat_evidence; there is no other way to clear the poison-pill rule.
type ReceiptService interface {
	Upload(ctx context.Context, input UploadReceiptInput) (*domain.Receipt, error)
	GetDownloadURL(ctx context.Context, tenantID, transactionID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, receiptID uuid.UUID) error
}

type receiptService struct {
	receiptRepo     port.ReceiptRepository
	transactionRepo port.TransactionRepository
	storage         port.ObjectStorage
	cfg             config.S3Config
}

// NewReceiptService creates a ReceiptService implementation.
func NewReceiptService(
	receiptRepo port.ReceiptRepository,
	transactionRepo port.TransactionRepository,
	storage port.ObjectStorage,
	cfg config.S3Config,
) ReceiptService {
	return &receiptService{
		receiptRepo:     receiptRepo,
		transactionRepo: transactionRepo,
		storage:         storage,
		cfg:             cfg,
	}
}

func (s *receiptService) Upload(ctx context.Context, input UploadReceiptInput) (*domain.Receipt, error) {
	fileType, ok := domain.AllowedContentTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if input.Size > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	// The transaction must exist and belong to the tenant before we touch S3.
	record, err := s.transactionRepo.GetByID(ctx, input.TenantID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("receipts/%s/%s/%s%s",
		input.TenantID, record.ID, uuid.New(), filepath.Ext(input.FileName))

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
		Metadata: map[string]string{
			"original-name":  input.FileName,
			"transaction-id": record.ID.String(),
			"uploaded-by":    input.UploadedBy.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	receipt := &domain.Receipt{
		TenantID:      input.TenantID,
		TransactionID: record.ID,
		UploadedBy:    input.UploadedBy,
		FileName:      input.FileName,
		FileType:      fileType,
		FileSize:      input.Size,
		S3Bucket:      s.cfg.Bucket,
		S3Key:         key,
		ContentType:   input.ContentType,
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("receipt.Upload: %w", err)
	}

	if err := s.transactionRepo.SetVatEvidence(ctx, input.TenantID, record.ID, true); err != nil {
		return nil, fmt.Errorf("receipt.Upload: %w", err)
	}
	return receipt, nil
}

func (s *receiptService) GetDownloadURL(ctx context.Context, tenantID, transactionID uuid.UUID) (string, error) {
	receipt, err := s.receiptRepo.GetByTransaction(ctx, tenantID, transactionID)
	if err != nil {
		return "", err
	}

	url, err := s.storage.GetPresignedURL(ctx, receipt.S3Bucket, receipt.S3Key, receipt.FileName, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("receipt.GetDownloadURL: %w", err)
	}
	return url, nil
}

func (s *receiptService) Delete(ctx context.Context, tenantID, receiptID uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, tenantID, receiptID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, receipt.S3Bucket, receipt.S3Key); err != nil {
		return fmt.Errorf("receipt.Delete: %w", err)
	}
	if err := s.receiptRepo.Delete(ctx, tenantID, receiptID); err != nil {
		return err
	}
	return s.transactionRepo.SetVatEvidence(ctx, tenantID, receipt.TransactionID, false)
}
