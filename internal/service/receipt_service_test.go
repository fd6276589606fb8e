package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxara/internal/config"
	"taxara/internal/domain"
	"taxara/internal/port"
	"taxara/internal/service"
	"taxara/mocks"
)

func newReceiptFixture() (*mocks.MockReceiptRepo, *mocks.MockTransactionRepo, *mocks.MockObjectStorage, service.ReceiptService) {
	receiptRepo := new(mocks.MockReceiptRepo)
	txRepo := new(mocks.MockTransactionRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewReceiptService(receiptRepo, txRepo, storage, config.S3Config{
		Bucket:        "taxara-receipts",
		MaxFileSizeMB: 25,
		PresignExpiry: 900,
	})
	return receiptRepo, txRepo, storage, svc
}

func TestReceiptService_Upload_SetsVatEvidence(t *testing.T) {
	receiptRepo, txRepo, storage, svc := newReceiptFixture()

	tenantID := uuid.New()
	txID := uuid.New()
	userID := uuid.New()

	txRepo.On("GetByID", mock.Anything, tenantID, txID).Return(&domain.TransactionRecord{
		ID: txID, TenantID: tenantID, Type: domain.TransactionExpense, Amount: 50_000,
	}, nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "taxara-receipts" && strings.HasPrefix(in.Key, "receipts/") &&
			in.Metadata["original-name"] == "invoice.pdf"
	})).Return(&port.UploadOutput{Location: "https://s3/receipt.pdf"}, nil)
	receiptRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Receipt")).Return(nil)
	txRepo.On("SetVatEvidence", mock.Anything, tenantID, txID, true).Return(nil)

	receipt, err := svc.Upload(context.Background(), service.UploadReceiptInput{
		TenantID:      tenantID,
		TransactionID: txID,
		UploadedBy:    userID,
		FileName:      "invoice.pdf",
		ContentType:   "application/pdf",
		Size:          1024,
		Body:          strings.NewReader("%PDF-1.4"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FileTypePDF, receipt.FileType)
	assert.Equal(t, txID, receipt.TransactionID)
	txRepo.AssertCalled(t, "SetVatEvidence", mock.Anything, tenantID, txID, true)
}

func TestReceiptService_Upload_UnsupportedContentType(t *testing.T) {
	_, txRepo, storage, svc := newReceiptFixture()

	_, err := svc.Upload(context.Background(), service.UploadReceiptInput{
		TenantID:      uuid.New(),
		TransactionID: uuid.New(),
		FileName:      "notes.txt",
		ContentType:   "text/plain",
		Size:          10,
		Body:          strings.NewReader("hello"),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	txRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestReceiptService_Upload_FileTooLarge(t *testing.T) {
	_, _, storage, svc := newReceiptFixture()

	_, err := svc.Upload(context.Background(), service.UploadReceiptInput{
		TenantID:      uuid.New(),
		TransactionID: uuid.New(),
		FileName:      "scan.png",
		ContentType:   "image/png",
		Size:          26 * 1024 * 1024,
		Body:          strings.NewReader("png"),
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestReceiptService_Upload_TransactionNotFound(t *testing.T) {
	_, txRepo, storage, svc := newReceiptFixture()

	tenantID := uuid.New()
	txID := uuid.New()
	txRepo.On("GetByID", mock.Anything, tenantID, txID).Return(nil, domain.ErrNotFound)

	_, err := svc.Upload(context.Background(), service.UploadReceiptInput{
		TenantID:      tenantID,
		TransactionID: txID,
		FileName:      "invoice.pdf",
		ContentType:   "application/pdf",
		Size:          1024,
		Body:          strings.NewReader("%PDF-1.4"),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestReceiptService_GetDownloadURL(t *testing.T) {
	receiptRepo, _, storage, svc := newReceiptFixture()

	tenantID := uuid.New()
	txID := uuid.New()
	receiptRepo.On("GetByTransaction", mock.Anything, tenantID, txID).Return(&domain.Receipt{
		S3Bucket: "taxara-receipts", S3Key: "receipts/a/b/c.pdf", FileName: "invoice.pdf",
	}, nil)
	storage.On("GetPresignedURL", mock.Anything, "taxara-receipts", "receipts/a/b/c.pdf", "invoice.pdf", int64(900)).
		Return("https://signed.example/receipt", nil)

	url, err := svc.GetDownloadURL(context.Background(), tenantID, txID)

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/receipt", url)
}

func TestReceiptService_GetDownloadURL_ReceiptMissing(t *testing.T) {
	receiptRepo, _, _, svc := newReceiptFixture()

	tenantID := uuid.New()
	txID := uuid.New()
	receiptRepo.On("GetByTransaction", mock.Anything, tenantID, txID).Return(nil, domain.ErrReceiptMissing)

	url, err := svc.GetDownloadURL(context.Background(), tenantID, txID)

	assert.Empty(t, url)
	assert.ErrorIs(t, err, domain.ErrReceiptMissing)
}

func TestReceiptService_Delete_ClearsVatEvidence(t *testing.T) {
	receiptRepo, txRepo, storage, svc := newReceiptFixture()

	tenantID := uuid.New()
	receiptID := uuid.New()
	txID := uuid.New()

	receiptRepo.On("GetByID", mock.Anything, tenantID, receiptID).Return(&domain.Receipt{
		ID: receiptID, TransactionID: txID, S3Bucket: "taxara-receipts", S3Key: "receipts/a/b/c.pdf",
	}, nil)
	storage.On("Delete", mock.Anything, "taxara-receipts", "receipts/a/b/c.pdf").Return(nil)
	receiptRepo.On("Delete", mock.Anything, tenantID, receiptID).Return(nil)
	txRepo.On("SetVatEvidence", mock.Anything, tenantID, txID, false).Return(nil)

	err := svc.Delete(context.Background(), tenantID, receiptID)

	assert.NoError(t, err)
	txRepo.AssertCalled(t, "SetVatEvidence", mock.Anything, tenantID, txID, false)
}
