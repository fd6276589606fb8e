package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxara/internal/domain"
	"taxara/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"profile missing", domain.ErrProfileMissing, http.StatusNotFound, "PROFILE_MISSING"},
		{"not business account", domain.ErrNotBusinessAccount, http.StatusBadRequest, "NOT_BUSINESS_ACCOUNT"},
		{"not personal account", domain.ErrNotPersonalAccount, http.StatusBadRequest, "NOT_PERSONAL_ACCOUNT"},
		{"receipt missing", domain.ErrReceiptMissing, http.StatusNotFound, "RECEIPT_MISSING"},
		{"finding already closed", domain.ErrFindingAlreadyClosed, http.StatusConflict, "FINDING_ALREADY_CLOSED"},
		{"unknown override key", domain.ErrUnknownOverrideKey, http.StatusBadRequest, "UNKNOWN_OVERRIDE_KEY"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"unmapped error", errors.New("driver broke"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrProfileMissing)

	status, code, _ := handler.MapDomainError(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PROFILE_MISSING", code)
}
