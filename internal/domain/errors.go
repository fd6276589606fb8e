package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTenantInactive       = errors.New("tenant is inactive")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug  = errors.New("tenant slug already exists")
	ErrProfileMissing       = errors.New("tenant profile has not been set up")
	ErrNotBusinessAccount   = errors.New("operation requires a business account")
	ErrNotPersonalAccount   = errors.New("operation requires a personal account")
	ErrUnsupportedFileType  = errors.New("unsupported receipt file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("receipt upload to storage failed")
	ErrReceiptMissing       = errors.New("no receipt attached to this transaction")
	ErrFindingAlreadyClosed = errors.New("finding has already been reviewed")
	ErrUnknownOverrideKey   = errors.New("unknown rate override key")
)
