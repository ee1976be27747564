package errors

import (
	"fmt"
	"net/http"
)

// Attendance-specific error types
const (
	ErrorTypeInvalidCredential ErrorType = "invalid_credential"
	ErrorTypeInvalidQRToken    ErrorType = "invalid_qr_token"
	ErrorTypeQRTokenExpired    ErrorType = "qr_token_expired"
	ErrorTypeWorkerNotActive   ErrorType = "worker_not_active"
	ErrorTypeAlreadyCheckedIn  ErrorType = "already_checked_in"
	ErrorTypeAlreadyCheckedOut ErrorType = "already_checked_out"
	ErrorTypeNotCheckedIn      ErrorType = "not_checked_in"
)

// NewInvalidCredentialError covers bad logins and bad/expired/revoked refresh
// tokens. The message never reveals which part of the credential was wrong.
func NewInvalidCredentialError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredential,
		Message: "invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}

// NewInvalidQRTokenError is returned when an attendance token signature does
// not recompute. Logged at warn level, not treated as a security incident
// unless the rate spikes for one worker.
func NewInvalidQRTokenError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidQRToken,
		Message: "QR code could not be verified, generate a new one in the app",
		Code:    http.StatusForbidden,
	}
}

// NewQRTokenExpiredError is returned when an attendance token is past its
// validity window. The admin scan flow surfaces this distinctly from ledger
// conflicts because the corrective action differs (refresh the QR).
func NewQRTokenExpiredError() *AppError {
	return &AppError{
		Type:    ErrorTypeQRTokenExpired,
		Message: "QR code expired, ask the worker to refresh it",
		Code:    http.StatusBadRequest,
	}
}

// NewWorkerNotActiveError carries the worker's specific status so the client
// can show the right guidance (awaiting approval vs blocked etc).
func NewWorkerNotActiveError(status, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeWorkerNotActive,
		Message: message,
		Code:    http.StatusForbidden,
		Details: fmt.Sprintf("status=%s", status),
	}
}

// NewAlreadyCheckedInError is the expected outcome for the losing side of a
// concurrent double check-in. Not an application error; logged at debug.
func NewAlreadyCheckedInError() *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyCheckedIn,
		Message: "already checked in for the current work date",
		Code:    http.StatusConflict,
	}
}

// NewAlreadyCheckedOutError rejects reopening a completed work date.
func NewAlreadyCheckedOutError() *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyCheckedOut,
		Message: "already checked out for the current work date",
		Code:    http.StatusConflict,
	}
}

// NewNotCheckedInError rejects a check-out with no open attendance row.
func NewNotCheckedInError() *AppError {
	return &AppError{
		Type:    ErrorTypeNotCheckedIn,
		Message: "no check-in record found for the current work date",
		Code:    http.StatusNotFound,
	}
}

// IsLedgerConflict reports whether the error is one of the expected attendance
// state conflicts. These are normal concurrent-access outcomes and must not be
// logged as application errors.
func IsLedgerConflict(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Type {
	case ErrorTypeAlreadyCheckedIn, ErrorTypeAlreadyCheckedOut, ErrorTypeNotCheckedIn:
		return true
	}
	return false
}
