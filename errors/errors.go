package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error kind
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken     ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrCodeAccountDisabled  ErrorCode = "ACCOUNT_DISABLED"
	ErrCodeInvalidPassword  ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserExists       ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"
)

// AppError is the error type every service returns to controllers
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Fields  map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError wrapped by err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// ValidationFields carries per-field messages alongside the summary
func ValidationFields(message string, fields map[string]string) *AppError {
	e := NewAppError(ErrCodeValidation, message, nil)
	e.Fields = fields
	return e
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeDBNotFound, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

func Upstream(message string, err error) *AppError {
	return NewAppError(ErrCodeUpstream, message, err)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// HTTPStatus maps an error code to the status it is surfaced with.
// Conflicts are reported as 400, which is what clients of this API expect.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat,
		ErrCodeInvalidEmail, ErrCodeInvalidAmount, ErrCodeInvalidStatus,
		ErrCodeInvalidRole, ErrCodeInvalidOperation, ErrCodeInvalidPassword:
		return http.StatusBadRequest
	case ErrCodeConflict, ErrCodeUserExists, ErrCodeDBDuplicate:
		return http.StatusBadRequest
	case ErrCodeDBNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeAccountDisabled:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrBookingExists        = errors.New("booking already confirmed")
)
