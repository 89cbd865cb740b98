package errors

import (
	"net/http"

	"leadgrid/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Strategy-related errors
	ErrStrategyNotFound = NewBaseError(
		http.StatusNotFound,
		"STRATEGY_NOT_FOUND",
		"找不到該策略",
		"",
	)

	ErrStrategyTransitionInvalid = NewBaseError(
		http.StatusConflict,
		"STRATEGY_TRANSITION_INVALID",
		"策略狀態無法變更",
		"",
	)

	ErrStrategyArchived = NewBaseError(
		http.StatusConflict,
		"STRATEGY_ARCHIVED",
		"策略已封存，無法派送",
		"",
	)

	ErrStrategyGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"STRATEGY_GENERATION_FAILED",
		"策略產生失敗",
		"",
	)

	// Zone-related errors
	ErrZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"ZONE_NOT_FOUND",
		"找不到該區域",
		"",
	)

	ErrZoneBusy = NewBaseError(
		http.StatusConflict,
		"ZONE_BUSY",
		"該區域正在抓取中",
		"",
	)

	ErrZoneNotScrapeable = NewBaseError(
		http.StatusConflict,
		"ZONE_NOT_SCRAPEABLE",
		"該區域目前狀態無法抓取",
		"",
	)

	ErrZoneNotRetryable = NewBaseError(
		http.StatusConflict,
		"ZONE_NOT_RETRYABLE",
		"只有失敗的區域可以重試",
		"",
	)

	ErrZoneFailed = NewBaseError(
		http.StatusBadGateway,
		"ZONE_FAILED",
		"區域抓取失敗",
		"",
	)

	// Draft-related errors
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"找不到該草稿活動",
		"",
	)

	ErrDraftAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"DRAFT_ALREADY_REVIEWED",
		"該草稿活動已審核",
		"",
	)

	// Activation-related errors
	ErrActivationNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVATION_NOT_FOUND",
		"找不到該開通紀錄",
		"",
	)

	ErrActivationInProgress = NewBaseError(
		http.StatusServiceUnavailable,
		"ACTIVATION_IN_PROGRESS",
		"該交易正在處理中，請稍後重試",
		"",
	)

	ErrSiteOwnershipConflict = NewBaseError(
		http.StatusConflict,
		"SITE_OWNERSHIP_CONFLICT",
		"該網站已由其他交易取得所有權",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"簽章驗證失敗",
		"",
	)

	// Short link-related errors
	ErrShortLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"SHORT_LINK_NOT_FOUND",
		"找不到該短網址",
		"",
	)

	ErrShortLinkIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHORT_LINK_ISSUE_FAILED",
		"短網址建立失敗",
		"",
	)

	// Filter-related errors
	ErrFilterPresetNotFound = NewBaseError(
		http.StatusNotFound,
		"FILTER_PRESET_NOT_FOUND",
		"找不到該篩選條件",
		"",
	)

	ErrFilterPresetForbidden = NewBaseError(
		http.StatusForbidden,
		"FILTER_PRESET_FORBIDDEN",
		"您沒有權限使用此篩選條件",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"服務暫時無法使用，請稍後重試",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// ValidationError reports the first invalid field of a request, implementing the AppError interface
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "invalid field " + e.Field + ": " + e.Reason
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Field
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying storage error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
