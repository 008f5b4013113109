package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidArgument   = 4000
	CodeInvalidAmount     = 4002
	CodeUnauthenticated   = 4010
	CodeUnauthorized      = 4030
	CodeNotFound          = 4040
	CodeDuplicateResource = 4090
	CodeInvalidCategory   = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeOAuthExchange  = 5020
)

// Base error types
var (
	// ErrInvalidArgument is returned when a request parameter is malformed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidDate is returned when a date cannot be parsed or is zero
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrInvalidArgument)

	// ErrInvalidTransactionType is returned when the type is neither INCOME nor EXPENSE
	ErrInvalidTransactionType = fmt.Errorf("%w: invalid transaction type", ErrInvalidArgument)

	// ErrInvalidPaymentMethod is returned when the payment method is not a known value
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method", ErrInvalidArgument)

	// ErrUnsupportedProvider is returned when no OAuth provider is registered for a social type
	ErrUnsupportedProvider = fmt.Errorf("%w: unsupported social login type", ErrInvalidArgument)

	// ErrInvalidAmount is returned when an amount is negative
	ErrInvalidAmount = errors.New("amount must be a non-negative integer")

	// ErrInvalidUserID is returned when the user ID is zero
	ErrInvalidUserID = fmt.Errorf("%w: user ID must be positive", ErrInvalidArgument)

	// ErrMissingToken is returned when a request carries no bearer token
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when a bearer token fails verification
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUnauthorized is returned when the caller does not own the resource
	ErrUnauthorized = errors.New("not allowed to modify this resource")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	// ErrCategoryNotFound is returned when a category lookup misses
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrInvalidCategory is returned when a budget entry names an unknown category type
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateCategory is returned when a category type is inserted twice
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrOAuthExchange is returned when the identity provider rejects or fails a request
	ErrOAuthExchange = errors.New("oauth provider request failed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken):
		return CodeUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrDuplicateCategory), errors.Is(err, ErrConstraintViolation):
		return CodeDuplicateResource
	case errors.Is(err, ErrOAuthExchange):
		return CodeOAuthExchange
	default:
		return CodeInternalServer
	}
}

// OwnershipError is returned when a user tries to mutate a transaction owned by someone else
type OwnershipError struct {
	TransactionID uint64
	OwnerID       uint64
	CallerID      uint64
}

// Error implements the error interface
func (e *OwnershipError) Error() string {
	return fmt.Sprintf("user %d is not the owner of transaction %d", e.CallerID, e.TransactionID)
}

// Is checks if the target error is an ErrUnauthorized
func (e *OwnershipError) Is(target error) bool {
	return target == ErrUnauthorized
}

// LogFields returns a map of fields for structured logging
func (e *OwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ownership",
		"transaction_id": e.TransactionID,
		"owner_id":       e.OwnerID,
		"caller_id":      e.CallerID,
		"error_code":     CodeUnauthorized,
	}
}

// NewOwnershipError creates a detailed ownership error
func NewOwnershipError(transactionID, ownerID, callerID uint64) error {
	return &OwnershipError{
		TransactionID: transactionID,
		OwnerID:       ownerID,
		CallerID:      callerID,
	}
}

// InvalidCategoryError names the category type that could not be resolved
type InvalidCategoryError struct {
	CategoryType string
}

// Error implements the error interface
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q", e.CategoryType)
}

// Is checks if the target error is an ErrInvalidCategory
func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// LogFields returns a map of fields for structured logging
func (e *InvalidCategoryError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "invalid_category",
		"category_type": e.CategoryType,
		"error_code":    CodeInvalidCategory,
	}
}

// NewInvalidCategoryError creates a new invalid category error
func NewInvalidCategoryError(categoryType string) error {
	return &InvalidCategoryError{CategoryType: categoryType}
}

// ProviderError wraps a failure talking to an OAuth identity provider
type ProviderError struct {
	Provider string
	Stage    string
	Err      error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s oauth %s failed: %v", e.Provider, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports every provider failure as ErrOAuthExchange
func (e *ProviderError) Is(target error) bool {
	return target == ErrOAuthExchange
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "oauth_provider",
		"provider":   e.Provider,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": CodeOAuthExchange,
	}
}

// NewProviderError creates a provider error for the given stage (exchange, userinfo)
func NewProviderError(provider, stage string, err error) error {
	return &ProviderError{Provider: provider, Stage: stage, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorizedError checks if the error is an ownership violation
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInvalidArgumentError checks if the error is caused by bad caller input
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidAmount)
}
