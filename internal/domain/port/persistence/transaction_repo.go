package persistence

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and sets its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update stores the editable fields of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// GetByID retrieves a transaction regardless of owner
	// Ownership is checked by the caller
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUser returns the user's transactions, newest first
	// A non-empty transactionType restricts the result to that type
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64, transactionType entity.TransactionType) ([]*entity.Transaction, error)

	// ListByUserAndCategory returns the user's transactions in one category, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUserAndCategory(ctx context.Context, userID uint64, categoryID uint64) ([]*entity.Transaction, error)

	// ListByUserInRange returns transactions dated inside the inclusive range,
	// ordered by date and then ID ascending
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUserInRange(ctx context.Context, userID uint64, dateRange entity.DateRange) ([]*entity.Transaction, error)

	// SumByTypeInRange sums amounts of one type inside the inclusive range; 0 if none
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumByTypeInRange(ctx context.Context, userID uint64, transactionType entity.TransactionType, dateRange entity.DateRange) (int64, error)
}
