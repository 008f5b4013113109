package usecase

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// TransactionInput is the client supplied content of a transaction
type TransactionInput struct {
	Type            string
	CategoryID      uint64
	PaymentMethod   string
	Vendor          string
	Amount          int64
	Memo            string
	TransactionDate time.Time
}

// TransactionView is a transaction enriched with its owner's nickname and category name
type TransactionView struct {
	ID                  uint64
	UserNickname        string
	Type                entity.TransactionType
	CategoryID          uint64
	CategoryDisplayName string
	PaymentMethod       entity.PaymentMethod
	Vendor              string
	Amount              int64
	Memo                string
	TransactionDate     time.Time
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// ListTransactions returns the caller's transactions, newest first.
	// An empty typeFilter returns both types.
	ListTransactions(ctx context.Context, userID uint64, typeFilter string) ([]TransactionView, error)

	// ListTransactionsByCategory returns the caller's transactions in one category
	ListTransactionsByCategory(ctx context.Context, userID uint64, categoryID uint64) ([]TransactionView, error)

	// CreateTransaction records a transaction owned by the caller
	CreateTransaction(ctx context.Context, userID uint64, input TransactionInput) (*TransactionView, error)

	// UpdateTransaction replaces a transaction the caller owns
	UpdateTransaction(ctx context.Context, userID uint64, transactionID uint64, input TransactionInput) (*TransactionView, error)

	// DeleteTransaction removes a transaction the caller owns
	DeleteTransaction(ctx context.Context, userID uint64, transactionID uint64) error
}
