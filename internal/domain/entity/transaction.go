package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	tport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// TransactionType tells income and expense apart
type TransactionType string

// Transaction types
const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// ParseTransactionType resolves a type name case-insensitively
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(value))) {
	case TransactionIncome:
		return TransactionIncome, nil
	case TransactionExpense:
		return TransactionExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, value)
	}
}

// PaymentMethod is how a transaction was paid
type PaymentMethod string

// Payment methods
const (
	PaymentCard         PaymentMethod = "CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMobilePay    PaymentMethod = "MOBILE_PAY"
	PaymentOther        PaymentMethod = "OTHER"
)

// ParsePaymentMethod resolves a payment method; empty input means OTHER
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToUpper(strings.TrimSpace(value)))
	switch method {
	case "":
		return PaymentOther, nil
	case PaymentCard, PaymentCash, PaymentBankTransfer, PaymentMobilePay, PaymentOther:
		return method, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidPaymentMethod, value)
	}
}

// TransactionDetails holds the user editable fields of a transaction
type TransactionDetails struct {
	Type            TransactionType
	CategoryID      uint64
	PaymentMethod   PaymentMethod
	Vendor          string
	Amount          int64
	Memo            string
	TransactionDate time.Time
}

// Validate checks the details before they are applied
func (d TransactionDetails) Validate() error {
	if d.Type != TransactionIncome && d.Type != TransactionExpense {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, d.Type)
	}
	if _, err := ParsePaymentMethod(string(d.PaymentMethod)); err != nil {
		return err
	}
	if d.Amount < 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, d.Amount)
	}
	if d.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", errs.ErrInvalidDate)
	}
	return nil
}

// Transaction is a single recorded income or expense event
type Transaction struct {
	ID              uint64
	UserID          uint64
	Type            TransactionType
	CategoryID      uint64
	PaymentMethod   PaymentMethod
	Vendor          string
	Amount          int64
	Memo            string
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a transaction owned by userID
func NewTransaction(userID uint64, details TransactionDetails, timeProvider tport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	t := &Transaction{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.assign(details)
	return t, nil
}

// Apply replaces the editable fields and bumps UpdatedAt
func (t *Transaction) Apply(details TransactionDetails, timeProvider tport.TimeProvider) error {
	if err := details.Validate(); err != nil {
		return err
	}
	t.assign(details)
	t.UpdatedAt = timeProvider.Now()
	return nil
}

func (t *Transaction) assign(details TransactionDetails) {
	method, _ := ParsePaymentMethod(string(details.PaymentMethod))
	t.Type = details.Type
	t.CategoryID = details.CategoryID
	t.PaymentMethod = method
	t.Vendor = details.Vendor
	t.Amount = details.Amount
	t.Memo = details.Memo
	t.TransactionDate = DateOf(details.TransactionDate)
}

// IsOwnedBy reports whether userID owns the transaction
func (t *Transaction) IsOwnedBy(userID uint64) bool {
	return t.UserID == userID
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}
