package entity

import (
	"fmt"
	"time"

	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// Budget is a user-set spending ceiling for one category in one calendar month
type Budget struct {
	ID          uint64
	UserID      uint64
	CategoryID  uint64
	Amount      int64
	BudgetMonth time.Time // always the first day of the month
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a budget row keyed by (user, category, normalized month)
func NewBudget(userID, categoryID uint64, amount int64, month time.Time, timeProvider coreport.TimeProvider) (*Budget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}

	now := timeProvider.Now()
	return &Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		BudgetMonth: MonthStart(month),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// BudgetEntry is one requested (category type, amount) pair
type BudgetEntry struct {
	CategoryType string
	Amount       int64
}

// CategoryBudget is a stored budget amount resolved to its category type
type CategoryBudget struct {
	CategoryID   uint64
	CategoryType CategoryType
	Amount       int64
}
