package persistence

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// BudgetRepository defines access to monthly category budgets
type BudgetRepository interface {
	// Upsert writes the amount for (user, category, month) atomically:
	// an existing row gets its amount replaced, otherwise a row is inserted
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Upsert(ctx context.Context, budget *entity.Budget) error

	// ListByUserAndMonth returns the month's budgets with their category types,
	// ordered by category ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUserAndMonth(ctx context.Context, userID uint64, month time.Time) ([]entity.CategoryBudget, error)

	// SumByUserAndMonth returns the total budget of the month; 0 if none
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumByUserAndMonth(ctx context.Context, userID uint64, month time.Time) (int64, error)
}
