package usecase

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// BudgetUseCase defines budgets and the aggregations built on budgets and transactions.
// Every date argument selects the calendar month it falls in.
type BudgetUseCase interface {
	// SetBudget upserts one amount per entry for the month of date.
	// Entries are written in order; a failing entry stops the loop and earlier entries stay written.
	SetBudget(ctx context.Context, userID uint64, date time.Time, entries []entity.BudgetEntry) error

	// GetBudget returns the month's per-category budgets
	GetBudget(ctx context.Context, userID uint64, date time.Time) ([]entity.CategoryBudget, error)

	TotalBudget(ctx context.Context, userID uint64, date time.Time) (int64, error)
	TotalIncome(ctx context.Context, userID uint64, date time.Time) (int64, error)
	TotalExpense(ctx context.Context, userID uint64, date time.Time) (int64, error)
	RemainingBudget(ctx context.Context, userID uint64, date time.Time) (int64, error)
	ExceededBudget(ctx context.Context, userID uint64, date time.Time) (int64, error)

	// BudgetSummary compares the month of date with the month before it
	BudgetSummary(ctx context.Context, userID uint64, date time.Time) (*entity.BudgetSummary, error)

	// MainSummary is the overview of the current month
	MainSummary(ctx context.Context, userID uint64) (*entity.MainSummary, error)

	// DailyAmounts returns per-day income and expense sums for days that have any
	DailyAmounts(ctx context.Context, userID uint64, date time.Time) ([]entity.DailyAmount, error)

	// MonthlyAnalysis analyses the current month against the two before it
	MonthlyAnalysis(ctx context.Context, userID uint64) (*entity.MonthlyAnalysis, error)
}

// HabitScorer rates spending discipline from a month of transaction history
type HabitScorer interface {
	Score(ctx context.Context, history []*entity.Transaction) (entity.HabitScore, error)
}
