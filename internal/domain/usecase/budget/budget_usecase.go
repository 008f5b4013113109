package budget

import (
	"context"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/persistence"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// BudgetUseCase handles budgets and every aggregation derived from budgets and transactions
type BudgetUseCase struct {
	budgetRepo      persistence.BudgetRepository
	transactionRepo persistence.TransactionRepository
	categoryRepo    persistence.CategoryRepository
	habitScorer     usecase.HabitScorer
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger

	priorMonthSummary bool
}

// Option customizes a BudgetUseCase
type Option func(*BudgetUseCase)

// WithPriorMonthSummary makes BudgetSummary report the calendar month before
// date as its previous figures. Without it they repeat the month of date,
// which is what existing clients of the summary endpoint read.
func WithPriorMonthSummary(enabled bool) Option {
	return func(u *BudgetUseCase) {
		u.priorMonthSummary = enabled
	}
}

// NewBudgetUseCase creates a new BudgetUseCase.
// A nil habitScorer selects the placeholder scorer.
func NewBudgetUseCase(
	budgetRepo persistence.BudgetRepository,
	transactionRepo persistence.TransactionRepository,
	categoryRepo persistence.CategoryRepository,
	habitScorer usecase.HabitScorer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *BudgetUseCase {
	if habitScorer == nil {
		habitScorer = NewPlaceholderHabitScorer()
	}

	u := &BudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		habitScorer:     habitScorer,
		timeProvider:    timeProvider,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SetBudget upserts the month's amount for each entry in order
func (u *BudgetUseCase) SetBudget(ctx context.Context, userID uint64, date time.Time, entries []entity.BudgetEntry) error {
	month := entity.MonthStart(date)

	for i, entry := range entries {
		category, err := u.resolveCategory(ctx, entry.CategoryType)
		if err != nil {
			u.logger.Warn("Budget entry rejected", coreport.ErrorFields(err, map[string]any{
				"user_id": userID,
				"month":   month.Format(entity.DateLayout),
				"index":   i,
			}))
			return err
		}

		budget, err := entity.NewBudget(userID, category.ID, entry.Amount, month, u.timeProvider)
		if err != nil {
			return err
		}

		if err := u.budgetRepo.Upsert(ctx, budget); err != nil {
			u.logger.Error("Failed to upsert budget", coreport.ErrorFields(err, map[string]any{
				"user_id":       userID,
				"category_type": category.Type,
				"month":         month.Format(entity.DateLayout),
			}))
			return err
		}
	}

	u.logger.Info("Budget set", map[string]any{
		"user_id": userID,
		"month":   month.Format(entity.DateLayout),
		"entries": len(entries),
	})
	return nil
}

// resolveCategory maps a client category type to its stored row.
// A known type that has not been seeded is as invalid as an unknown one.
func (u *BudgetUseCase) resolveCategory(ctx context.Context, categoryType string) (*entity.Category, error) {
	t, err := entity.ParseCategoryType(categoryType)
	if err != nil {
		return nil, err
	}

	category, err := u.categoryRepo.GetByType(ctx, t)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.NewInvalidCategoryError(categoryType)
		}
		return nil, err
	}
	return category, nil
}

// GetBudget returns the per-category budgets of the month
func (u *BudgetUseCase) GetBudget(ctx context.Context, userID uint64, date time.Time) ([]entity.CategoryBudget, error) {
	return u.budgetRepo.ListByUserAndMonth(ctx, userID, entity.MonthStart(date))
}

// TotalBudget sums the month's budgets
func (u *BudgetUseCase) TotalBudget(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	return u.budgetRepo.SumByUserAndMonth(ctx, userID, entity.MonthStart(date))
}

// TotalIncome sums income dated inside the month
func (u *BudgetUseCase) TotalIncome(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	return u.transactionRepo.SumByTypeInRange(ctx, userID, entity.TransactionIncome, entity.MonthRange(date))
}

// TotalExpense sums expenses dated inside the month
func (u *BudgetUseCase) TotalExpense(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	return u.transactionRepo.SumByTypeInRange(ctx, userID, entity.TransactionExpense, entity.MonthRange(date))
}

// RemainingBudget is max(0, budget - expense)
func (u *BudgetUseCase) RemainingBudget(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	figures, err := u.monthFigures(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	return figures.Remaining, nil
}

// ExceededBudget is max(0, expense - budget)
func (u *BudgetUseCase) ExceededBudget(ctx context.Context, userID uint64, date time.Time) (int64, error) {
	figures, err := u.monthFigures(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	return figures.Exceeded, nil
}

func (u *BudgetUseCase) monthFigures(ctx context.Context, userID uint64, date time.Time) (entity.MonthFigures, error) {
	total, err := u.TotalBudget(ctx, userID, date)
	if err != nil {
		return entity.MonthFigures{}, err
	}

	spent, err := u.TotalExpense(ctx, userID, date)
	if err != nil {
		return entity.MonthFigures{}, err
	}

	return entity.NewMonthFigures(total, spent), nil
}

// today is the current civil date in the configured location
func (u *BudgetUseCase) today() time.Time {
	return entity.DateOf(u.timeProvider.Now().In(u.timeProvider.Location()))
}
