package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coremocks "github.com/yozi-budget/yozi-backend/mocks/port/core"
	persistencemocks "github.com/yozi-budget/yozi-backend/mocks/port/persistence"
	usecasemocks "github.com/yozi-budget/yozi-backend/mocks/port/usecase"
)

var seoul = time.FixedZone("Asia/Seoul", 9*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newClock(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	clock.EXPECT().Location().Return(seoul).Maybe()
	return clock
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newStoreUseCase(t *testing.T, store *memoryStore, now time.Time) *BudgetUseCase {
	return NewBudgetUseCase(store, transactionView{store}, store, nil, newClock(t, now), newQuietLogger(t))
}

func TestSetBudget(t *testing.T) {
	ctx := context.Background()
	march := day(2025, 3, 17)

	t.Run("should upsert instead of accumulate when called twice", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, march)
		entries := []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 50000},
			{CategoryType: "transportation", Amount: 30000},
		}

		// Act
		require.NoError(t, useCase.SetBudget(ctx, 1, march, entries))
		require.NoError(t, useCase.SetBudget(ctx, 1, march, entries))

		// Assert
		budgets, err := useCase.GetBudget(ctx, 1, day(2025, 3, 1))
		require.NoError(t, err)
		assert.Equal(t, []entity.CategoryBudget{
			{CategoryID: 1, CategoryType: entity.CategoryFoodDining, Amount: 50000},
			{CategoryID: 3, CategoryType: entity.CategoryTransportation, Amount: 30000},
		}, budgets)
		assert.Equal(t, 4, store.upserts)
	})

	t.Run("should keep total budget equal to the sum of per-category budgets", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, march)
		require.NoError(t, useCase.SetBudget(ctx, 1, march, []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 50000},
			{CategoryType: "EDUCATION", Amount: 12000},
		}))
		require.NoError(t, useCase.SetBudget(ctx, 1, march, []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 45000},
		}))
		require.NoError(t, useCase.SetBudget(ctx, 2, march, []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 999},
		}))

		for _, d := range []time.Time{day(2025, 3, 1), day(2025, 3, 31), day(2025, 4, 1)} {
			// Act
			budgets, err := useCase.GetBudget(ctx, 1, d)
			require.NoError(t, err)
			total, err := useCase.TotalBudget(ctx, 1, d)
			require.NoError(t, err)

			// Assert
			var sum int64
			for _, b := range budgets {
				sum += b.Amount
			}
			assert.Equal(t, sum, total, "date %s", d.Format(entity.DateLayout))
		}

		total, _ := useCase.TotalBudget(ctx, 1, march)
		assert.Equal(t, int64(57000), total)
	})

	t.Run("should fail with InvalidCategory and write nothing for that entry", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, march)

		// Act
		err := useCase.SetBudget(ctx, 1, march, []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 50000},
			{CategoryType: "PETS", Amount: 10000},
			{CategoryType: "EDUCATION", Amount: 10000},
		})

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
		assert.Equal(t, errs.CodeInvalidCategory, errs.ErrorCode(err))
		budgets, _ := useCase.GetBudget(ctx, 1, march)
		assert.Len(t, budgets, 1)
		assert.Equal(t, entity.CategoryFoodDining, budgets[0].CategoryType)
	})

	t.Run("should treat an unseeded category as invalid", func(t *testing.T) {
		// Arrange
		categoryRepo := persistencemocks.NewMockCategoryRepository(t)
		budgetRepo := persistencemocks.NewMockBudgetRepository(t)
		categoryRepo.EXPECT().GetByType(mock.Anything, entity.CategoryEducation).Return(nil, errs.ErrCategoryNotFound).Once()
		useCase := NewBudgetUseCase(budgetRepo, persistencemocks.NewMockTransactionRepository(t), categoryRepo, nil,
			newClock(t, march), newQuietLogger(t))

		// Act
		err := useCase.SetBudget(ctx, 1, march, []entity.BudgetEntry{{CategoryType: "EDUCATION", Amount: 1}})

		// Assert
		assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
		budgetRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, march)

		// Act
		err := useCase.SetBudget(ctx, 1, march, []entity.BudgetEntry{{CategoryType: "FOOD_DINING", Amount: -1}})

		// Assert
		assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
		assert.Zero(t, store.upserts)
	})

	t.Run("should normalize the month before upserting", func(t *testing.T) {
		// Arrange
		categoryRepo := persistencemocks.NewMockCategoryRepository(t)
		budgetRepo := persistencemocks.NewMockBudgetRepository(t)
		categoryRepo.EXPECT().GetByType(mock.Anything, entity.CategoryFoodDining).
			Return(&entity.Category{ID: 1, Type: entity.CategoryFoodDining}, nil).Once()
		budgetRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.BudgetMonth.Equal(day(2025, 3, 1)) && b.CategoryID == 1 && b.Amount == 50000 && b.UserID == 4
		})).Return(nil).Once()
		useCase := NewBudgetUseCase(budgetRepo, persistencemocks.NewMockTransactionRepository(t), categoryRepo, nil,
			newClock(t, march), newQuietLogger(t))

		// Act
		err := useCase.SetBudget(ctx, 4, day(2025, 3, 31), []entity.BudgetEntry{{CategoryType: "FOOD_DINING", Amount: 50000}})

		// Assert
		require.NoError(t, err)
	})
}

func TestRemainingAndExceededBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("should report 10000 exceeded and 0 remaining for 60000 spent against 50000", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, day(2025, 3, 20))
		require.NoError(t, useCase.SetBudget(ctx, 1, day(2025, 3, 1), []entity.BudgetEntry{
			{CategoryType: "FOOD_DINING", Amount: 50000},
		}))
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 2), 25000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 31), 35000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 4, 1), 99999)
		store.addTransaction(1, entity.TransactionIncome, day(2025, 3, 15), 70000)

		// Act
		exceeded, err1 := useCase.ExceededBudget(ctx, 1, day(2025, 3, 9))
		remaining, err2 := useCase.RemainingBudget(ctx, 1, day(2025, 3, 9))
		spent, _ := useCase.TotalExpense(ctx, 1, day(2025, 3, 9))
		income, _ := useCase.TotalIncome(ctx, 1, day(2025, 3, 9))

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, int64(10000), exceeded)
		assert.Equal(t, int64(0), remaining)
		assert.Equal(t, int64(60000), spent)
		assert.Equal(t, int64(70000), income)
	})

	t.Run("should never report both remaining and exceeded", func(t *testing.T) {
		for _, spent := range []int64{0, 1, 49999, 50000, 50001, 1000000} {
			// Arrange
			budgetRepo := persistencemocks.NewMockBudgetRepository(t)
			txRepo := persistencemocks.NewMockTransactionRepository(t)
			budgetRepo.EXPECT().SumByUserAndMonth(mock.Anything, uint64(1), day(2025, 3, 1)).Return(int64(50000), nil)
			txRepo.EXPECT().SumByTypeInRange(mock.Anything, uint64(1), entity.TransactionExpense, entity.MonthRange(day(2025, 3, 1))).
				Return(spent, nil)
			useCase := NewBudgetUseCase(budgetRepo, txRepo, persistencemocks.NewMockCategoryRepository(t), nil,
				newClock(t, day(2025, 3, 1)), newQuietLogger(t))

			// Act
			remaining, _ := useCase.RemainingBudget(ctx, 1, day(2025, 3, 12))
			exceeded, _ := useCase.ExceededBudget(ctx, 1, day(2025, 3, 12))

			// Assert
			assert.True(t, remaining == 0 || exceeded == 0, "spent %d", spent)
			if spent == 50000 {
				assert.Zero(t, remaining)
				assert.Zero(t, exceeded)
			}
			assert.Equal(t, int64(50000), remaining-exceeded+spent)
		}
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		// Arrange
		dbErr := storageError()
		budgetRepo := persistencemocks.NewMockBudgetRepository(t)
		budgetRepo.EXPECT().SumByUserAndMonth(mock.Anything, uint64(1), mock.Anything).Return(int64(0), dbErr).Once()
		useCase := NewBudgetUseCase(budgetRepo, persistencemocks.NewMockTransactionRepository(t),
			persistencemocks.NewMockCategoryRepository(t), nil, newClock(t, day(2025, 3, 1)), newQuietLogger(t))

		// Act
		_, err := useCase.RemainingBudget(ctx, 1, day(2025, 3, 1))

		// Assert
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})
}

func storageError() error {
	return errors.Join(errs.ErrDatabaseConnection, errors.New("connection reset by peer"))
}

func TestBudgetSummary(t *testing.T) {
	ctx := context.Background()

	seedTwoMonths := func(t *testing.T, useCase *BudgetUseCase, store *memoryStore) {
		require.NoError(t, useCase.SetBudget(ctx, 1, day(2025, 3, 1), []entity.BudgetEntry{{CategoryType: "FOOD_DINING", Amount: 50000}}))
		require.NoError(t, useCase.SetBudget(ctx, 1, day(2025, 2, 1), []entity.BudgetEntry{{CategoryType: "FOOD_DINING", Amount: 40000}}))
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 5), 20000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 2, 28), 45000)
	}

	t.Run("should repeat the month of date in the previous figures by default", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, day(2025, 3, 20))
		seedTwoMonths(t, useCase, store)

		// Act
		summary, err := useCase.BudgetSummary(ctx, 1, day(2025, 3, 31))

		// Assert
		// Known defect kept for client compatibility: previous mirrors current
		// and ignores February entirely. WithPriorMonthSummary fixes it.
		require.NoError(t, err)
		march := entity.MonthFigures{Total: 50000, Spent: 20000, Remaining: 30000, Exceeded: 0}
		assert.Equal(t, march, summary.Current)
		assert.Equal(t, march, summary.Previous)
	})

	t.Run("should compute the previous figures for the prior calendar month when enabled", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := NewBudgetUseCase(store, transactionView{store}, store, nil,
			newClock(t, day(2025, 3, 20)), newQuietLogger(t), WithPriorMonthSummary(true))
		seedTwoMonths(t, useCase, store)

		// Act
		summary, err := useCase.BudgetSummary(ctx, 1, day(2025, 3, 31))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.MonthFigures{Total: 50000, Spent: 20000, Remaining: 30000, Exceeded: 0}, summary.Current)
		assert.Equal(t, entity.MonthFigures{Total: 40000, Spent: 45000, Remaining: 0, Exceeded: 5000}, summary.Previous)
	})

	t.Run("should roll back across the year boundary when enabled", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := NewBudgetUseCase(store, transactionView{store}, store, nil,
			newClock(t, day(2025, 1, 3)), newQuietLogger(t), WithPriorMonthSummary(true))
		store.addTransaction(1, entity.TransactionExpense, day(2024, 12, 31), 700)

		// Act
		summary, err := useCase.BudgetSummary(ctx, 1, day(2025, 1, 15))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(700), summary.Previous.Spent)
		assert.Equal(t, int64(700), summary.Previous.Exceeded)
		assert.Zero(t, summary.Current.Spent)
	})
}

func TestMainSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("should list schedules from today to month end sorted by date", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		// 2025-03-09 20:00 UTC is already March 10th in Seoul
		useCase := newStoreUseCase(t, store, time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC))
		require.NoError(t, useCase.SetBudget(ctx, 1, day(2025, 3, 1), []entity.BudgetEntry{{CategoryType: "FOOD_DINING", Amount: 80000}}))
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 9), 1000)   // past
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 25), 3000)  // future
		store.addTransaction(1, entity.TransactionIncome, day(2025, 3, 10), 250000) // today
		store.addTransaction(1, entity.TransactionExpense, day(2025, 4, 1), 4000)   // next month
		store.addTransaction(2, entity.TransactionExpense, day(2025, 3, 20), 5000)  // another user
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 25), 2000)  // future, later id

		// Act
		summary, err := useCase.MainSummary(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(80000), summary.TotalBudget)
		assert.Equal(t, int64(250000), summary.TotalIncome)
		assert.Equal(t, int64(6000), summary.TotalExpense)
		require.Len(t, summary.FutureSchedules, 3)
		assert.Equal(t, day(2025, 3, 10), summary.FutureSchedules[0].Date)
		assert.Equal(t, entity.TransactionIncome, summary.FutureSchedules[0].TransactionType)
		assert.Equal(t, uint64(2), summary.FutureSchedules[1].TransactionID)
		assert.Equal(t, uint64(6), summary.FutureSchedules[2].TransactionID)
		assert.Equal(t, "vendor", summary.FutureSchedules[2].PartnerName)
	})
}

func TestDailyAmounts(t *testing.T) {
	ctx := context.Background()

	t.Run("should return exactly the dates that carry transactions", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, day(2025, 3, 28))
		store.addTransaction(1, entity.TransactionIncome, day(2025, 3, 20), 5000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 5), 10000)

		// Act
		amounts, err := useCase.DailyAmounts(ctx, 1, day(2025, 3, 1))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []entity.DailyAmount{
			{Date: day(2025, 3, 5), Income: 0, Expense: 10000},
			{Date: day(2025, 3, 20), Income: 5000, Expense: 0},
		}, amounts)
	})

	t.Run("should sum several transactions on one date and drop zero sums", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		useCase := newStoreUseCase(t, store, day(2025, 3, 28))
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 7), 1500)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 7), 2500)
		store.addTransaction(1, entity.TransactionIncome, day(2025, 3, 7), 100)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 8), 0)

		// Act
		amounts, err := useCase.DailyAmounts(ctx, 1, day(2025, 3, 15))

		// Assert
		require.NoError(t, err)
		require.Len(t, amounts, 1)
		assert.Equal(t, entity.DailyAmount{Date: day(2025, 3, 7), Income: 100, Expense: 4000}, amounts[0])
	})

	t.Run("should return an empty list for a month without transactions", func(t *testing.T) {
		// Arrange
		useCase := newStoreUseCase(t, newMemoryStore(), day(2025, 3, 28))

		// Act
		amounts, err := useCase.DailyAmounts(ctx, 1, day(2025, 3, 1))

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, amounts)
		assert.Empty(t, amounts)
	})
}

func TestMonthlyAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("should compare three months and average over elapsed days", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 1), 10000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 3, 2), 5000)
		store.addTransaction(1, entity.TransactionIncome, day(2025, 3, 2), 7000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 2, 10), 30000)
		store.addTransaction(1, entity.TransactionExpense, day(2025, 1, 10), 20000)
		store.addTransaction(1, entity.TransactionExpense, day(2024, 12, 10), 99999)

		scorer := usecasemocks.NewMockHabitScorer(t)
		scorer.EXPECT().Score(mock.Anything, mock.MatchedBy(func(history []*entity.Transaction) bool {
			return len(history) == 3
		})).Return(entity.HabitScore{Score: 70, Previous: 80, Feedback: []string{"x"}}, nil).Once()

		useCase := NewBudgetUseCase(store, transactionView{store}, store, scorer,
			newClock(t, time.Date(2025, 3, 7, 12, 0, 0, 0, seoul)), newQuietLogger(t))

		// Act
		analysis, err := useCase.MonthlyAnalysis(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(15000), analysis.CurrentMonthTotal)
		assert.Equal(t, 2142.9, analysis.CurrentMonthAverage)
		assert.Equal(t, int64(30000), analysis.PreviousMonthTotal)
		assert.Equal(t, int64(20000), analysis.TwoMonthsAgoTotal)
		assert.Len(t, analysis.Transactions, 3)
		assert.Equal(t, 70, analysis.Habit.Score)
		assert.Equal(t, -10, analysis.Habit.Change())
	})

	t.Run("should use the placeholder scorer by default", func(t *testing.T) {
		// Arrange
		useCase := newStoreUseCase(t, newMemoryStore(), day(2025, 3, 1))

		// Act
		analysis, err := useCase.MonthlyAnalysis(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 88, analysis.Habit.Score)
		assert.Equal(t, 83, analysis.Habit.Previous)
		assert.Equal(t, float64(0), analysis.CurrentMonthAverage)
		assert.Equal(t, "지난달보다 5점 상승했어요!", analysis.Habit.Feedback[0])
	})

	t.Run("should fail when scoring fails", func(t *testing.T) {
		// Arrange
		store := newMemoryStore()
		scorer := usecasemocks.NewMockHabitScorer(t)
		scoreErr := errors.New("scorer unavailable")
		scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(entity.HabitScore{}, scoreErr).Once()
		useCase := NewBudgetUseCase(store, transactionView{store}, store, scorer, newClock(t, day(2025, 3, 1)), newQuietLogger(t))

		// Act
		analysis, err := useCase.MonthlyAnalysis(ctx, 1)

		// Assert
		assert.Nil(t, analysis)
		assert.Equal(t, scoreErr, err)
	})
}

func TestDailyAverage(t *testing.T) {
	tests := []struct {
		total    int64
		days     int
		expected float64
	}{
		{15000, 7, 2142.9},
		{10, 4, 2.5},
		{1, 3, 0.3},
		{5, 20, 0.3},
		{100, 0, 0},
		{0, 15, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DailyAverage(tt.total, tt.days), "total %d over %d days", tt.total, tt.days)
	}
}
