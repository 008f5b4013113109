package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// MonthlyAnalysis compares the current month's spending with the two months before it
func (u *BudgetUseCase) MonthlyAnalysis(ctx context.Context, userID uint64) (*entity.MonthlyAnalysis, error) {
	today := u.today()

	currentTotal, err := u.TotalExpense(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	previousTotal, err := u.TotalExpense(ctx, userID, entity.AddMonths(today, -1))
	if err != nil {
		return nil, err
	}
	twoMonthsAgoTotal, err := u.TotalExpense(ctx, userID, entity.AddMonths(today, -2))
	if err != nil {
		return nil, err
	}

	history, err := u.transactionRepo.ListByUserInRange(ctx, userID, entity.MonthRange(today))
	if err != nil {
		return nil, err
	}

	details := make([]entity.TransactionDetail, 0, len(history))
	for _, t := range history {
		details = append(details, entity.TransactionDetail{
			Date:   t.TransactionDate,
			Vendor: t.Vendor,
			Amount: t.Amount,
		})
	}

	habit, err := u.habitScorer.Score(ctx, history)
	if err != nil {
		u.logger.Error("Habit scoring failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &entity.MonthlyAnalysis{
		CurrentMonthTotal:   currentTotal,
		CurrentMonthAverage: DailyAverage(currentTotal, today.Day()),
		PreviousMonthTotal:  previousTotal,
		TwoMonthsAgoTotal:   twoMonthsAgoTotal,
		Transactions:        details,
		Habit:               habit,
	}, nil
}

// DailyAverage divides total by elapsed days rounded to one decimal, half away from zero.
// Zero days yield 0.
func DailyAverage(total int64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(days))).
		Round(1).
		InexactFloat64()
}
