package budget

import (
	"context"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// BudgetSummary returns the figures for the month of date plus a previous set.
// The previous set repeats the same month unless WithPriorMonthSummary is on.
func (u *BudgetUseCase) BudgetSummary(ctx context.Context, userID uint64, date time.Time) (*entity.BudgetSummary, error) {
	current, err := u.monthFigures(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if !u.priorMonthSummary {
		return &entity.BudgetSummary{Current: current, Previous: current}, nil
	}

	previous, err := u.monthFigures(ctx, userID, entity.AddMonths(date, -1))
	if err != nil {
		return nil, err
	}

	return &entity.BudgetSummary{Current: current, Previous: previous}, nil
}

// MainSummary is the overview of the current month with the schedules still ahead of today
func (u *BudgetUseCase) MainSummary(ctx context.Context, userID uint64) (*entity.MainSummary, error) {
	today := u.today()
	month := entity.MonthRange(today)

	totalBudget, err := u.TotalBudget(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	totalIncome, err := u.TotalIncome(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	totalExpense, err := u.TotalExpense(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	from := month.From
	if today.After(from) {
		from = today
	}

	upcoming, err := u.transactionRepo.ListByUserInRange(ctx, userID, entity.DateRange{From: from, To: month.To})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(upcoming, compareByDateThenID)

	schedules := make([]entity.FinancialSchedule, 0, len(upcoming))
	for _, t := range upcoming {
		schedules = append(schedules, entity.FinancialSchedule{
			TransactionID:   t.ID,
			Date:            t.TransactionDate,
			PartnerName:     t.Vendor,
			Amount:          t.Amount,
			TransactionType: t.Type,
		})
	}

	return &entity.MainSummary{
		TotalBudget:     totalBudget,
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		FutureSchedules: schedules,
	}, nil
}

// DailyAmounts groups the month's transactions by date.
// Only dates that carry transactions appear, and a date whose sums are both zero is dropped.
func (u *BudgetUseCase) DailyAmounts(ctx context.Context, userID uint64, date time.Time) ([]entity.DailyAmount, error) {
	transactions, err := u.transactionRepo.ListByUserInRange(ctx, userID, entity.MonthRange(date))
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*entity.DailyAmount)
	for _, t := range transactions {
		day := entity.DateOf(t.TransactionDate)
		key := day.Format(entity.DateLayout)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &entity.DailyAmount{Date: day}
			buckets[key] = bucket
		}

		switch t.Type {
		case entity.TransactionIncome:
			bucket.Income += t.Amount
		case entity.TransactionExpense:
			bucket.Expense += t.Amount
		}
	}

	keys := maps.Keys(buckets)
	slices.Sort(keys)

	result := make([]entity.DailyAmount, 0, len(keys))
	for _, key := range keys {
		if bucket := buckets[key]; !bucket.IsEmpty() {
			result = append(result, *bucket)
		}
	}
	return result, nil
}

func compareByDateThenID(a, b *entity.Transaction) int {
	if c := a.TransactionDate.Compare(b.TransactionDate); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}
