package entity

import "time"

// RemainingAmount is max(0, budget - spent)
func RemainingAmount(budget, spent int64) int64 {
	if budget > spent {
		return budget - spent
	}
	return 0
}

// ExceededAmount is max(0, spent - budget)
func ExceededAmount(budget, spent int64) int64 {
	if spent > budget {
		return spent - budget
	}
	return 0
}

// MonthFigures is the budget position of a single month
type MonthFigures struct {
	Total     int64
	Spent     int64
	Remaining int64
	Exceeded  int64
}

// NewMonthFigures derives remaining and exceeded from budget and spent
func NewMonthFigures(total, spent int64) MonthFigures {
	return MonthFigures{
		Total:     total,
		Spent:     spent,
		Remaining: RemainingAmount(total, spent),
		Exceeded:  ExceededAmount(total, spent),
	}
}

// BudgetSummary pairs a month with the month before it
type BudgetSummary struct {
	Current  MonthFigures
	Previous MonthFigures
}

// FinancialSchedule is an upcoming transaction shown on the main screen
type FinancialSchedule struct {
	TransactionID   uint64
	Date            time.Time
	PartnerName     string
	Amount          int64
	TransactionType TransactionType
}

// MainSummary is the current-month overview
type MainSummary struct {
	TotalBudget     int64
	TotalIncome     int64
	TotalExpense    int64
	FutureSchedules []FinancialSchedule
}

// DailyAmount holds income and expense sums for one date
type DailyAmount struct {
	Date    time.Time
	Income  int64
	Expense int64
}

// IsEmpty reports whether both sums are zero
func (d DailyAmount) IsEmpty() bool {
	return d.Income == 0 && d.Expense == 0
}

// TransactionDetail is a compact transaction line used by the monthly analysis
type TransactionDetail struct {
	Date   time.Time
	Vendor string
	Amount int64
}

// HabitScore is a 0-100 rating of spending discipline with feedback lines
type HabitScore struct {
	Score    int
	Previous int
	Feedback []string
}

// Change is the score difference against the previous period
func (h HabitScore) Change() int {
	return h.Score - h.Previous
}

// MonthlyAnalysis is the spending analysis for the current month
type MonthlyAnalysis struct {
	CurrentMonthTotal   int64
	CurrentMonthAverage float64
	PreviousMonthTotal  int64
	TwoMonthsAgoTotal   int64
	Transactions        []TransactionDetail
	Habit               HabitScore
}
