package dto

import "github.com/yozi-budget/yozi-backend/internal/domain/entity"

// BudgetRequest is one entry of POST /api/budgets.
// BudgetMonth is accepted for compatibility; the month comes from the date query.
type BudgetRequest struct {
	CategoryType string `json:"categoryType" binding:"required"`
	Amount       int64  `json:"amount" binding:"min=0"`
	BudgetMonth  string `json:"budgetMonth,omitempty"`
}

// CategoryBudgetResponse is one stored budget of a month
type CategoryBudgetResponse struct {
	CategoryType string `json:"categoryType"`
	Amount       int64  `json:"amount"`
}

// BudgetSummaryResponse compares a month with the month before it
type BudgetSummaryResponse struct {
	Total         int64 `json:"total"`
	Spent         int64 `json:"spent"`
	Remaining     int64 `json:"remaining"`
	Exceeded      int64 `json:"exceeded"`
	PrevTotal     int64 `json:"prevTotal"`
	PrevSpent     int64 `json:"prevSpent"`
	PrevRemaining int64 `json:"prevRemaining"`
	PrevExceeded  int64 `json:"prevExceeded"`
}

// FinancialScheduleResponse is an upcoming transaction of the current month
type FinancialScheduleResponse struct {
	TransactionID   uint64 `json:"transactionId"`
	Date            string `json:"date"`
	PartnerName     string `json:"partnerName"`
	Amount          int64  `json:"amount"`
	TransactionType string `json:"transactionType"`
}

// MainSummaryResponse is the main screen overview
type MainSummaryResponse struct {
	TotalBudget     int64                       `json:"totalBudget"`
	TotalIncome     int64                       `json:"totalIncome"`
	TotalExpense    int64                       `json:"totalExpense"`
	FutureSchedules []FinancialScheduleResponse `json:"futureSchedules"`
}

// DailyAmountResponse holds the sums of one day
type DailyAmountResponse struct {
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// TransactionDetailResponse is a compact transaction line
type TransactionDetailResponse struct {
	Date   string `json:"date"`
	Vendor string `json:"vendor"`
	Amount int64  `json:"amount"`
}

// MonthlyAnalysisResponse is the spending analysis of the current month
type MonthlyAnalysisResponse struct {
	CurrentMonthTotal     int64                       `json:"currentMonthTotal"`
	CurrentMonthAverage   float64                     `json:"currentMonthAverage"`
	PreviousMonthTotal    int64                       `json:"previousMonthTotal"`
	TwoMonthsAgoTotal     int64                       `json:"twoMonthsAgoTotal"`
	Transactions          []TransactionDetailResponse `json:"transactions"`
	HabitScore            int                         `json:"habitScore"`
	HabitScoreChange      int                         `json:"habitScoreChange"`
	HabitFeedbackMessages []string                    `json:"habitFeedbackMessages"`
}

// ToBudgetEntries converts request items into domain entries
func ToBudgetEntries(requests []BudgetRequest) []entity.BudgetEntry {
	entries := make([]entity.BudgetEntry, 0, len(requests))
	for _, r := range requests {
		entries = append(entries, entity.BudgetEntry{CategoryType: r.CategoryType, Amount: r.Amount})
	}
	return entries
}

// NewCategoryBudgetResponses maps stored budgets
func NewCategoryBudgetResponses(budgets []entity.CategoryBudget) []CategoryBudgetResponse {
	out := make([]CategoryBudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, CategoryBudgetResponse{CategoryType: string(b.CategoryType), Amount: b.Amount})
	}
	return out
}

// NewBudgetSummaryResponse flattens a budget summary
func NewBudgetSummaryResponse(s *entity.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Total:         s.Current.Total,
		Spent:         s.Current.Spent,
		Remaining:     s.Current.Remaining,
		Exceeded:      s.Current.Exceeded,
		PrevTotal:     s.Previous.Total,
		PrevSpent:     s.Previous.Spent,
		PrevRemaining: s.Previous.Remaining,
		PrevExceeded:  s.Previous.Exceeded,
	}
}

// NewMainSummaryResponse maps the main summary
func NewMainSummaryResponse(s *entity.MainSummary) MainSummaryResponse {
	schedules := make([]FinancialScheduleResponse, 0, len(s.FutureSchedules))
	for _, f := range s.FutureSchedules {
		schedules = append(schedules, FinancialScheduleResponse{
			TransactionID:   f.TransactionID,
			Date:            f.Date.Format(entity.DateLayout),
			PartnerName:     f.PartnerName,
			Amount:          f.Amount,
			TransactionType: string(f.TransactionType),
		})
	}

	return MainSummaryResponse{
		TotalBudget:     s.TotalBudget,
		TotalIncome:     s.TotalIncome,
		TotalExpense:    s.TotalExpense,
		FutureSchedules: schedules,
	}
}

// NewDailyAmountResponses maps per-day sums
func NewDailyAmountResponses(days []entity.DailyAmount) []DailyAmountResponse {
	out := make([]DailyAmountResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DailyAmountResponse{
			Date:    d.Date.Format(entity.DateLayout),
			Income:  d.Income,
			Expense: d.Expense,
		})
	}
	return out
}

// NewMonthlyAnalysisResponse maps the monthly analysis
func NewMonthlyAnalysisResponse(a *entity.MonthlyAnalysis) MonthlyAnalysisResponse {
	lines := make([]TransactionDetailResponse, 0, len(a.Transactions))
	for _, t := range a.Transactions {
		lines = append(lines, TransactionDetailResponse{
			Date:   t.Date.Format(entity.DateLayout),
			Vendor: t.Vendor,
			Amount: t.Amount,
		})
	}

	feedback := a.Habit.Feedback
	if feedback == nil {
		feedback = []string{}
	}

	return MonthlyAnalysisResponse{
		CurrentMonthTotal:     a.CurrentMonthTotal,
		CurrentMonthAverage:   a.CurrentMonthAverage,
		PreviousMonthTotal:    a.PreviousMonthTotal,
		TwoMonthsAgoTotal:     a.TwoMonthsAgoTotal,
		Transactions:          lines,
		HabitScore:            a.Habit.Score,
		HabitScoreChange:      a.Habit.Change(),
		HabitFeedbackMessages: feedback,
	}
}
