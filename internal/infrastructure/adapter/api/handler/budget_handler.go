package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler serves budgets and the aggregations built on them
type BudgetHandler struct {
	budgetUseCase usecase.BudgetUseCase
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(
	budgetUseCase usecase.BudgetUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BudgetHandler {
	return &BudgetHandler{
		budgetUseCase: budgetUseCase,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// SetBudget handles POST /api/budgets?date=
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	date, err := dateQuery(c, h.timeProvider)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req []dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.budgetUseCase.SetBudget(c.Request.Context(), userID, date, dto.ToBudgetEntries(req)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

// GetBudget handles GET /api/budgets?date=
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	date, err := dateQuery(c, h.timeProvider)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	budgets, err := h.budgetUseCase.GetBudget(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryBudgetResponses(budgets))
}

type amountFunc func(ctx context.Context, userID uint64, date time.Time) (int64, error)

// amount serves the single integer endpoints
func (h *BudgetHandler) amount(fn func(usecase.BudgetUseCase) amountFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := callerID(c)
		if !ok {
			return
		}

		date, err := dateQuery(c, h.timeProvider)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		value, err := fn(h.budgetUseCase)(c.Request.Context(), userID, date)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, value)
	}
}

// TotalBudget handles GET /api/budgets/total
func (h *BudgetHandler) TotalBudget() gin.HandlerFunc {
	return h.amount(func(u usecase.BudgetUseCase) amountFunc { return u.TotalBudget })
}

// TotalExpense handles GET /api/budgets/spent
func (h *BudgetHandler) TotalExpense() gin.HandlerFunc {
	return h.amount(func(u usecase.BudgetUseCase) amountFunc { return u.TotalExpense })
}

// TotalIncome handles GET /api/budgets/income
func (h *BudgetHandler) TotalIncome() gin.HandlerFunc {
	return h.amount(func(u usecase.BudgetUseCase) amountFunc { return u.TotalIncome })
}

// RemainingBudget handles GET /api/budgets/remaining
func (h *BudgetHandler) RemainingBudget() gin.HandlerFunc {
	return h.amount(func(u usecase.BudgetUseCase) amountFunc { return u.RemainingBudget })
}

// ExceededBudget handles GET /api/budgets/exceeded
func (h *BudgetHandler) ExceededBudget() gin.HandlerFunc {
	return h.amount(func(u usecase.BudgetUseCase) amountFunc { return u.ExceededBudget })
}

// BudgetSummary handles GET /api/budgets/summary?date=
func (h *BudgetHandler) BudgetSummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	date, err := dateQuery(c, h.timeProvider)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	summary, err := h.budgetUseCase.BudgetSummary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetSummaryResponse(summary))
}

// MainSummary handles GET /api/budgets/main/summary
func (h *BudgetHandler) MainSummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	summary, err := h.budgetUseCase.MainSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMainSummaryResponse(summary))
}

// DailyAmounts handles GET /api/budgets/main/daily-amounts?date=
func (h *BudgetHandler) DailyAmounts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	date, err := dateQuery(c, h.timeProvider)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	days, err := h.budgetUseCase.DailyAmounts(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDailyAmountResponses(days))
}

// MonthlyAnalysis handles GET /api/budgets/analysis/monthly
func (h *BudgetHandler) MonthlyAnalysis(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	analysis, err := h.budgetUseCase.MonthlyAnalysis(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMonthlyAnalysisResponse(analysis))
}
