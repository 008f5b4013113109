package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts the budget or replaces the amount of the existing
// (user, category, month) row in one statement
func (r *BudgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	month := entity.MonthStart(budget.BudgetMonth)
	fields := map[string]any{
		"user_id":      budget.UserID,
		"category_id":  budget.CategoryID,
		"budget_month": month.Format(entity.DateLayout),
		"amount":       budget.Amount,
	}
	r.logger.Debug("Upserting budget", fields)

	budgetModel := model.Budget{
		UserID:      budget.UserID,
		CategoryID:  budget.CategoryID,
		BudgetMonth: month,
		Amount:      budget.Amount,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "category_id"},
			{Name: "budget_month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budgetModel)
	if result.Error != nil {
		fields["error"] = result.Error.Error()
		r.logger.Error("Failed to upsert budget", fields)
		return wrapDatabaseError(result.Error)
	}

	budget.ID = budgetModel.ID
	budget.BudgetMonth = month

	r.logger.Info("Budget saved", fields)
	return nil
}

// ListByUserAndMonth returns the month's budgets joined with their category types
func (r *BudgetRepository) ListByUserAndMonth(ctx context.Context, userID uint64, month time.Time) ([]entity.CategoryBudget, error) {
	var rows []model.CategoryBudgetRow
	err := r.db.WithContext(ctx).
		Table("budgets").
		Select("budgets.category_id AS category_id, categories.type AS category_type, budgets.amount AS amount").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ? AND budgets.budget_month = ?", userID, entity.MonthStart(month)).
		Order("budgets.category_id ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list budgets", map[string]any{
			"user_id": userID,
			"month":   entity.MonthStart(month).Format(entity.DateLayout),
			"error":   err.Error(),
		})
		return nil, wrapDatabaseError(err)
	}

	budgets := make([]entity.CategoryBudget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, entity.CategoryBudget{
			CategoryID:   row.CategoryID,
			CategoryType: entity.CategoryType(row.CategoryType),
			Amount:       row.Amount,
		})
	}
	return budgets, nil
}

// SumByUserAndMonth returns the month's total budget
func (r *BudgetRepository) SumByUserAndMonth(ctx context.Context, userID uint64, month time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Budget{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND budget_month = ?", userID, entity.MonthStart(month)).
		Scan(&total).Error
	if err != nil {
		r.logger.Error("Failed to sum budgets", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return 0, wrapDatabaseError(err)
	}
	return total, nil
}
