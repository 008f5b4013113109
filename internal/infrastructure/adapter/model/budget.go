package model

import (
	"time"
)

// Budget represents the database model for monthly category budgets
type Budget struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_budgets_user_category_month,priority:1"`
	CategoryID  uint64    `gorm:"not null;uniqueIndex:idx_budgets_user_category_month,priority:2"`
	BudgetMonth time.Time `gorm:"type:date;not null;uniqueIndex:idx_budgets_user_category_month,priority:3"`
	Amount      int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}

// CategoryBudgetRow is the result row of budgets joined with categories
type CategoryBudgetRow struct {
	CategoryID   uint64
	CategoryType string
	Amount       int64
}
