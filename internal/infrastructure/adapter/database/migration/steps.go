package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// Step is one versioned schema change. Steps run in slice order and each
// version is recorded once it succeeds.
type Step struct {
	Version string
	Details string
	Run     func(ctx context.Context, db *gorm.DB) error
}

// Steps returns the built-in migrations in order
func Steps() []Step {
	return []Step{
		{
			Version: "1.0.0",
			Details: "base schema",
			Run: func(_ context.Context, db *gorm.DB) error {
				return db.AutoMigrate(
					&model.User{},
					&model.Category{},
					&model.Transaction{},
					&model.Budget{},
				)
			},
		},
		{
			Version: "1.1.0",
			Details: "transaction query indexes",
			Run:     createQueryIndexes,
		},
		{
			Version: "1.2.0",
			Details: "ensure transaction memo and vendor columns",
			Run: func(_ context.Context, db *gorm.DB) error {
				return ensureColumns(db, &model.Transaction{}, "Memo", "Vendor", "PaymentMethod")
			},
		},
	}
}

// createQueryIndexes creates indexes that work on every supported dialect
func createQueryIndexes(_ context.Context, db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions (user_id, category_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_month ON budgets (user_id, budget_month)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// ensureColumns adds any of the named fields whose column is missing.
// Databases created before a field existed pick it up here.
func ensureColumns(db *gorm.DB, dst any, fields ...string) error {
	migrator := db.Migrator()
	for _, field := range fields {
		if migrator.HasColumn(dst, field) {
			continue
		}
		if err := migrator.AddColumn(dst, field); err != nil {
			return fmt.Errorf("add column %s: %w", field, err)
		}
	}
	return nil
}
