package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDefinition struct {
	name string
	sql  string
}

var postgresIndexes = []indexDefinition{
	{
		// monthly expense sums and the analysis screen
		name: "idx_transactions_expense_user_date",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_expense_user_date
			ON transactions (user_id, transaction_date)
			WHERE type = 'EXPENSE'`,
	},
	{
		name: "idx_transactions_income_user_date",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_income_user_date
			ON transactions (user_id, transaction_date)
			WHERE type = 'INCOME'`,
	},
	{
		name: "idx_transactions_date_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_date_brin
			ON transactions USING BRIN (transaction_date)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range postgresIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// ApplyPerformanceTweaks applies storage settings. Failures are logged, not returned.
func (m *AdvancedIndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	tweaks := map[string]string{
		"transactions fillfactor": `ALTER TABLE transactions SET (fillfactor = 90)`,
		"budgets fillfactor":      `ALTER TABLE budgets SET (fillfactor = 80)`,
		"user_id statistics":      `ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
	}

	for name, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": name,
				"error": err.Error(),
			})
		}
	}
}
