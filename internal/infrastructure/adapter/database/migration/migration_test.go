package migration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database/migration"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
)

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()
	clock := timeadapter.NewFixedTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	log := logger.NewNopLogger()

	t.Run("should record every step and create the schema", func(t *testing.T) {
		// Arrange
		testDB := database.NewTestDBManager(t, log, clock)
		db := testDB.DB()

		// Assert
		var versions []model.MigrationVersion
		require.NoError(t, db.Order("id").Find(&versions).Error)
		require.Len(t, versions, len(migration.Steps()))
		for i, step := range migration.Steps() {
			assert.Equal(t, step.Version, versions[i].Version)
		}

		for _, table := range []string{"users", "categories", "transactions", "budgets"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
		assert.True(t, db.Migrator().HasIndex(&model.Budget{}, "idx_budgets_user_category_month"))
		assert.True(t, db.Migrator().HasIndex(&model.Transaction{}, "idx_transactions_user_date"))

		current, err := migration.NewMigrationManager(db, log, clock).GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion(), current)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		// Arrange
		testDB := database.NewTestDBManager(t, log, clock)

		// Act
		err := migration.NewMigrationManager(testDB.DB(), log, clock).MigrateAll(ctx)

		// Assert
		require.NoError(t, err)
		var count int64
		require.NoError(t, testDB.DB().Model(&model.MigrationVersion{}).Count(&count).Error)
		assert.Equal(t, int64(len(migration.Steps())), count)
	})
}

type seederFunc func(ctx context.Context) (int, error)

func (f seederFunc) SeedCategories(ctx context.Context) (int, error) {
	return f(ctx)
}

func TestSeedCategories(t *testing.T) {
	log := logger.NewNopLogger()

	t.Run("should pass through the seeder result", func(t *testing.T) {
		called := false
		err := migration.SeedCategories(context.Background(), seederFunc(func(context.Context) (int, error) {
			called = true
			return 8, nil
		}), log)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return the seeder error", func(t *testing.T) {
		err := migration.SeedCategories(context.Background(), seederFunc(func(context.Context) (int, error) {
			return 0, assert.AnError
		}), log)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
