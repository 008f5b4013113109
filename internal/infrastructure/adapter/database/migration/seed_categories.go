package migration

import (
	"context"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
)

// CategorySeeder inserts the fixed categories that are missing
type CategorySeeder interface {
	SeedCategories(ctx context.Context) (int, error)
}

// SeedCategories runs the seeder once at startup and logs what it inserted
func SeedCategories(ctx context.Context, seeder CategorySeeder, logger coreport.Logger) error {
	inserted, err := seeder.SeedCategories(ctx)
	if err != nil {
		logger.Error("Failed to seed categories", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Category registry ready", map[string]any{
		"inserted": inserted,
	})
	return nil
}
