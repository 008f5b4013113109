package usecase

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// CategoryUseCase defines read access to the category registry and its seeding
type CategoryUseCase interface {
	// ListCategories returns every stored category ordered by ID
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategoryByType looks a category up by its type name
	GetCategoryByType(ctx context.Context, categoryType string) (*entity.Category, error)

	// SeedCategories inserts every missing category type and returns how many were inserted
	SeedCategories(ctx context.Context) (int, error)
}
