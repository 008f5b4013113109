package category

import (
	"context"
	"errors"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/persistence"
)

// CategoryUseCase handles the category registry
type CategoryUseCase struct {
	categoryRepo persistence.CategoryRepository
	logger       coreport.Logger
}

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(
	categoryRepo persistence.CategoryRepository,
	logger coreport.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns all categories ordered by ID
func (u *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return u.categoryRepo.List(ctx)
}

// GetCategoryByType looks a category up by its type name
func (u *CategoryUseCase) GetCategoryByType(ctx context.Context, categoryType string) (*entity.Category, error) {
	t, err := entity.ParseCategoryType(categoryType)
	if err != nil {
		return nil, err
	}
	return u.categoryRepo.GetByType(ctx, t)
}

// ResolveDisplayName returns the display name of a category ID.
// Unknown IDs resolve to the fallback label instead of failing.
func (u *CategoryUseCase) ResolveDisplayName(ctx context.Context, categoryID uint64) (string, error) {
	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return entity.UnknownCategoryDisplayName, nil
		}
		return "", err
	}
	return category.DisplayName, nil
}

// SeedCategories inserts each fixed category type that is not stored yet.
// Running it again, or concurrently, never produces a second row for a type:
// the unique index on the type rejects the insert and that counts as present.
func (u *CategoryUseCase) SeedCategories(ctx context.Context) (int, error) {
	inserted := 0

	for _, categoryType := range entity.AllCategoryTypes() {
		_, err := u.categoryRepo.GetByType(ctx, categoryType)
		if err == nil {
			continue
		}
		if !errs.IsNotFoundError(err) {
			return inserted, err
		}

		category, err := entity.NewCategory(categoryType)
		if err != nil {
			return inserted, err
		}

		if err := u.categoryRepo.Create(ctx, category); err != nil {
			if errors.Is(err, errs.ErrDuplicateCategory) {
				u.logger.Debug("Category inserted concurrently", map[string]any{
					"category_type": categoryType,
				})
				continue
			}
			u.logger.Error("Failed to seed category", coreport.ErrorFields(err, map[string]any{
				"category_type": categoryType,
			}))
			return inserted, err
		}
		inserted++
	}

	u.logger.Info("Categories seeded or verified", map[string]any{
		"inserted": inserted,
	})
	return inserted, nil
}
