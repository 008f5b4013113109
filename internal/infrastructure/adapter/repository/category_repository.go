package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

// CategoryRepository implements CategoryRepository interface using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func categoryModelToEntity(m *model.Category) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Type:        entity.CategoryType(m.Type),
		DisplayName: m.DisplayName,
	}
}

func (r *CategoryRepository) first(ctx context.Context, query any, args ...any) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).Where(query, args...).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		r.logger.Error("Failed to get category", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, wrapDatabaseError(result.Error)
	}
	return categoryModelToEntity(&categoryModel), nil
}

// List returns all categories ordered by ID
func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.Category
	result := r.db.WithContext(ctx).Order("id ASC").Find(&categoryModels)
	if result.Error != nil {
		r.logger.Error("Failed to list categories", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, wrapDatabaseError(result.Error)
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryModelToEntity(&categoryModels[i]))
	}
	return categories, nil
}

// GetByID retrieves a category by storage ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*entity.Category, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByType retrieves a category by its type
func (r *CategoryRepository) GetByType(ctx context.Context, categoryType entity.CategoryType) (*entity.Category, error) {
	return r.first(ctx, "type = ?", string(categoryType))
}

// Create inserts a category
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{
		Type:        string(category.Type),
		DisplayName: category.DisplayName,
	}

	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateCategory
		}
		r.logger.Error("Failed to create category", map[string]any{
			"category_type": category.Type,
			"error":         result.Error.Error(),
		})
		return wrapDatabaseError(result.Error)
	}

	category.ID = categoryModel.ID

	r.logger.Info("Category created", map[string]any{
		"category_id":   category.ID,
		"category_type": category.Type,
	})
	return nil
}
