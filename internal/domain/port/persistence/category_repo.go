package persistence

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

// CategoryRepository defines access to the category registry
type CategoryRepository interface {
	// List returns all categories ordered by ID ascending
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.Category, error)

	// GetByID retrieves a category by its storage ID
	//
	// Possible errors:
	// - ErrCategoryNotFound: If no category has this ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Category, error)

	// GetByType retrieves a category by its stable type
	//
	// Possible errors:
	// - ErrCategoryNotFound: If the type has not been seeded
	// - ErrDatabaseConnection: If database connection fails
	GetByType(ctx context.Context, categoryType entity.CategoryType) (*entity.Category, error)

	// Create inserts a category and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateCategory: If the type already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, category *entity.Category) error
}
