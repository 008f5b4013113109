package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

func TestAllCategoryTypes(t *testing.T) {
	types := AllCategoryTypes()

	require.Len(t, types, 8)
	assert.Equal(t, CategoryFoodDining, types[0])
	assert.Equal(t, CategoryFinanceOthers, types[7])

	seen := make(map[CategoryType]bool)
	for _, categoryType := range types {
		assert.False(t, seen[categoryType], "duplicate type %s", categoryType)
		seen[categoryType] = true
		assert.NotEmpty(t, categoryType.DisplayName())
		assert.NotEmpty(t, categoryType.EnglishName())
	}
}

func TestParseCategoryType(t *testing.T) {
	t.Run("Case insensitive", func(t *testing.T) {
		categoryType, err := ParseCategoryType("food_dining")

		require.NoError(t, err)
		assert.Equal(t, CategoryFoodDining, categoryType)
		assert.Equal(t, "식료품/외식", categoryType.DisplayName())
		assert.Equal(t, "Food & Dining", categoryType.EnglishName())
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := ParseCategoryType("PETS")

		assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
		var categoryErr *errs.InvalidCategoryError
		require.True(t, errors.As(err, &categoryErr))
		assert.Equal(t, "PETS", categoryErr.CategoryType)
	})
}

func TestNewCategory(t *testing.T) {
	category, err := NewCategory(CategoryEducation)

	require.NoError(t, err)
	assert.Equal(t, CategoryEducation, category.Type)
	assert.Equal(t, "교육/자기개발", category.DisplayName)

	_, err = NewCategory("UNKNOWN")
	assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
}
