package entity

import (
	"strings"

	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

// CategoryType is the stable identifier of a spending category
type CategoryType string

// Category types
const (
	CategoryFoodDining       CategoryType = "FOOD_DINING"
	CategoryHousingUtilities CategoryType = "HOUSING_UTILITIES"
	CategoryTransportation   CategoryType = "TRANSPORTATION"
	CategoryShoppingFashion  CategoryType = "SHOPPING_FASHION"
	CategoryHealthMedical    CategoryType = "HEALTH_MEDICAL"
	CategoryEducation        CategoryType = "EDUCATION"
	CategoryLeisureCulture   CategoryType = "LEISURE_CULTURE"
	CategoryFinanceOthers    CategoryType = "FINANCE_OTHERS"
)

// UnknownCategoryDisplayName is shown for transactions whose category id resolves to nothing
const UnknownCategoryDisplayName = "알 수 없는 카테고리"

type categoryNames struct {
	korean  string
	english string
}

// categoryCatalog is ordered the way categories are seeded
var categoryCatalog = []struct {
	categoryType CategoryType
	names        categoryNames
}{
	{CategoryFoodDining, categoryNames{"식료품/외식", "Food & Dining"}},
	{CategoryHousingUtilities, categoryNames{"주거/공과금", "Housing & Utilities"}},
	{CategoryTransportation, categoryNames{"교통/차량", "Transportation"}},
	{CategoryShoppingFashion, categoryNames{"쇼핑/패션", "Shopping & Fashion"}},
	{CategoryHealthMedical, categoryNames{"건강/의료", "Health & Medical"}},
	{CategoryEducation, categoryNames{"교육/자기개발", "Education"}},
	{CategoryLeisureCulture, categoryNames{"여가/문화", "Leisure & Culture"}},
	{CategoryFinanceOthers, categoryNames{"금융/기타", "Finance & Others"}},
}

// AllCategoryTypes returns every category type in seeding order
func AllCategoryTypes() []CategoryType {
	types := make([]CategoryType, 0, len(categoryCatalog))
	for _, c := range categoryCatalog {
		types = append(types, c.categoryType)
	}
	return types
}

func (t CategoryType) lookup() (categoryNames, bool) {
	for _, c := range categoryCatalog {
		if c.categoryType == t {
			return c.names, true
		}
	}
	return categoryNames{}, false
}

// IsValid reports whether t is one of the fixed category types
func (t CategoryType) IsValid() bool {
	_, ok := t.lookup()
	return ok
}

// DisplayName returns the Korean display name stored with the category
func (t CategoryType) DisplayName() string {
	names, _ := t.lookup()
	return names.korean
}

// EnglishName returns the English display name
func (t CategoryType) EnglishName() string {
	names, _ := t.lookup()
	return names.english
}

// ParseCategoryType resolves a client supplied type name
func ParseCategoryType(value string) (CategoryType, error) {
	t := CategoryType(strings.ToUpper(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", errs.NewInvalidCategoryError(value)
	}
	return t, nil
}

// Category is a stored spending category
type Category struct {
	ID          uint64
	Type        CategoryType
	DisplayName string
}

// NewCategory creates a category carrying its default display name
func NewCategory(t CategoryType) (*Category, error) {
	if !t.IsValid() {
		return nil, errs.NewInvalidCategoryError(string(t))
	}
	return &Category{
		Type:        t,
		DisplayName: t.DisplayName(),
	}, nil
}
