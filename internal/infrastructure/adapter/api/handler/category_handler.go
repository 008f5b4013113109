package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
)

// Korean first so it wins when nothing matches
var displayLanguages = language.NewMatcher([]language.Tag{language.Korean, language.English})

// CategoryHandler serves the category registry
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	english := prefersEnglish(c.GetHeader("Accept-Language"))
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.CategoryResponse{
			ID:          category.ID,
			Type:        string(category.Type),
			DisplayName: displayName(category, english),
		})
	}

	c.JSON(http.StatusOK, out)
}

func prefersEnglish(acceptLanguage string) bool {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return false
	}
	_, index, confidence := displayLanguages.Match(tags...)
	return index == 1 && confidence != language.No
}

func displayName(category *entity.Category, english bool) string {
	if english {
		if name := category.Type.EnglishName(); name != "" {
			return name
		}
	}
	return category.DisplayName
}
