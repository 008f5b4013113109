package repository_test

import (
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

func (s *RepositorySuite) TestCategoryCreateAndList() {
	for _, t := range entity.AllCategoryTypes() {
		s.createCategory(t)
	}

	categories, err := s.categories.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 8)
	for i, t := range entity.AllCategoryTypes() {
		s.Equal(t, categories[i].Type)
		s.Equal(t.DisplayName(), categories[i].DisplayName)
	}
}

func (s *RepositorySuite) TestCategoryTypeIsUnique() {
	s.createCategory(entity.CategoryEducation)

	again, err := entity.NewCategory(entity.CategoryEducation)
	s.Require().NoError(err)

	s.ErrorIs(s.categories.Create(s.ctx, again), errs.ErrDuplicateCategory)
}

func (s *RepositorySuite) TestCategoryLookup() {
	created := s.createCategory(entity.CategoryTransportation)

	byType, err := s.categories.GetByType(s.ctx, entity.CategoryTransportation)
	s.Require().NoError(err)
	s.Equal(created.ID, byType.ID)

	byID, err := s.categories.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(entity.CategoryTransportation, byID.Type)

	_, err = s.categories.GetByType(s.ctx, entity.CategoryHealthMedical)
	s.ErrorIs(err, errs.ErrCategoryNotFound)

	_, err = s.categories.GetByID(s.ctx, 404)
	s.ErrorIs(err, errs.ErrCategoryNotFound)
}
