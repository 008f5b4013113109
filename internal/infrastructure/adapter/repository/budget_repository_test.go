package repository_test

import (
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
)

func (s *RepositorySuite) newBudget(userID, categoryID uint64, amount int64, day int) *entity.Budget {
	budget, err := entity.NewBudget(userID, categoryID, amount, date(2024, 3, day), s.timeProvider)
	s.Require().NoError(err)
	return budget
}

func (s *RepositorySuite) TestBudgetUpsertReplacesAmount() {
	user := s.createUser("u1")
	food := s.createCategory(entity.CategoryFoodDining)

	s.Require().NoError(s.budgets.Upsert(s.ctx, s.newBudget(user.ID, food.ID, 300000, 1)))
	// any day of the month addresses the same row
	s.Require().NoError(s.budgets.Upsert(s.ctx, s.newBudget(user.ID, food.ID, 250000, 20)))

	listed, err := s.budgets.ListByUserAndMonth(s.ctx, user.ID, date(2024, 3, 9))
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(entity.CategoryFoodDining, listed[0].CategoryType)
	s.Equal(int64(250000), listed[0].Amount)

	var rows int64
	s.Require().NoError(s.testDB.DB().Table("budgets").Count(&rows).Error)
	s.Equal(int64(1), rows)
}

func (s *RepositorySuite) TestBudgetListAndSumByMonth() {
	user := s.createUser("u1")
	other := s.createUser("u2")
	food := s.createCategory(entity.CategoryFoodDining)
	housing := s.createCategory(entity.CategoryHousingUtilities)

	s.Require().NoError(s.budgets.Upsert(s.ctx, s.newBudget(user.ID, housing.ID, 500000, 1)))
	s.Require().NoError(s.budgets.Upsert(s.ctx, s.newBudget(user.ID, food.ID, 300000, 1)))
	s.Require().NoError(s.budgets.Upsert(s.ctx, s.newBudget(other.ID, food.ID, 1, 1)))

	aprilBudget, err := entity.NewBudget(user.ID, food.ID, 999, date(2024, 4, 1), s.timeProvider)
	s.Require().NoError(err)
	s.Require().NoError(s.budgets.Upsert(s.ctx, aprilBudget))

	listed, err := s.budgets.ListByUserAndMonth(s.ctx, user.ID, date(2024, 3, 31))
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(food.ID, listed[0].CategoryID)
	s.Equal(housing.ID, listed[1].CategoryID)

	total, err := s.budgets.SumByUserAndMonth(s.ctx, user.ID, date(2024, 3, 1))
	s.Require().NoError(err)
	s.Equal(int64(800000), total)

	none, err := s.budgets.SumByUserAndMonth(s.ctx, user.ID, date(2024, 5, 1))
	s.Require().NoError(err)
	s.Zero(none)
}
