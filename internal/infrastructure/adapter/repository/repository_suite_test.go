package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/database"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/logger"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/repository"
	timeadapter "github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/time"
)

type RepositorySuite struct {
	suite.Suite

	ctx          context.Context
	testDB       *database.TestDBManager
	timeProvider *timeadapter.FixedTimeProvider

	users        *repository.UserRepository
	categories   *repository.CategoryRepository
	transactions *repository.TransactionRepository
	budgets      *repository.BudgetRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.timeProvider = timeadapter.NewFixedTimeProvider(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	log := logger.NewNopLogger()

	s.testDB = database.NewTestDBManager(s.T(), log, s.timeProvider)
	db := s.testDB.DB()

	s.users = repository.NewUserRepository(db, log)
	s.categories = repository.NewCategoryRepository(db, log)
	s.transactions = repository.NewTransactionRepository(db, log)
	s.budgets = repository.NewBudgetRepository(db, log)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) createUser(socialID string) *entity.User {
	user, err := entity.NewUser(entity.SocialProfile{
		SocialID:   socialID,
		SocialType: entity.SocialKakao,
		Nickname:   "nick-" + socialID,
	}, s.timeProvider)
	s.Require().NoError(err)
	s.Require().NoError(s.users.Create(s.ctx, user))
	return user
}

func (s *RepositorySuite) createCategory(t entity.CategoryType) *entity.Category {
	category, err := entity.NewCategory(t)
	s.Require().NoError(err)
	s.Require().NoError(s.categories.Create(s.ctx, category))
	return category
}

func (s *RepositorySuite) createTransaction(userID, categoryID uint64, kind entity.TransactionType, amount int64, day time.Time) *entity.Transaction {
	transaction, err := entity.NewTransaction(userID, entity.TransactionDetails{
		Type:            kind,
		CategoryID:      categoryID,
		PaymentMethod:   entity.PaymentCard,
		Vendor:          "vendor",
		Amount:          amount,
		TransactionDate: day,
	}, s.timeProvider)
	s.Require().NoError(err)
	s.Require().NoError(s.transactions.Create(s.ctx, transaction))
	return transaction
}
