package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coremocks "github.com/yozi-budget/yozi-backend/mocks/port/core"
	persistencemocks "github.com/yozi-budget/yozi-backend/mocks/port/persistence"
)

type serviceFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	txRepo       *persistencemocks.MockTransactionRepository
	userRepo     *persistencemocks.MockUserRepository
	categoryRepo *persistencemocks.MockCategoryRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      *Service
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newServiceFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		txRepo:       persistencemocks.NewMockTransactionRepository(t),
		userRepo:     persistencemocks.NewMockUserRepository(t),
		categoryRepo: persistencemocks.NewMockCategoryRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.service = NewTransactionService(f.uow, f.txRepo, f.userRepo, f.categoryRepo, f.timeProvider, f.logger)
	return f
}

func (f *serviceFixture) expectUser(id uint64, nickname string) {
	f.userRepo.EXPECT().GetByID(mock.Anything, id).
		Return(&entity.User{ID: id, Nickname: nickname, SocialID: "s", SocialType: entity.SocialKakao}, nil)
}

func (f *serviceFixture) expectCategories() {
	f.categoryRepo.EXPECT().List(mock.Anything).Return([]*entity.Category{
		{ID: 1, Type: entity.CategoryFoodDining, DisplayName: "식료품/외식"},
		{ID: 2, Type: entity.CategoryHousingUtilities, DisplayName: "주거/공과금"},
	}, nil).Maybe()
}

func (f *serviceFixture) expectUnitOfWork(commit bool) {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
	if commit {
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	}
}

func storedTransaction(id, owner uint64) *entity.Transaction {
	return &entity.Transaction{
		ID:              id,
		UserID:          owner,
		Type:            entity.TransactionExpense,
		CategoryID:      1,
		PaymentMethod:   entity.PaymentCard,
		Vendor:          "Market",
		Amount:          12000,
		TransactionDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and return the view with category name", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 7 && tx.Amount == 12000 && tx.CreatedAt.Equal(fixedNow)
		})).RunAndReturn(func(_ context.Context, tx *entity.Transaction) error {
			tx.ID = 31
			return nil
		}).Once()

		// Act
		view, err := f.service.CreateTransaction(ctx, 7, validInput())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(31), view.ID)
		assert.Equal(t, "yozi", view.UserNickname)
		assert.Equal(t, "식료품/외식", view.CategoryDisplayName)
		assert.Equal(t, "Market", view.Vendor)
	})

	t.Run("should fall back for an unknown category id", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		input := validInput()
		input.CategoryID = 404

		// Act
		view, err := f.service.CreateTransaction(ctx, 7, input)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.UnknownCategoryDisplayName, view.CategoryDisplayName)
	})

	t.Run("should reject invalid input before touching storage", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		input := validInput()
		input.Amount = -1

		// Act
		view, err := f.service.CreateTransaction(ctx, 7, input)

		// Assert
		assert.Nil(t, view)
		assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
	})

	t.Run("should fail for an unknown user", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrUserNotFound).Once()

		// Act
		_, err := f.service.CreateTransaction(ctx, 7, validInput())

		// Assert
		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply new content for the owner", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.expectUnitOfWork(true)
		f.txRepo.EXPECT().GetByID(mock.Anything, uint64(31)).Return(storedTransaction(31, 7), nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.ID == 31 && tx.Type == entity.TransactionIncome && tx.Amount == 500
		})).Return(nil).Once()
		input := validInput()
		input.Type = "INCOME"
		input.Amount = 500
		input.CategoryID = 2

		// Act
		view, err := f.service.UpdateTransaction(ctx, 7, 31, input)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionIncome, view.Type)
		assert.Equal(t, "주거/공과금", view.CategoryDisplayName)
	})

	t.Run("should fail with Unauthorized for another user's transaction", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(8, "intruder")
		f.expectUnitOfWork(false)
		f.txRepo.EXPECT().GetByID(mock.Anything, uint64(31)).Return(storedTransaction(31, 7), nil).Once()

		// Act
		view, err := f.service.UpdateTransaction(ctx, 8, 31, validInput())

		// Assert
		assert.Nil(t, view)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
		f.txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should fail with NotFound for a missing transaction", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectUnitOfWork(false)
		f.txRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrTransactionNotFound).Once()

		// Act
		_, err := f.service.UpdateTransaction(ctx, 7, 99, validInput())

		// Assert
		assert.True(t, errors.Is(err, errs.ErrTransactionNotFound))
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete the owner's transaction", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUnitOfWork(true)
		f.txRepo.EXPECT().GetByID(mock.Anything, uint64(31)).Return(storedTransaction(31, 7), nil).Once()
		f.txRepo.EXPECT().Delete(mock.Anything, uint64(31)).Return(nil).Once()

		// Act
		err := f.service.DeleteTransaction(ctx, 7, 31)

		// Assert
		require.NoError(t, err)
	})

	t.Run("should leave the record intact when the caller is not the owner", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUnitOfWork(false)
		f.txRepo.EXPECT().GetByID(mock.Anything, uint64(31)).Return(storedTransaction(31, 7), nil).Once()

		// Act
		err := f.service.DeleteTransaction(ctx, 8, 31)

		// Assert
		require.Error(t, err)
		assert.True(t, errs.IsUnauthorizedError(err))
		var ownershipErr *errs.OwnershipError
		require.True(t, errors.As(err, &ownershipErr))
		assert.Equal(t, uint64(7), ownershipErr.OwnerID)
		assert.Equal(t, uint64(8), ownershipErr.CallerID)
		f.txRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("should pass the parsed type filter", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.txRepo.EXPECT().ListByUser(mock.Anything, uint64(7), entity.TransactionIncome).
			Return([]*entity.Transaction{storedTransaction(2, 7), storedTransaction(1, 7)}, nil).Once()

		// Act
		views, err := f.service.ListTransactions(ctx, 7, "income")

		// Assert
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, uint64(2), views[0].ID)
	})

	t.Run("should list everything for an unknown filter", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.txRepo.EXPECT().ListByUser(mock.Anything, uint64(7), entity.TransactionType("")).
			Return([]*entity.Transaction{}, nil).Once()

		// Act
		views, err := f.service.ListTransactions(ctx, 7, "everything")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("should list by category", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.expectUser(7, "yozi")
		f.expectCategories()
		f.txRepo.EXPECT().ListByUserAndCategory(mock.Anything, uint64(7), uint64(1)).
			Return([]*entity.Transaction{storedTransaction(5, 7)}, nil).Once()

		// Act
		views, err := f.service.ListTransactionsByCategory(ctx, 7, 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "식료품/외식", views[0].CategoryDisplayName)
	})
}
