package repository_test

import (
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

func (s *RepositorySuite) TestTransactionCreateAndGet() {
	user := s.createUser("u1")
	food := s.createCategory(entity.CategoryFoodDining)

	created := s.createTransaction(user.ID, food.ID, entity.TransactionExpense, 12000, date(2024, 3, 10))
	s.NotZero(created.ID)

	loaded, err := s.transactions.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(user.ID, loaded.UserID)
	s.Equal(entity.TransactionExpense, loaded.Type)
	s.Equal(int64(12000), loaded.Amount)
	s.Equal(entity.PaymentCard, loaded.PaymentMethod)
	s.True(date(2024, 3, 10).Equal(loaded.TransactionDate))

	_, err = s.transactions.GetByID(s.ctx, 9999)
	s.ErrorIs(err, errs.ErrTransactionNotFound)
}

func (s *RepositorySuite) TestTransactionUpdateWritesZeroValues() {
	user := s.createUser("u1")
	transaction := s.createTransaction(user.ID, 1, entity.TransactionExpense, 5000, date(2024, 3, 1))

	err := transaction.Apply(entity.TransactionDetails{
		Type:            entity.TransactionIncome,
		CategoryID:      2,
		PaymentMethod:   entity.PaymentCash,
		Amount:          0,
		Memo:            "",
		TransactionDate: date(2024, 3, 2),
	}, s.timeProvider)
	s.Require().NoError(err)
	s.Require().NoError(s.transactions.Update(s.ctx, transaction))

	reloaded, err := s.transactions.GetByID(s.ctx, transaction.ID)
	s.Require().NoError(err)
	s.Equal(entity.TransactionIncome, reloaded.Type)
	s.Equal(uint64(2), reloaded.CategoryID)
	s.Equal(int64(0), reloaded.Amount)
	s.Equal("", reloaded.Vendor)
	s.True(date(2024, 3, 2).Equal(reloaded.TransactionDate))

	ghost := &entity.Transaction{ID: 777}
	s.ErrorIs(s.transactions.Update(s.ctx, ghost), errs.ErrTransactionNotFound)
}

func (s *RepositorySuite) TestTransactionDelete() {
	user := s.createUser("u1")
	transaction := s.createTransaction(user.ID, 1, entity.TransactionExpense, 5000, date(2024, 3, 1))

	s.Require().NoError(s.transactions.Delete(s.ctx, transaction.ID))

	_, err := s.transactions.GetByID(s.ctx, transaction.ID)
	s.ErrorIs(err, errs.ErrTransactionNotFound)
	s.ErrorIs(s.transactions.Delete(s.ctx, transaction.ID), errs.ErrTransactionNotFound)
}

func (s *RepositorySuite) TestTransactionListOrdering() {
	owner := s.createUser("owner")
	other := s.createUser("other")

	older := s.createTransaction(owner.ID, 1, entity.TransactionExpense, 100, date(2024, 3, 1))
	newer := s.createTransaction(owner.ID, 2, entity.TransactionIncome, 200, date(2024, 3, 5))
	sameDay := s.createTransaction(owner.ID, 1, entity.TransactionExpense, 300, date(2024, 3, 5))
	s.createTransaction(other.ID, 1, entity.TransactionExpense, 999, date(2024, 3, 3))

	all, err := s.transactions.ListByUser(s.ctx, owner.ID, "")
	s.Require().NoError(err)
	s.Equal([]uint64{sameDay.ID, newer.ID, older.ID}, ids(all))

	expenses, err := s.transactions.ListByUser(s.ctx, owner.ID, entity.TransactionExpense)
	s.Require().NoError(err)
	s.Equal([]uint64{sameDay.ID, older.ID}, ids(expenses))

	byCategory, err := s.transactions.ListByUserAndCategory(s.ctx, owner.ID, 1)
	s.Require().NoError(err)
	s.Equal([]uint64{sameDay.ID, older.ID}, ids(byCategory))

	inRange, err := s.transactions.ListByUserInRange(s.ctx, owner.ID, entity.DateRange{
		From: date(2024, 3, 2),
		To:   date(2024, 3, 31),
	})
	s.Require().NoError(err)
	s.Equal([]uint64{newer.ID, sameDay.ID}, ids(inRange))
}

func (s *RepositorySuite) TestTransactionSumByTypeInRange() {
	user := s.createUser("u1")
	s.createTransaction(user.ID, 1, entity.TransactionExpense, 1000, date(2024, 2, 29))
	s.createTransaction(user.ID, 1, entity.TransactionExpense, 2000, date(2024, 3, 1))
	s.createTransaction(user.ID, 1, entity.TransactionExpense, 3000, date(2024, 3, 31))
	s.createTransaction(user.ID, 1, entity.TransactionIncome, 50000, date(2024, 3, 10))
	s.createTransaction(user.ID, 1, entity.TransactionExpense, 4000, date(2024, 4, 1))

	march := entity.MonthRange(date(2024, 3, 15))

	spent, err := s.transactions.SumByTypeInRange(s.ctx, user.ID, entity.TransactionExpense, march)
	s.Require().NoError(err)
	s.Equal(int64(5000), spent)

	income, err := s.transactions.SumByTypeInRange(s.ctx, user.ID, entity.TransactionIncome, march)
	s.Require().NoError(err)
	s.Equal(int64(50000), income)

	empty, err := s.transactions.SumByTypeInRange(s.ctx, user.ID, entity.TransactionIncome, entity.MonthRange(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	s.Zero(empty)
}

func ids(transactions []*entity.Transaction) []uint64 {
	out := make([]uint64, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}
