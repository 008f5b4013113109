package transaction

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/persistence"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// Service is the transaction store. Reads go straight to the repositories,
// mutations of existing rows run inside a unit of work so the ownership check
// and the write see the same row.
type Service struct {
	uow             persistence.UnitOfWork
	transactionRepo persistence.TransactionRepository
	userRepo        persistence.UserRepository
	categoryRepo    persistence.CategoryRepository
	validator       *TransactionValidator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	transactionRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	categoryRepo persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:             uow,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		validator:       NewTransactionValidator(),
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ListTransactions returns the caller's transactions, optionally filtered by type
func (s *Service) ListTransactions(ctx context.Context, userID uint64, typeFilter string) ([]usecase.TransactionView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByUser(ctx, userID, parseTypeFilter(typeFilter))
	if err != nil {
		return nil, err
	}

	return s.toViews(ctx, user, transactions)
}

// ListTransactionsByCategory returns the caller's transactions in one category
func (s *Service) ListTransactionsByCategory(ctx context.Context, userID uint64, categoryID uint64) ([]usecase.TransactionView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	return s.toViews(ctx, user, transactions)
}

// CreateTransaction records a new transaction for the caller
func (s *Service) CreateTransaction(ctx context.Context, userID uint64, input usecase.TransactionInput) (*usecase.TransactionView, error) {
	details, err := s.validator.ValidateInput(userID, input)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(userID, details, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", coreport.ErrorFields(err, map[string]any{
			"user_id": userID,
		}))
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"amount":         transaction.Amount,
	})

	return s.toView(ctx, user, transaction)
}

// UpdateTransaction replaces the content of a transaction owned by the caller
func (s *Service) UpdateTransaction(ctx context.Context, userID uint64, transactionID uint64, input usecase.TransactionInput) (*usecase.TransactionView, error) {
	details, err := s.validator.ValidateInput(userID, input)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	err = persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		transaction, err := s.loadOwned(txCtx, repo, userID, transactionID)
		if err != nil {
			return err
		}

		if err := transaction.Apply(details, s.timeProvider); err != nil {
			return err
		}

		if err := repo.Update(txCtx, transaction); err != nil {
			return err
		}
		updated = transaction
		return nil
	})
	if err != nil {
		s.logFailure("update", userID, transactionID, err)
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	return s.toView(ctx, user, updated)
}

// DeleteTransaction removes a transaction owned by the caller
func (s *Service) DeleteTransaction(ctx context.Context, userID uint64, transactionID uint64) error {
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		if _, err := s.loadOwned(txCtx, repo, userID, transactionID); err != nil {
			return err
		}

		return repo.Delete(txCtx, transactionID)
	})
	if err != nil {
		s.logFailure("delete", userID, transactionID, err)
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})
	return nil
}

// loadOwned fetches a transaction and verifies the caller owns it
func (s *Service) loadOwned(
	ctx context.Context,
	repo persistence.TransactionRepository,
	userID uint64,
	transactionID uint64,
) (*entity.Transaction, error) {
	transaction, err := repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !transaction.IsOwnedBy(userID) {
		return nil, errs.NewOwnershipError(transactionID, transaction.UserID, userID)
	}

	return transaction, nil
}

func (s *Service) logFailure(operation string, userID, transactionID uint64, err error) {
	fields := coreport.ErrorFields(err, map[string]any{
		"operation":      operation,
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	switch {
	case errs.IsUnauthorizedError(err):
		s.logger.Warn("Transaction ownership violation", fields)
	case errs.IsNotFoundError(err), errs.IsInvalidArgumentError(err):
		s.logger.Debug("Transaction mutation rejected", fields)
	default:
		s.logger.Error("Transaction mutation failed", fields)
	}
}
