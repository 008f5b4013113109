package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/model"
)

const (
	newestFirst = "transaction_date DESC, id DESC"
	oldestFirst = "transaction_date ASC, id ASC"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		Type:            string(transaction.Type),
		CategoryID:      transaction.CategoryID,
		PaymentMethod:   string(transaction.PaymentMethod),
		Vendor:          transaction.Vendor,
		Amount:          transaction.Amount,
		Memo:            transaction.Memo,
		TransactionDate: transaction.TransactionDate,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            entity.TransactionType(m.Type),
		CategoryID:      m.CategoryID,
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		Vendor:          m.Vendor,
		Amount:          m.Amount,
		Memo:            m.Memo,
		TransactionDate: entity.DateOf(m.TransactionDate),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *TransactionRepository) toEntities(models []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions
}

func (r *TransactionRepository) databaseError(operation string, err error, fields map[string]any) error {
	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error("Failed to "+operation, logFields)
	return wrapDatabaseError(err)
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"user_id": transaction.UserID,
		"type":    transaction.Type,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		return r.databaseError("create transaction", result.Error, map[string]any{
			"user_id": transaction.UserID,
		})
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// Update writes every editable field of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Updating transaction", map[string]any{
		"transaction_id": transaction.ID,
	})

	// map form so zero values (empty memo, zero amount) are written too
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"type":             string(transaction.Type),
			"category_id":      transaction.CategoryID,
			"payment_method":   string(transaction.PaymentMethod),
			"vendor":           transaction.Vendor,
			"amount":           transaction.Amount,
			"memo":             transaction.Memo,
			"transaction_date": transaction.TransactionDate,
			"updated_at":       transaction.UpdatedAt,
		})
	if result.Error != nil {
		return r.databaseError("update transaction", result.Error, map[string]any{
			"transaction_id": transaction.ID,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"transaction_id": transaction.ID,
		})
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction updated successfully", map[string]any{
		"transaction_id": transaction.ID,
	})
	return nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return r.databaseError("delete transaction", result.Error, map[string]any{
			"transaction_id": id,
		})
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
	})
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	r.logger.Debug("Getting transaction by ID", map[string]any{
		"transaction_id": id,
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).First(&transactionModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.databaseError("get transaction", result.Error, map[string]any{
			"transaction_id": id,
		})
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListByUser returns the user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, transactionType entity.TransactionType) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if transactionType != "" {
		query = query.Where("type = ?", string(transactionType))
	}

	var transactionModels []model.Transaction
	if err := query.Order(newestFirst).Find(&transactionModels).Error; err != nil {
		return nil, r.databaseError("list transactions", err, map[string]any{
			"user_id": userID,
			"type":    transactionType,
		})
	}

	return r.toEntities(transactionModels), nil
}

// ListByUserAndCategory returns the user's transactions in one category, newest first
func (r *TransactionRepository) ListByUserAndCategory(ctx context.Context, userID uint64, categoryID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order(newestFirst).
		Find(&transactionModels).Error
	if err != nil {
		return nil, r.databaseError("list transactions by category", err, map[string]any{
			"user_id":     userID,
			"category_id": categoryID,
		})
	}

	return r.toEntities(transactionModels), nil
}

// ListByUserInRange returns transactions dated inside the inclusive range, oldest first
func (r *TransactionRepository) ListByUserInRange(ctx context.Context, userID uint64, dateRange entity.DateRange) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_date BETWEEN ? AND ?", userID, dateRange.From, dateRange.To).
		Order(oldestFirst).
		Find(&transactionModels).Error
	if err != nil {
		return nil, r.databaseError("list transactions in range", err, map[string]any{
			"user_id": userID,
			"range":   dateRange.String(),
		})
	}

	return r.toEntities(transactionModels), nil
}

// SumByTypeInRange sums amounts of one type inside the inclusive range
func (r *TransactionRepository) SumByTypeInRange(ctx context.Context, userID uint64, transactionType entity.TransactionType, dateRange entity.DateRange) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND transaction_date BETWEEN ? AND ?",
			userID, string(transactionType), dateRange.From, dateRange.To).
		Scan(&total).Error
	if err != nil {
		return 0, r.databaseError("sum transactions", err, map[string]any{
			"user_id": userID,
			"type":    transactionType,
			"range":   dateRange.String(),
		})
	}

	return total, nil
}
