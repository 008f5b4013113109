package budget

import (
	"context"
	"sort"
	"time"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

// memoryStore backs the budget, transaction and category repositories with slices.
// It keys budgets the way the unique index does so upserts replace rather than accumulate.
type memoryStore struct {
	categories   []*entity.Category
	budgets      map[budgetKey]*entity.Budget
	transactions []*entity.Transaction
	upserts      int
}

type budgetKey struct {
	userID     uint64
	categoryID uint64
	month      string
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{budgets: make(map[budgetKey]*entity.Budget)}
	for i, t := range entity.AllCategoryTypes() {
		s.categories = append(s.categories, &entity.Category{ID: uint64(i + 1), Type: t, DisplayName: t.DisplayName()})
	}
	return s
}

func (s *memoryStore) addTransaction(userID uint64, t entity.TransactionType, day time.Time, amount int64) {
	s.transactions = append(s.transactions, &entity.Transaction{
		ID:              uint64(len(s.transactions) + 1),
		UserID:          userID,
		Type:            t,
		CategoryID:      1,
		Vendor:          "vendor",
		Amount:          amount,
		TransactionDate: entity.DateOf(day),
	})
}

// CategoryRepository

func (s *memoryStore) List(context.Context) ([]*entity.Category, error) {
	return s.categories, nil
}

func (s *memoryStore) GetByID(_ context.Context, id uint64) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrCategoryNotFound
}

func (s *memoryStore) GetByType(_ context.Context, t entity.CategoryType) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.Type == t {
			return c, nil
		}
	}
	return nil, errs.ErrCategoryNotFound
}

func (s *memoryStore) Create(context.Context, *entity.Category) error {
	return nil
}

// BudgetRepository

func (s *memoryStore) Upsert(_ context.Context, b *entity.Budget) error {
	s.upserts++
	key := budgetKey{b.UserID, b.CategoryID, b.BudgetMonth.Format(entity.DateLayout)}
	copied := *b
	s.budgets[key] = &copied
	return nil
}

func (s *memoryStore) ListByUserAndMonth(_ context.Context, userID uint64, month time.Time) ([]entity.CategoryBudget, error) {
	var result []entity.CategoryBudget
	for key, b := range s.budgets {
		if key.userID != userID || key.month != month.Format(entity.DateLayout) {
			continue
		}
		category, _ := s.GetByID(context.Background(), b.CategoryID)
		result = append(result, entity.CategoryBudget{CategoryID: b.CategoryID, CategoryType: category.Type, Amount: b.Amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CategoryID < result[j].CategoryID })
	return result, nil
}

func (s *memoryStore) SumByUserAndMonth(ctx context.Context, userID uint64, month time.Time) (int64, error) {
	budgets, _ := s.ListByUserAndMonth(ctx, userID, month)
	var total int64
	for _, b := range budgets {
		total += b.Amount
	}
	return total, nil
}

// transactionView exposes the transaction side of the store under the repository's method names
type transactionView struct {
	*memoryStore
}

func (v transactionView) Create(context.Context, *entity.Transaction) error { return nil }
func (v transactionView) Update(context.Context, *entity.Transaction) error { return nil }
func (v transactionView) Delete(context.Context, uint64) error              { return nil }

func (v transactionView) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	for _, t := range v.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

func (v transactionView) ListByUser(_ context.Context, userID uint64, t entity.TransactionType) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range v.transactions {
		if tx.UserID == userID && (t == "" || tx.Type == t) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (v transactionView) ListByUserAndCategory(_ context.Context, userID, categoryID uint64) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range v.transactions {
		if tx.UserID == userID && tx.CategoryID == categoryID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (v transactionView) ListByUserInRange(_ context.Context, userID uint64, r entity.DateRange) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range v.transactions {
		if tx.UserID == userID && r.Contains(tx.TransactionDate) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (v transactionView) SumByTypeInRange(ctx context.Context, userID uint64, t entity.TransactionType, r entity.DateRange) (int64, error) {
	list, _ := v.ListByUserInRange(ctx, userID, r)
	var total int64
	for _, tx := range list {
		if tx.Type == t {
			total += tx.Amount
		}
	}
	return total, nil
}
