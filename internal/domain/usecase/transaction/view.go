package transaction

import (
	"context"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// categoryNames maps category IDs to display names for one response
type categoryNames map[uint64]string

func (n categoryNames) lookup(categoryID uint64) string {
	if name, ok := n[categoryID]; ok {
		return name
	}
	return entity.UnknownCategoryDisplayName
}

// loadCategoryNames reads the whole registry once per request; it holds eight rows
func (s *Service) loadCategoryNames(ctx context.Context) (categoryNames, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(categoryNames, len(categories))
	for _, c := range categories {
		names[c.ID] = c.DisplayName
	}
	return names, nil
}

func (s *Service) toViews(ctx context.Context, user *entity.User, transactions []*entity.Transaction) ([]usecase.TransactionView, error) {
	names, err := s.loadCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, newView(user, t, names))
	}
	return views, nil
}

func (s *Service) toView(ctx context.Context, user *entity.User, transaction *entity.Transaction) (*usecase.TransactionView, error) {
	names, err := s.loadCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	view := newView(user, transaction, names)
	return &view, nil
}

func newView(user *entity.User, t *entity.Transaction, names categoryNames) usecase.TransactionView {
	return usecase.TransactionView{
		ID:                  t.ID,
		UserNickname:        user.Nickname,
		Type:                t.Type,
		CategoryID:          t.CategoryID,
		CategoryDisplayName: names.lookup(t.CategoryID),
		PaymentMethod:       t.PaymentMethod,
		Vendor:              t.Vendor,
		Amount:              t.Amount,
		Memo:                t.Memo,
		TransactionDate:     t.TransactionDate,
	}
}
