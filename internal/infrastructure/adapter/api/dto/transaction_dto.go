package dto

import (
	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// TransactionRequest represents the body of create and update
type TransactionRequest struct {
	Type            string `json:"type" binding:"required"`
	CategoryID      uint64 `json:"categoryId"`
	PaymentMethod   string `json:"paymentMethod"`
	Vendor          string `json:"vendor"`
	Amount          int64  `json:"amount" binding:"min=0"`
	Memo            string `json:"memo"`
	TransactionDate string `json:"transactionDate" binding:"required"`
}

// ToInput parses the date and converts the request into use case input
func (r TransactionRequest) ToInput() (usecase.TransactionInput, error) {
	date, err := entity.ParseDate(r.TransactionDate)
	if err != nil {
		return usecase.TransactionInput{}, err
	}

	return usecase.TransactionInput{
		Type:            r.Type,
		CategoryID:      r.CategoryID,
		PaymentMethod:   r.PaymentMethod,
		Vendor:          r.Vendor,
		Amount:          r.Amount,
		Memo:            r.Memo,
		TransactionDate: date,
	}, nil
}

// TransactionResponse represents a transaction as returned by the API
type TransactionResponse struct {
	ID                  uint64 `json:"id"`
	UserNickname        string `json:"userNickname"`
	Type                string `json:"type"`
	CategoryID          uint64 `json:"categoryId"`
	CategoryDisplayName string `json:"categoryDisplayName"`
	PaymentMethod       string `json:"paymentMethod"`
	Vendor              string `json:"vendor"`
	Amount              int64  `json:"amount"`
	Memo                string `json:"memo"`
	TransactionDate     string `json:"transactionDate"`
}

// NewTransactionResponse maps a transaction view
func NewTransactionResponse(v usecase.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:                  v.ID,
		UserNickname:        v.UserNickname,
		Type:                string(v.Type),
		CategoryID:          v.CategoryID,
		CategoryDisplayName: v.CategoryDisplayName,
		PaymentMethod:       string(v.PaymentMethod),
		Vendor:              v.Vendor,
		Amount:              v.Amount,
		Memo:                v.Memo,
		TransactionDate:     v.TransactionDate.Format(entity.DateLayout),
	}
}

// NewTransactionResponses maps a list of views
func NewTransactionResponses(views []usecase.TransactionView) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewTransactionResponse(v))
	}
	return out
}
