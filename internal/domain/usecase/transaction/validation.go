package transaction

import (
	"fmt"
	"strings"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

// maxVendorLength bounds the vendor column
const maxVendorLength = 255

// TransactionValidator provides validation for transaction input
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateInput validates client input and converts it into entity details
func (v *TransactionValidator) ValidateInput(userID uint64, input usecase.TransactionInput) (entity.TransactionDetails, error) {
	if userID == 0 {
		return entity.TransactionDetails{}, errs.ErrInvalidUserID
	}

	transactionType, err := v.validateType(input.Type)
	if err != nil {
		return entity.TransactionDetails{}, err
	}

	method, err := entity.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return entity.TransactionDetails{}, err
	}

	if err := v.validateVendor(input.Vendor); err != nil {
		return entity.TransactionDetails{}, err
	}

	details := entity.TransactionDetails{
		Type:            transactionType,
		CategoryID:      input.CategoryID,
		PaymentMethod:   method,
		Vendor:          strings.TrimSpace(input.Vendor),
		Amount:          input.Amount,
		Memo:            input.Memo,
		TransactionDate: input.TransactionDate,
	}

	if err := details.Validate(); err != nil {
		return entity.TransactionDetails{}, err
	}

	return details, nil
}

// validateType checks if the transaction type is present and known
func (v *TransactionValidator) validateType(value string) (entity.TransactionType, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: type is required", errs.ErrInvalidTransactionType)
	}
	return entity.ParseTransactionType(value)
}

// validateVendor checks the vendor length
func (v *TransactionValidator) validateVendor(vendor string) error {
	if len(vendor) > maxVendorLength {
		return fmt.Errorf("%w: vendor exceeds %d bytes", errs.ErrInvalidArgument, maxVendorLength)
	}
	return nil
}

// parseTypeFilter maps a list filter to a transaction type.
// Anything other than income or expense means no filter.
func parseTypeFilter(filter string) entity.TransactionType {
	transactionType, err := entity.ParseTransactionType(filter)
	if err != nil {
		return ""
	}
	return transactionType
}
