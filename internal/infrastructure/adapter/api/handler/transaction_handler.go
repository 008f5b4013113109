package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/yozi-budget/yozi-backend/internal/domain/port/core"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
	"github.com/yozi-budget/yozi-backend/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// ListTransactions handles GET /api/transactions[?type=]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	views, err := h.transactionUseCase.ListTransactions(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(views))
}

// ListByCategory handles GET /api/transactions/category/:categoryId
func (h *TransactionHandler) ListByCategory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	categoryID, err := idParam(c, "categoryId")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	views, err := h.transactionUseCase.ListTransactionsByCategory(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(views))
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	view, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(*view))
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	transactionID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	view, err := h.transactionUseCase.UpdateTransaction(c.Request.Context(), userID, transactionID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(*view))
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	transactionID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.transactionUseCase.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) bindInput(c *gin.Context) (usecase.TransactionInput, bool) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return usecase.TransactionInput{}, false
	}

	input, err := req.ToInput()
	if err != nil {
		respondError(c, h.logger, err)
		return usecase.TransactionInput{}, false
	}
	return input, true
}
