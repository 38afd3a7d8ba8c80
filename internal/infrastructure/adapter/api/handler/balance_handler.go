package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/middleware"
)

// BalanceHandler handles credit ledger HTTP requests
type BalanceHandler struct {
	balanceUseCase usecase.BalanceUseCase
	logger         coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(
	balanceUseCase usecase.BalanceUseCase,
	logger coreport.Logger,
) *BalanceHandler {
	return &BalanceHandler{
		balanceUseCase: balanceUseCase,
		logger:         logger,
	}
}

// pathUserID parses the :userId path parameter and checks the caller
// may act on that account. Non-admins may only touch their own balance.
func (h *BalanceHandler) pathUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}

	if userID != middleware.AuthenticatedUserID(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
			Message: "Cannot access another user's balance",
		})
		return 0, false
	}

	return userID, true
}

// bodyUserID resolves the target account for mutation endpoints. A zero
// or missing userId in the body means the caller's own account.
func (h *BalanceHandler) bodyUserID(c *gin.Context, requested uint64) (uint64, bool) {
	if requested == 0 {
		return middleware.AuthenticatedUserID(c), true
	}
	if requested != middleware.AuthenticatedUserID(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
			Message: "Cannot modify another user's balance",
		})
		return 0, false
	}
	return requested, true
}

// GetBalance handles GET /api/balance/:userId
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	balance, err := h.balanceUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  balance.UserID,
		Balance: balance.Balance,
	})
}

// Deposit handles POST /api/balance/deposit
func (h *BalanceHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	userID, ok := h.bodyUserID(c, req.UserID)
	if !ok {
		return
	}

	txn, err := h.balanceUseCase.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// Withdraw handles POST /api/balance/reduction
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	userID, ok := h.bodyUserID(c, req.UserID)
	if !ok {
		return
	}

	txn, err := h.balanceUseCase.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// AdminAdjust handles POST /api/balance/adjustment (admin only)
func (h *BalanceHandler) AdminAdjust(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "userId is required for adjustments",
		})
		return
	}

	txn, err := h.balanceUseCase.AdminAdjust(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// GetTransactions handles GET /api/balance/:userId/transactions
func (h *BalanceHandler) GetTransactions(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	transactions, err := h.balanceUseCase.GetTransactionHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		responses = append(responses, toTransactionResponse(txn))
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		UserID:       userID,
		Transactions: responses,
	})
}
