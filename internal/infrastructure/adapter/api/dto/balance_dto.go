package dto

// BalanceResponse is the response for GET /api/balance/:userId
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}

// AmountRequest is the shared payload for deposit, reduction and
// adjustment endpoints
type AmountRequest struct {
	UserID uint64 `json:"userId"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse is one ledger entry in API form
type TransactionResponse struct {
	TransactionID string `json:"transactionId"`
	UserID        uint64 `json:"userId"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	ResultBalance string `json:"resultBalance,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// TransactionListResponse is the response for the transaction history endpoint
type TransactionListResponse struct {
	UserID       uint64                `json:"userId"`
	Transactions []TransactionResponse `json:"transactions"`
}
