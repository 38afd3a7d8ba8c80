package handler

import (
	"github.com/dlevina/prediction-billing/internal/domain/entity"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
)

// toTransactionResponse converts a ledger entry to its API form
func toTransactionResponse(txn *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		TransactionID: txn.TransactionID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount(),
		ResultBalance: txn.ResultBalance,
		CreatedAt:     dto.FormatTime(txn.CreatedAt),
	}
}
