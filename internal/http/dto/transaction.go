package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"runway.app/api/internal/model"
)

type CreateTransactionRequest struct {
	Description string           `json:"description" binding:"required,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	OccurredAt  *time.Time       `json:"occurred_at,omitempty"`
	Currency    *string          `json:"currency,omitempty" binding:"omitempty,len=3,alpha"`
}

// ExportQuery bounds are dates (2006-01-02) or RFC 3339 timestamps.
type ExportQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type TransactionResponse struct {
	ID           int64     `json:"id,string"`
	Description  string    `json:"description"`
	Amount       int64     `json:"amount"`
	SignedAmount int64     `json:"signed_amount"`
	Currency     string    `json:"currency"`
	Type         string    `json:"type"`
	OccurredAt   time.Time `json:"occurred_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToTransactionResponse(txn *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Description:  txn.Description,
		Amount:       txn.Amount,
		SignedAmount: txn.SignedAmount(),
		Currency:     txn.Currency,
		Type:         string(txn.Type),
		OccurredAt:   txn.OccurredAt,
		CreatedAt:    txn.CreatedAt,
	}
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func ToListTransactionsResponse(txns []model.Transaction) ListTransactionsResponse {
	result := make([]TransactionResponse, len(txns))
	for i := range txns {
		result[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: result}
}
