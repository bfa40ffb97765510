package model

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry. Amount is always positive;
// the sign is derived from Type when the ledger is read.
type Transaction struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	Description    string          `json:"description"`
	Amount         int64           `json:"amount"`
	Currency       string          `json:"currency"`
	Type           TransactionType `json:"type"`
	OccurredAt     time.Time       `json:"occurred_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SignedAmount returns Amount negated for expenses.
func (t Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
