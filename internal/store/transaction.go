package store

import (
	"context"

	"runway.app/api/core/db/sqlc"
	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
)

type transactionStore struct {
	queries *sqlc.Queries
}

func newTransactionStore(queries *sqlc.Queries) TransactionStore {
	return &transactionStore{queries: queries}
}

func (s *transactionStore) Create(ctx context.Context, txn *model.Transaction) error {
	row, err := s.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		ID:             txn.ID,
		OrganizationID: txn.OrganizationID,
		Description:    txn.Description,
		Amount:         txn.Amount,
		Currency:       txn.Currency,
		Type:           string(txn.Type),
		OccurredAt:     timestamptz(txn.OccurredAt),
	})
	if err != nil {
		return translate(err)
	}
	*txn = toTransactionModel(row)
	return nil
}

func (s *transactionStore) List(ctx context.Context, organizationID int64, r ledger.Range) ([]model.Transaction, error) {
	if r.Empty() {
		return []model.Transaction{}, nil
	}

	rows, err := s.queries.ListTransactionsInRange(ctx, sqlc.ListTransactionsInRangeParams{
		OrganizationID: organizationID,
		OccurredFrom:   optionalTimestamptz(r.From),
		OccurredTo:     optionalTimestamptz(r.To),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toTransactionModels(rows), nil
}

func (s *transactionStore) ListNewestFirst(ctx context.Context, organizationID int64) ([]model.Transaction, error) {
	rows, err := s.queries.ListTransactionsNewestFirst(ctx, organizationID)
	if err != nil {
		return nil, translate(err)
	}
	return toTransactionModels(rows), nil
}

func toTransactionModels(rows []sqlc.Transaction) []model.Transaction {
	result := make([]model.Transaction, len(rows))
	for i, row := range rows {
		result[i] = toTransactionModel(row)
	}
	return result
}

func toTransactionModel(row sqlc.Transaction) model.Transaction {
	return model.Transaction{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Description:    row.Description,
		Amount:         row.Amount,
		Currency:       row.Currency,
		Type:           model.TransactionType(row.Type),
		OccurredAt:     row.OccurredAt.Time,
		CreatedAt:      row.CreatedAt.Time,
	}
}
