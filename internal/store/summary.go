package store

import (
	"context"

	"runway.app/api/core/db/sqlc"
	"runway.app/api/internal/model"
)

type summaryStore struct {
	queries *sqlc.Queries
}

func newSummaryStore(queries *sqlc.Queries) SummaryStore {
	return &summaryStore{queries: queries}
}

// Upsert is a single INSERT ... ON CONFLICT statement, so concurrent writers
// for one organization serialize on the row and the last one wins.
func (s *summaryStore) Upsert(ctx context.Context, summary *model.Summary) error {
	row, err := s.queries.UpsertSummary(ctx, sqlc.UpsertSummaryParams{
		OrganizationID: summary.OrganizationID,
		CashOnHand:     summary.CashOnHand,
		MonthlyBurn:    summary.MonthlyBurn,
		RunwayMonths:   toNumeric(summary.RunwayMonths),
	})
	if err != nil {
		return translate(err)
	}

	currency := summary.Currency
	*summary = *toSummaryModel(row)
	summary.Currency = currency
	return nil
}

func toSummaryModel(row sqlc.Summary) *model.Summary {
	return &model.Summary{
		OrganizationID: row.OrganizationID,
		CashOnHand:     row.CashOnHand,
		MonthlyBurn:    row.MonthlyBurn,
		RunwayMonths:   fromNumeric(row.RunwayMonths),
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
