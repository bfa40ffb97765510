package store

import (
	"runway.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

var _ Provider = (*Stores)(nil)

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Memberships() MembershipStore {
	return newMembershipStore(s.queries)
}

func (s *Stores) Transactions() TransactionStore {
	return newTransactionStore(s.queries)
}

func (s *Stores) Summaries() SummaryStore {
	return newSummaryStore(s.queries)
}
