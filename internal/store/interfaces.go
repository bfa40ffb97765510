package store

import (
	"context"
	"errors"
	"time"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write violates a uniqueness constraint
	ErrDuplicate = errors.New("duplicate")
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
}

type MembershipStore interface {
	Get(ctx context.Context, userID, organizationID int64) (*model.Membership, error)
	Create(ctx context.Context, membership *model.Membership) error
	ListByUser(ctx context.Context, userID int64) ([]model.OrganizationMembership, error)
}

// TransactionStore is the ledger of one organization at a time: every read
// and write is keyed by the organization id.
type TransactionStore interface {
	Create(ctx context.Context, txn *model.Transaction) error
	// List returns transactions inside r, oldest first.
	List(ctx context.Context, organizationID int64, r ledger.Range) ([]model.Transaction, error)
	// ListNewestFirst returns every transaction of the organization, newest first.
	ListNewestFirst(ctx context.Context, organizationID int64) ([]model.Transaction, error)
}

type SummaryStore interface {
	// Upsert writes the figures keyed by organization id and stamps UpdatedAt.
	Upsert(ctx context.Context, summary *model.Summary) error
}

// RevocationStore remembers logged-out token ids until they would have expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Provider exposes the stores bound to one connection or transaction.
type Provider interface {
	Users() UserStore
	Organizations() OrganizationStore
	Memberships() MembershipStore
	Transactions() TransactionStore
	Summaries() SummaryStore
}
