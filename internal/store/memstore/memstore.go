// Package memstore is an in-process implementation of the store contracts.
// It backs STORE_BACKEND=memory and the service tests; data lives only as
// long as the process.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

type membershipKey struct {
	userID         int64
	organizationID int64
}

type state struct {
	users         map[int64]model.User
	emails        map[string]int64
	organizations map[int64]model.Organization
	slugs         map[string]int64
	memberships   map[membershipKey]model.Membership
	transactions  map[int64][]model.Transaction
	summaries     map[int64]model.Summary
}

func newState() state {
	return state{
		users:         make(map[int64]model.User),
		emails:        make(map[string]int64),
		organizations: make(map[int64]model.Organization),
		slugs:         make(map[string]int64),
		memberships:   make(map[membershipKey]model.Membership),
		transactions:  make(map[int64][]model.Transaction),
		summaries:     make(map[int64]model.Summary),
	}
}

func (s state) clone() state {
	txns := make(map[int64][]model.Transaction, len(s.transactions))
	for orgID, list := range s.transactions {
		txns[orgID] = append([]model.Transaction(nil), list...)
	}
	return state{
		users:         maps.Clone(s.users),
		emails:        maps.Clone(s.emails),
		organizations: maps.Clone(s.organizations),
		slugs:         maps.Clone(s.slugs),
		memberships:   maps.Clone(s.memberships),
		transactions:  txns,
		summaries:     maps.Clone(s.summaries),
	}
}

// DB holds all tables behind a single RWMutex.
type DB struct {
	mu   sync.RWMutex
	data state
	now  func() time.Time
}

type Option func(*DB)

// WithClock overrides the clock used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

func New(opts ...Option) *DB {
	db := &DB{data: newState(), now: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Stores returns stores that lock per call.
func (db *DB) Stores() *Stores {
	return &Stores{db: db}
}

// WithTx runs fn with exclusive access. Changes made by fn are discarded
// when it returns an error.
func (db *DB) WithTx(ctx context.Context, fn func(stores store.Provider) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.data.clone()
	if err := fn(&Stores{db: db, inTx: true}); err != nil {
		db.data = snapshot
		return err
	}
	return nil
}

// Stores implements store.Provider over a DB.
type Stores struct {
	db   *DB
	inTx bool
}

var _ store.Provider = (*Stores)(nil)

func (s *Stores) Users() store.UserStore {
	return &userStore{s}
}

func (s *Stores) Organizations() store.OrganizationStore {
	return &organizationStore{s}
}

func (s *Stores) Memberships() store.MembershipStore {
	return &membershipStore{s}
}

func (s *Stores) Transactions() store.TransactionStore {
	return &transactionStore{s}
}

func (s *Stores) Summaries() store.SummaryStore {
	return &summaryStore{s}
}

func (s *Stores) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.db.mu.RLock()
	return s.db.mu.RUnlock
}

func (s *Stores) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.db.mu.Lock()
	return s.db.mu.Unlock
}
