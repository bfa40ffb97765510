package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

type userStore struct{ *Stores }

func (s *userStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	defer s.rlock()()
	user, ok := s.db.data.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	defer s.rlock()()
	id, ok := s.db.data.emails[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	user := s.db.data.users[id]
	return &user, nil
}

func (s *userStore) Create(_ context.Context, user *model.User) error {
	defer s.lock()()
	if _, taken := s.db.data.emails[user.Email]; taken {
		return fmt.Errorf("%w: users_email_key", store.ErrDuplicate)
	}
	if _, exists := s.db.data.users[user.ID]; exists {
		return fmt.Errorf("%w: users_pkey", store.ErrDuplicate)
	}
	now := s.db.now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.db.data.users[user.ID] = *user
	s.db.data.emails[user.Email] = user.ID
	return nil
}

type organizationStore struct{ *Stores }

func (s *organizationStore) GetByID(_ context.Context, id int64) (*model.Organization, error) {
	defer s.rlock()()
	org, ok := s.db.data.organizations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &org, nil
}

func (s *organizationStore) GetBySlug(_ context.Context, slug string) (*model.Organization, error) {
	defer s.rlock()()
	id, ok := s.db.data.slugs[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	org := s.db.data.organizations[id]
	return &org, nil
}

func (s *organizationStore) Create(_ context.Context, org *model.Organization) error {
	defer s.lock()()
	if _, taken := s.db.data.slugs[org.Slug]; taken {
		return fmt.Errorf("%w: organizations_slug_key", store.ErrDuplicate)
	}
	if _, exists := s.db.data.organizations[org.ID]; exists {
		return fmt.Errorf("%w: organizations_pkey", store.ErrDuplicate)
	}
	now := s.db.now()
	org.CreatedAt, org.UpdatedAt = now, now
	s.db.data.organizations[org.ID] = *org
	s.db.data.slugs[org.Slug] = org.ID
	return nil
}

func (s *organizationStore) Update(_ context.Context, org *model.Organization) error {
	defer s.lock()()
	existing, ok := s.db.data.organizations[org.ID]
	if !ok {
		return store.ErrNotFound
	}
	existing.Name = org.Name
	existing.DefaultCurrency = org.DefaultCurrency
	existing.UpdatedAt = s.db.now()
	s.db.data.organizations[org.ID] = existing
	*org = existing
	return nil
}

type membershipStore struct{ *Stores }

func (s *membershipStore) Get(_ context.Context, userID, organizationID int64) (*model.Membership, error) {
	defer s.rlock()()
	m, ok := s.db.data.memberships[membershipKey{userID, organizationID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (s *membershipStore) Create(_ context.Context, membership *model.Membership) error {
	defer s.lock()()
	if _, ok := s.db.data.users[membership.UserID]; !ok {
		return fmt.Errorf("membership references unknown user %d", membership.UserID)
	}
	if _, ok := s.db.data.organizations[membership.OrganizationID]; !ok {
		return fmt.Errorf("membership references unknown organization %d", membership.OrganizationID)
	}
	if !membership.Role.Valid() {
		return fmt.Errorf("invalid membership role %q", membership.Role)
	}
	key := membershipKey{membership.UserID, membership.OrganizationID}
	if _, exists := s.db.data.memberships[key]; exists {
		return fmt.Errorf("%w: memberships_pkey", store.ErrDuplicate)
	}
	membership.CreatedAt = s.db.now()
	s.db.data.memberships[key] = *membership
	return nil
}

func (s *membershipStore) ListByUser(_ context.Context, userID int64) ([]model.OrganizationMembership, error) {
	defer s.rlock()()
	result := make([]model.OrganizationMembership, 0)
	for key, m := range s.db.data.memberships {
		if key.userID != userID {
			continue
		}
		result = append(result, model.OrganizationMembership{
			Organization: s.db.data.organizations[key.organizationID],
			Role:         m.Role,
			JoinedAt:     m.CreatedAt,
		})
	}
	slices.SortFunc(result, func(a, b model.OrganizationMembership) int {
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Organization.ID, b.Organization.ID)
	})
	return result, nil
}

type transactionStore struct{ *Stores }

func (s *transactionStore) Create(_ context.Context, txn *model.Transaction) error {
	defer s.lock()()
	if _, ok := s.db.data.organizations[txn.OrganizationID]; !ok {
		return fmt.Errorf("transaction references unknown organization %d", txn.OrganizationID)
	}
	if txn.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %d", txn.Amount)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", txn.Type)
	}
	txn.CreatedAt = s.db.now()
	s.db.data.transactions[txn.OrganizationID] = append(s.db.data.transactions[txn.OrganizationID], *txn)
	return nil
}

func (s *transactionStore) List(_ context.Context, organizationID int64, r ledger.Range) ([]model.Transaction, error) {
	defer s.rlock()()
	return ledger.Select(s.db.data.transactions[organizationID], r), nil
}

func (s *transactionStore) ListNewestFirst(_ context.Context, organizationID int64) ([]model.Transaction, error) {
	defer s.rlock()()
	result := append([]model.Transaction{}, s.db.data.transactions[organizationID]...)
	ledger.SortNewestFirst(result)
	return result, nil
}

type summaryStore struct{ *Stores }

func (s *summaryStore) Upsert(_ context.Context, summary *model.Summary) error {
	defer s.lock()()
	if _, ok := s.db.data.organizations[summary.OrganizationID]; !ok {
		return fmt.Errorf("summary references unknown organization %d", summary.OrganizationID)
	}
	summary.UpdatedAt = s.db.now()
	stored := *summary
	stored.Currency = ""
	s.db.data.summaries[summary.OrganizationID] = stored
	return nil
}

// CachedSummary returns the last summary written for the organization.
func (db *DB) CachedSummary(organizationID int64) (*model.Summary, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	summary, ok := db.data.summaries[organizationID]
	if !ok {
		return nil, false
	}
	return &summary, true
}
