package store

import (
	"context"

	"runway.app/api/core/db/sqlc"
	"runway.app/api/internal/model"
)

type membershipStore struct {
	queries *sqlc.Queries
}

func newMembershipStore(queries *sqlc.Queries) MembershipStore {
	return &membershipStore{queries: queries}
}

func (s *membershipStore) Get(ctx context.Context, userID, organizationID int64) (*model.Membership, error) {
	row, err := s.queries.GetMembership(ctx, sqlc.GetMembershipParams{
		UserID:         userID,
		OrganizationID: organizationID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toMembershipModel(row), nil
}

func (s *membershipStore) Create(ctx context.Context, membership *model.Membership) error {
	row, err := s.queries.CreateMembership(ctx, sqlc.CreateMembershipParams{
		UserID:         membership.UserID,
		OrganizationID: membership.OrganizationID,
		Role:           string(membership.Role),
	})
	if err != nil {
		return translate(err)
	}
	*membership = *toMembershipModel(row)
	return nil
}

func (s *membershipStore) ListByUser(ctx context.Context, userID int64) ([]model.OrganizationMembership, error) {
	rows, err := s.queries.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}

	result := make([]model.OrganizationMembership, len(rows))
	for i, row := range rows {
		result[i] = model.OrganizationMembership{
			Organization: model.Organization{
				ID:              row.OrganizationID,
				Name:            row.OrganizationName,
				Slug:            row.OrganizationSlug,
				DefaultCurrency: row.DefaultCurrency,
			},
			Role:     model.MembershipRole(row.Role),
			JoinedAt: row.CreatedAt.Time,
		}
	}
	return result, nil
}

func toMembershipModel(row sqlc.Membership) *model.Membership {
	return &model.Membership{
		UserID:         row.UserID,
		OrganizationID: row.OrganizationID,
		Role:           model.MembershipRole(row.Role),
		CreatedAt:      row.CreatedAt.Time,
	}
}
