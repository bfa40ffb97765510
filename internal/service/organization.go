package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"runway.app/api/common"
	"runway.app/api/common/id"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

const maxSlugAttempts = 20

type CreateOrganizationInput struct {
	Name            string
	Slug            *string
	DefaultCurrency string
}

type UpdateOrganizationInput struct {
	Name            *string
	DefaultCurrency *string
}

type OrganizationService interface {
	// Create makes a new organization with ownerID as its OWNER.
	Create(ctx context.Context, ownerID int64, input CreateOrganizationInput) (*model.Organization, error)
	Get(ctx context.Context, organizationID int64) (*model.Organization, error)
	ListForUser(ctx context.Context, userID int64) ([]model.OrganizationMembership, error)
	// Update changes the caller's current organization; OWNER or ADMIN only.
	Update(ctx context.Context, principal model.Principal, input UpdateOrganizationInput) (*model.Organization, error)
}

type organizationService struct {
	stores          store.Provider
	txRunner        TxRunner
	defaultCurrency string
}

func NewOrganizationService(stores store.Provider, txRunner TxRunner, defaultCurrency string) OrganizationService {
	return &organizationService{stores: stores, txRunner: txRunner, defaultCurrency: defaultCurrency}
}

func (s *organizationService) Create(ctx context.Context, ownerID int64, input CreateOrganizationInput) (*model.Organization, error) {
	org, err := s.prepare(input)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.WithTx(ctx, func(stores store.Provider) error {
		return createOwnedOrganization(ctx, stores, org, input.Slug, ownerID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created", "organization_id", org.ID, "slug", org.Slug)
	return org, nil
}

// prepare validates the input and fills everything but the slug.
func (s *organizationService) prepare(input CreateOrganizationInput) (*model.Organization, error) {
	errs := fieldErrors{}
	name := checkText(errs, "name", input.Name, 2, 120)

	currency := s.defaultCurrency
	if input.DefaultCurrency != "" {
		code, ok := normalizeCurrency(input.DefaultCurrency)
		if !ok {
			errs.add("default_currency", "must be a 3-letter ISO 4217 code")
		}
		currency = code
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	return &model.Organization{ID: id.New(), Name: name, DefaultCurrency: currency}, nil
}

// createOwnedOrganization inserts org with a free slug and an OWNER membership.
// It runs inside the caller's transaction.
func createOwnedOrganization(ctx context.Context, stores store.Provider, org *model.Organization, slug *string, ownerID int64) error {
	finalSlug, err := ensureSlug(ctx, stores.Organizations(), org.Name, slug)
	if err != nil {
		return err
	}
	org.Slug = finalSlug

	if err := stores.Organizations().Create(ctx, org); err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}

	membership := &model.Membership{
		UserID:         ownerID,
		OrganizationID: org.ID,
		Role:           model.MembershipRoleOwner,
	}
	if err := stores.Memberships().Create(ctx, membership); err != nil {
		return fmt.Errorf("creating owner membership: %w", err)
	}
	return nil
}

func ensureSlug(ctx context.Context, orgs store.OrganizationStore, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	if _, err := orgs.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	for i := 1; i <= maxSlugAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgs.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}

func (s *organizationService) Get(ctx context.Context, organizationID int64) (*model.Organization, error) {
	return getOrganization(ctx, s.stores.Organizations(), organizationID)
}

func getOrganization(ctx context.Context, orgs store.OrganizationStore, organizationID int64) (*model.Organization, error) {
	org, err := orgs.GetByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ListForUser(ctx context.Context, userID int64) ([]model.OrganizationMembership, error) {
	memberships, err := s.stores.Memberships().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return memberships, nil
}

func (s *organizationService) Update(ctx context.Context, principal model.Principal, input UpdateOrganizationInput) (*model.Organization, error) {
	if !principal.Role.CanManage() {
		return nil, ErrForbidden
	}

	errs := fieldErrors{}
	var name, currency string
	if input.Name != nil {
		name = checkText(errs, "name", *input.Name, 2, 120)
	}
	if input.DefaultCurrency != nil {
		code, ok := normalizeCurrency(*input.DefaultCurrency)
		if !ok {
			errs.add("default_currency", "must be a 3-letter ISO 4217 code")
		}
		currency = code
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	var org *model.Organization
	err := s.txRunner.WithTx(ctx, func(stores store.Provider) error {
		membership, err := stores.Memberships().Get(ctx, principal.UserID, principal.OrganizationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			return fmt.Errorf("getting membership: %w", err)
		}
		if !membership.Role.CanManage() {
			return ErrForbidden
		}

		org, err = getOrganization(ctx, stores.Organizations(), principal.OrganizationID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			org.Name = name
		}
		if input.DefaultCurrency != nil {
			org.DefaultCurrency = currency
		}
		if err := stores.Organizations().Update(ctx, org); err != nil {
			return fmt.Errorf("updating organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization updated", "organization_id", org.ID)
	return org, nil
}
