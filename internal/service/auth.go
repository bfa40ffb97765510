package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"runway.app/api/common/id"
	"runway.app/api/common/password"
	"runway.app/api/common/token"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

const minPasswordLength = 8

type SignupInput struct {
	Name             string
	Email            string
	Password         string
	OrganizationName string
	Currency         string
}

type LoginInput struct {
	Email    string
	Password string
	// OrganizationID selects the organization to sign into; the oldest membership is used when nil.
	OrganizationID *int64
}

// Session is a freshly issued token and the identity it carries.
type Session struct {
	Token        string
	ExpiresAt    time.Time
	User         *model.User
	Organization *model.Organization
	Role         model.MembershipRole
}

type Profile struct {
	User         *model.User
	Organization *model.Organization
	Role         model.MembershipRole
	Memberships  []model.OrganizationMembership
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*Session, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	// Resolve verifies a bearer token and returns the principal it names.
	Resolve(ctx context.Context, rawToken string) (*model.Principal, error)
	// SwitchOrganization mints a token for another organization the caller belongs to.
	SwitchOrganization(ctx context.Context, principal model.Principal, organizationID int64) (*Session, error)
	Logout(ctx context.Context, principal model.Principal) error
	Me(ctx context.Context, principal model.Principal) (*Profile, error)
}

type authService struct {
	stores          store.Provider
	txRunner        TxRunner
	revocations     store.RevocationStore
	tokens          *token.Manager
	passwords       *password.Hasher
	defaultCurrency string
	// dummyHash keeps login timing similar for unknown emails.
	dummyHash string
}

func NewAuthService(
	stores store.Provider,
	txRunner TxRunner,
	revocations store.RevocationStore,
	tokens *token.Manager,
	passwords *password.Hasher,
	defaultCurrency string,
) AuthService {
	dummy, _ := passwords.Hash("runway-timing-equalizer")
	return &authService{
		stores:          stores,
		txRunner:        txRunner,
		revocations:     revocations,
		tokens:          tokens,
		passwords:       passwords,
		defaultCurrency: defaultCurrency,
		dummyHash:       dummy,
	}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	errs := fieldErrors{}
	name := checkText(errs, "name", input.Name, 1, 120)
	email := normalizeEmail(input.Email)
	if !validEmail(email) {
		errs.add("email", "must be a valid email address")
	}
	switch {
	case len(input.Password) < minPasswordLength:
		errs.add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	case len(input.Password) > password.MaxLength:
		errs.add("password", fmt.Sprintf("must be at most %d bytes", password.MaxLength))
	}

	orgName := strings.TrimSpace(input.OrganizationName)
	if orgName == "" && name != "" {
		orgName = name + "'s Organization"
	}
	orgInput := CreateOrganizationInput{Name: orgName, DefaultCurrency: input.Currency}
	orgSvc := &organizationService{defaultCurrency: s.defaultCurrency}
	org, orgErr := orgSvc.prepare(orgInput)
	if v, ok := IsValidation(orgErr); ok {
		for field, msg := range v.Fields {
			errs.add("organization_"+field, msg)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	if _, err := s.stores.Users().GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           id.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	err = s.txRunner.WithTx(ctx, func(stores store.Provider) error {
		if err := stores.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrEmailTaken
			}
			return fmt.Errorf("creating user: %w", err)
		}
		return createOwnedOrganization(ctx, stores, org, nil, user.ID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user signed up", "user_id", user.ID, "organization_id", org.ID)
	return s.issue(user, org, model.MembershipRoleOwner)
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := normalizeEmail(input.Email)

	user, err := s.stores.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.passwords.Verify(s.dummyHash, input.Password)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if !s.passwords.Verify(user.PasswordHash, input.Password) {
		slog.InfoContext(ctx, "login rejected", "user_id", user.ID)
		return nil, ErrUnauthorized
	}

	memberships, err := s.stores.Memberships().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	selected, err := pickMembership(memberships, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	org, err := getOrganization(ctx, s.stores.Organizations(), selected.Organization.ID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "organization_id", org.ID)
	return s.issue(user, org, selected.Role)
}

func pickMembership(memberships []model.OrganizationMembership, organizationID *int64) (model.OrganizationMembership, error) {
	if len(memberships) == 0 {
		return model.OrganizationMembership{}, ErrNotMember
	}
	if organizationID == nil {
		return memberships[0], nil
	}
	for _, m := range memberships {
		if m.Organization.ID == *organizationID {
			return m, nil
		}
	}
	return model.OrganizationMembership{}, ErrNotMember
}

func (s *authService) Resolve(ctx context.Context, rawToken string) (*model.Principal, error) {
	if rawToken == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		slog.DebugContext(ctx, "token rejected", "error", err)
		return nil, ErrUnauthorized
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("checking token revocation: %w", err)
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	membership, err := s.stores.Memberships().Get(ctx, claims.UserID, claims.OrganizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}

	principal := &model.Principal{
		UserID:         claims.UserID,
		OrganizationID: claims.OrganizationID,
		Role:           membership.Role,
		TokenID:        claims.ID,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}

func (s *authService) SwitchOrganization(ctx context.Context, principal model.Principal, organizationID int64) (*Session, error) {
	membership, err := s.stores.Memberships().Get(ctx, principal.UserID, organizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "organization switch denied", "target_organization_id", organizationID)
			return nil, ErrNotMember
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}

	org, err := getOrganization(ctx, s.stores.Organizations(), organizationID)
	if err != nil {
		return nil, err
	}

	user, err := s.stores.Users().GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	slog.InfoContext(ctx, "organization switched", "from_organization_id", principal.OrganizationID, "to_organization_id", organizationID)
	return s.issue(user, org, membership.Role)
}

func (s *authService) Logout(ctx context.Context, principal model.Principal) error {
	if err := s.revocations.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	slog.InfoContext(ctx, "user logged out")
	return nil
}

func (s *authService) Me(ctx context.Context, principal model.Principal) (*Profile, error) {
	user, err := s.stores.Users().GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	org, err := getOrganization(ctx, s.stores.Organizations(), principal.OrganizationID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.stores.Memberships().ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	return &Profile{User: user, Organization: org, Role: principal.Role, Memberships: memberships}, nil
}

func (s *authService) issue(user *model.User, org *model.Organization, role model.MembershipRole) (*Session, error) {
	issued, err := s.tokens.Issue(user.ID, org.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &Session{
		Token:        issued.Token,
		ExpiresAt:    issued.ExpiresAt,
		User:         user,
		Organization: org,
		Role:         role,
	}, nil
}
