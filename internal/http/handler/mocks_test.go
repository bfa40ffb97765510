package handler_test

import (
	"context"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

type mockAuthService struct {
	signupFn func(ctx context.Context, input service.SignupInput) (*service.Session, error)
	loginFn  func(ctx context.Context, input service.LoginInput) (*service.Session, error)
	switchFn func(ctx context.Context, principal model.Principal, organizationID int64) (*service.Session, error)
	logoutFn func(ctx context.Context, principal model.Principal) error
	meFn     func(ctx context.Context, principal model.Principal) (*service.Profile, error)
}

func (m *mockAuthService) Signup(ctx context.Context, input service.SignupInput) (*service.Session, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Resolve(_ context.Context, _ string) (*model.Principal, error) {
	return nil, service.ErrUnauthorized
}

func (m *mockAuthService) SwitchOrganization(ctx context.Context, principal model.Principal, organizationID int64) (*service.Session, error) {
	if m.switchFn != nil {
		return m.switchFn(ctx, principal, organizationID)
	}
	return nil, nil
}

func (m *mockAuthService) Logout(ctx context.Context, principal model.Principal) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, principal)
	}
	return nil
}

func (m *mockAuthService) Me(ctx context.Context, principal model.Principal) (*service.Profile, error) {
	if m.meFn != nil {
		return m.meFn(ctx, principal)
	}
	return nil, nil
}

type mockOrganizationService struct {
	createFn      func(ctx context.Context, ownerID int64, input service.CreateOrganizationInput) (*model.Organization, error)
	getFn         func(ctx context.Context, organizationID int64) (*model.Organization, error)
	listForUserFn func(ctx context.Context, userID int64) ([]model.OrganizationMembership, error)
	updateFn      func(ctx context.Context, principal model.Principal, input service.UpdateOrganizationInput) (*model.Organization, error)
}

func (m *mockOrganizationService) Create(ctx context.Context, ownerID int64, input service.CreateOrganizationInput) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, input)
	}
	return nil, nil
}

func (m *mockOrganizationService) Get(ctx context.Context, organizationID int64) (*model.Organization, error) {
	if m.getFn != nil {
		return m.getFn(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockOrganizationService) ListForUser(ctx context.Context, userID int64) ([]model.OrganizationMembership, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrganizationService) Update(ctx context.Context, principal model.Principal, input service.UpdateOrganizationInput) (*model.Organization, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, principal, input)
	}
	return nil, nil
}

type mockTransactionService struct {
	createFn func(ctx context.Context, organizationID int64, input service.CreateTransactionInput) (*model.Transaction, error)
	listFn   func(ctx context.Context, organizationID int64) ([]model.Transaction, error)
}

func (m *mockTransactionService) Create(ctx context.Context, organizationID int64, input service.CreateTransactionInput) (*model.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(ctx, organizationID, input)
	}
	return nil, nil
}

func (m *mockTransactionService) List(ctx context.Context, organizationID int64) ([]model.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(ctx, organizationID)
	}
	return nil, nil
}

type mockExportService struct {
	exportFn func(ctx context.Context, organizationID int64, r ledger.Range) ([]byte, error)
}

func (m *mockExportService) Export(ctx context.Context, organizationID int64, r ledger.Range) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, organizationID, r)
	}
	return nil, nil
}

type mockSummaryService struct {
	computeFn func(ctx context.Context, organizationID int64) (*model.Summary, error)
}

func (m *mockSummaryService) Compute(ctx context.Context, organizationID int64) (*model.Summary, error) {
	if m.computeFn != nil {
		return m.computeFn(ctx, organizationID)
	}
	return nil, nil
}
