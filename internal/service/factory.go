package service

import (
	"time"

	"runway.app/api/common/password"
	"runway.app/api/common/token"
	"runway.app/api/internal/export"
	"runway.app/api/internal/store"
)

type ServicesConfig struct {
	Stores          store.Provider
	TxRunner        TxRunner
	Revocations     store.RevocationStore
	Tokens          *token.Manager
	Passwords       *password.Hasher
	Formatter       *export.AmountFormatter
	Renderer        *export.Renderer
	DefaultCurrency string
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type Services struct {
	auth          AuthService
	organizations OrganizationService
	transactions  TransactionService
	summaries     SummaryService
	exports       ExportService
}

func NewServices(cfg ServicesConfig) *Services {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Services{
		auth:          NewAuthService(cfg.Stores, cfg.TxRunner, cfg.Revocations, cfg.Tokens, cfg.Passwords, cfg.DefaultCurrency),
		organizations: NewOrganizationService(cfg.Stores, cfg.TxRunner, cfg.DefaultCurrency),
		transactions:  NewTransactionService(cfg.Stores, now),
		summaries:     NewSummaryService(cfg.Stores, now),
		exports:       NewExportService(cfg.Stores, cfg.Formatter, cfg.Renderer, now),
	}
}

func (s *Services) Auth() AuthService {
	return s.auth
}

func (s *Services) Organizations() OrganizationService {
	return s.organizations
}

func (s *Services) Transactions() TransactionService {
	return s.transactions
}

func (s *Services) Summaries() SummaryService {
	return s.summaries
}

func (s *Services) Exports() ExportService {
	return s.exports
}
