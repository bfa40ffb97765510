package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"runway.app/api/common/id"
	"runway.app/api/common/logger"
	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

type CreateTransactionInput struct {
	Description string
	Amount      *decimal.Decimal
	Type        model.TransactionType
	// OccurredAt defaults to now.
	OccurredAt *time.Time
	// Currency defaults to the organization's default currency.
	Currency *string
}

type TransactionService interface {
	Create(ctx context.Context, organizationID int64, input CreateTransactionInput) (*model.Transaction, error)
	// List returns the organization's transactions, newest first.
	List(ctx context.Context, organizationID int64) ([]model.Transaction, error)
}

type transactionService struct {
	stores store.Provider
	now    func() time.Time
}

func NewTransactionService(stores store.Provider, now func() time.Time) TransactionService {
	return &transactionService{stores: stores, now: now}
}

func (s *transactionService) Create(ctx context.Context, organizationID int64, input CreateTransactionInput) (*model.Transaction, error) {
	errs := fieldErrors{}
	description := checkText(errs, "description", input.Description, 2, 255)

	var amount int64
	if input.Amount == nil {
		errs.add("amount", "is required")
	} else {
		units, err := ledger.WholeUnits(*input.Amount)
		if err != nil {
			errs.add("amount", err.Error())
		}
		amount = units
	}

	if !input.Type.Valid() {
		errs.add("type", "must be INCOME or EXPENSE")
	}

	var currency string
	if input.Currency != nil {
		code, ok := normalizeCurrency(*input.Currency)
		if !ok {
			errs.add("currency", "must be a 3-letter ISO 4217 code")
		}
		currency = code
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	if currency == "" {
		org, err := getOrganization(ctx, s.stores.Organizations(), organizationID)
		if err != nil {
			return nil, err
		}
		currency = org.DefaultCurrency
	}

	occurredAt := s.now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	txn := &model.Transaction{
		ID:             id.New(),
		OrganizationID: organizationID,
		Description:    description,
		Amount:         amount,
		Currency:       currency,
		Type:           input.Type,
		OccurredAt:     occurredAt.UTC(),
	}
	if err := s.stores.Transactions().Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TransactionID: &txn.ID})
	slog.InfoContext(ctx, "transaction recorded", "type", txn.Type, "amount", txn.Amount, "currency", txn.Currency)
	return txn, nil
}

func (s *transactionService) List(ctx context.Context, organizationID int64) ([]model.Transaction, error) {
	txns, err := s.stores.Transactions().ListNewestFirst(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txns, nil
}
