package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"runway.app/api/common/logger"
	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
)

type SummaryService interface {
	// Compute recalculates the organization's figures from its full ledger,
	// writes them to the summary cache and returns what was written.
	Compute(ctx context.Context, organizationID int64) (*model.Summary, error)
}

type summaryService struct {
	stores store.Provider
	now    func() time.Time
}

func NewSummaryService(stores store.Provider, now func() time.Time) SummaryService {
	return &summaryService{stores: stores, now: now}
}

func (s *summaryService) Compute(ctx context.Context, organizationID int64) (result *model.Summary, err error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &organizationID, Component: "runway.service.summary"})
	sc := logger.StartSpan(ctx, "summary.compute")
	defer sc.End()
	ctx = sc.Context()
	defer func() { sc.RecordError(err) }()

	org, txns, err := loadLedger(ctx, s.stores, organizationID, ledger.Range{})
	if err != nil {
		return nil, err
	}

	figures := ledger.Calculate(txns, s.now())

	summary := &model.Summary{
		OrganizationID: organizationID,
		CashOnHand:     figures.CashOnHand,
		MonthlyBurn:    figures.MonthlyBurn,
		RunwayMonths:   figures.RunwayMonths,
		Currency:       org.DefaultCurrency,
	}
	if err := s.stores.Summaries().Upsert(ctx, summary); err != nil {
		return nil, fmt.Errorf("caching summary: %w", err)
	}

	slog.DebugContext(ctx, "summary computed",
		"transactions", len(txns),
		"cash_on_hand", summary.CashOnHand,
		"monthly_burn", summary.MonthlyBurn,
		"runway_months", summary.RunwayMonths.String())
	return summary, nil
}

// loadLedger fetches the organization and its transactions in r concurrently.
func loadLedger(ctx context.Context, stores store.Provider, organizationID int64, r ledger.Range) (*model.Organization, []model.Transaction, error) {
	var (
		org  *model.Organization
		txns []model.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		org, err = getOrganization(gctx, stores.Organizations(), organizationID)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = stores.Transactions().List(gctx, organizationID, r)
		if err != nil {
			return fmt.Errorf("listing transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return org, txns, nil
}
