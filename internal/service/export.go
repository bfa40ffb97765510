package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"runway.app/api/common/logger"
	"runway.app/api/internal/export"
	"runway.app/api/internal/ledger"
	"runway.app/api/internal/store"
)

type ExportService interface {
	// Export renders the organization's transactions in r as a PDF, oldest first.
	// It never writes to the stores.
	Export(ctx context.Context, organizationID int64, r ledger.Range) ([]byte, error)
}

type exportService struct {
	stores    store.Provider
	formatter *export.AmountFormatter
	renderer  *export.Renderer
	now       func() time.Time
}

func NewExportService(stores store.Provider, formatter *export.AmountFormatter, renderer *export.Renderer, now func() time.Time) ExportService {
	return &exportService{stores: stores, formatter: formatter, renderer: renderer, now: now}
}

func (s *exportService) Export(ctx context.Context, organizationID int64, r ledger.Range) (pdf []byte, err error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &organizationID, Component: "runway.service.export"})
	sc := logger.StartSpan(ctx, "export.render")
	defer sc.End()
	ctx = sc.Context()
	defer func() { sc.RecordError(err) }()

	org, txns, err := loadLedger(ctx, s.stores, organizationID, r)
	if err != nil {
		return nil, err
	}
	ledger.SortChronological(txns)

	doc := export.Build(*org, txns, r, s.now(), s.formatter)
	pdf, err = s.renderer.RenderBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering export: %w", err)
	}

	slog.InfoContext(ctx, "transactions exported", "rows", len(doc.Rows), "bytes", len(pdf))
	return pdf, nil
}
