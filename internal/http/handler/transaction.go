package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/dto"
	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

const dateLayout = "2006-01-02"

type TransactionHandler struct {
	txnService    service.TransactionService
	exportService service.ExportService
}

func NewTransactionHandler(txnService service.TransactionService, exportService service.ExportService) *TransactionHandler {
	return &TransactionHandler{txnService: txnService, exportService: exportService}
}

func (h *TransactionHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	txns, err := h.txnService.List(c.Request.Context(), p.OrganizationID)
	if err != nil {
		respondError(c, err, "failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

func (h *TransactionHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.txnService.Create(c.Request.Context(), p.OrganizationID, service.CreateTransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        model.TransactionType(req.Type),
		OccurredAt:  req.OccurredAt,
		Currency:    req.Currency,
	})
	if err != nil {
		respondError(c, err, "failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *TransactionHandler) Export(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	r, fields := parseRange(query)
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	pdf, err := h.exportService.Export(c.Request.Context(), p.OrganizationID, r)
	if err != nil {
		respondError(c, err, "failed to export transactions")
		return
	}

	filename := fmt.Sprintf("transactions-%s.pdf", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// parseRange reads the export bounds. A bare date as the upper bound covers
// that whole day.
func parseRange(query dto.ExportQuery) (ledger.Range, map[string]string) {
	var r ledger.Range
	fields := map[string]string{}

	if query.From != "" {
		from, _, err := parseBound(query.From)
		if err != nil {
			fields["from"] = "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
		} else {
			r.From = &from
		}
	}

	if query.To != "" {
		to, dateOnly, err := parseBound(query.To)
		if err != nil {
			fields["to"] = "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
		} else {
			if dateOnly {
				to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			r.To = &to
		}
	}

	return r, fields
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}
