package export

import (
	"time"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
)

const (
	NoTransactionsMessage = "No transactions found for the selected period."
	dateLayout            = "2006-01-02"
)

// Document is the renderer-independent content of a transaction export.
type Document struct {
	Title       string
	Period      string
	GeneratedAt time.Time
	Rows        []Row
	Totals      *TotalsLine
}

type Row struct {
	Date        string
	Description string
	Type        string
	Currency    string
	Amount      string
}

type TotalsLine struct {
	Income   string
	Expenses string
	Net      string
}

// Build projects the already-selected transactions into document rows.
// txns must be in the order they should appear.
func Build(org model.Organization, txns []model.Transaction, r ledger.Range, generatedAt time.Time, f *AmountFormatter) Document {
	doc := Document{
		Title:       org.Name,
		Period:      DescribeRange(r),
		GeneratedAt: generatedAt,
		Rows:        make([]Row, 0, len(txns)),
	}

	for _, txn := range txns {
		doc.Rows = append(doc.Rows, Row{
			Date:        txn.OccurredAt.Format(dateLayout),
			Description: txn.Description,
			Type:        string(txn.Type),
			Currency:    txn.Currency,
			Amount:      f.Signed(txn),
		})
	}

	if len(txns) > 0 {
		totals := ledger.Sum(txns)
		doc.Totals = &TotalsLine{
			Income:   f.Format(totals.Income, org.DefaultCurrency),
			Expenses: f.Format(-totals.Expenses, org.DefaultCurrency),
			Net:      f.Format(totals.Net(), org.DefaultCurrency),
		}
	}

	return doc
}

func DescribeRange(r ledger.Range) string {
	switch {
	case r.From == nil && r.To == nil:
		return "All transactions"
	case r.To == nil:
		return "From " + r.From.Format(dateLayout)
	case r.From == nil:
		return "Through " + r.To.Format(dateLayout)
	default:
		return r.From.Format(dateLayout) + " to " + r.To.Format(dateLayout)
	}
}
