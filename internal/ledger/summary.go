package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"runway.app/api/internal/model"
)

// Figures is the computed cash-flow triple for one organization.
type Figures struct {
	CashOnHand   int64
	MonthlyBurn  int64
	RunwayMonths decimal.Decimal
}

// Totals splits a transaction set into its income and expense sums.
type Totals struct {
	Income   int64
	Expenses int64
}

func (t Totals) Net() int64 {
	return t.Income - t.Expenses
}

func Sum(txns []model.Transaction) Totals {
	var totals Totals
	for _, txn := range txns {
		switch txn.Type {
		case model.TransactionTypeIncome:
			totals.Income += txn.Amount
		case model.TransactionTypeExpense:
			totals.Expenses += txn.Amount
		}
	}
	return totals
}

// Calculate derives the summary figures from the full transaction set.
//
// CashOnHand is the all-time net balance. MonthlyBurn sums expenses dated on
// or after MonthBefore(now). RunwayMonths is CashOnHand/MonthlyBurn rounded
// half away from zero to one decimal place, and exactly zero when there is
// no burn.
func Calculate(txns []model.Transaction, now time.Time) Figures {
	windowStart := MonthBefore(now)

	var burn int64
	for _, txn := range txns {
		if txn.Type == model.TransactionTypeExpense && !txn.OccurredAt.Before(windowStart) {
			burn += txn.Amount
		}
	}

	cash := Sum(txns).Net()

	return Figures{
		CashOnHand:   cash,
		MonthlyBurn:  burn,
		RunwayMonths: Runway(cash, burn),
	}
}

// Runway returns cash/burn rounded to one decimal, or zero when burn is zero.
func Runway(cash, burn int64) decimal.Decimal {
	if burn == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(cash).DivRound(decimal.NewFromInt(burn), 1)
}
