package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest whole-unit amount a single transaction may carry.
// It leaves int64 headroom for summing thousands of maximal entries.
const MaxAmount int64 = 1_000_000_000_000_000

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrAmountTooLarge    = errors.New("amount must be at most 1000000000000000")
)

// WholeUnits rounds a submitted amount to the nearest whole currency unit,
// half away from zero. Amounts that are not positive, that round to zero, or
// that exceed MaxAmount are rejected since a stored amount must stay positive
// and exact.
func WholeUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ErrNonPositiveAmount
	}
	rounded := amount.Round(0)
	if !rounded.IsPositive() {
		return 0, ErrNonPositiveAmount
	}
	if rounded.GreaterThan(decimal.NewFromInt(MaxAmount)) {
		return 0, ErrAmountTooLarge
	}
	return rounded.IntPart(), nil
}
