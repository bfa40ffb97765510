package ledger

import (
	"cmp"
	"slices"
	"time"

	"runway.app/api/internal/model"
)

// Range bounds a selection of transactions by OccurredAt. Both ends are
// inclusive and either may be nil for an open side. A range whose From is
// after its To selects nothing.
type Range struct {
	From *time.Time
	To   *time.Time
}

func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

func (r Range) Empty() bool {
	return r.From != nil && r.To != nil && r.From.After(*r.To)
}

// Select returns the transactions inside r ordered by OccurredAt, ties by ID.
// The input slice is not modified.
func Select(txns []model.Transaction, r Range) []model.Transaction {
	selected := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if r.Contains(txn.OccurredAt) {
			selected = append(selected, txn)
		}
	}
	SortChronological(selected)
	return selected
}

func SortChronological(txns []model.Transaction) {
	slices.SortFunc(txns, func(a, b model.Transaction) int {
		if c := a.OccurredAt.Compare(b.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// SortNewestFirst orders by OccurredAt descending, ties by ID descending.
func SortNewestFirst(txns []model.Transaction) {
	slices.SortFunc(txns, func(a, b model.Transaction) int {
		if c := b.OccurredAt.Compare(a.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
