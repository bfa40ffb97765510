package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the cached cash-flow figures of one organization.
// It is rewritten every time the figures are computed.
type Summary struct {
	OrganizationID int64
	CashOnHand     int64
	MonthlyBurn    int64
	RunwayMonths   decimal.Decimal
	Currency       string
	UpdatedAt      time.Time
}
