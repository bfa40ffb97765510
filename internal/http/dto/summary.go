package dto

import (
	"time"

	"runway.app/api/internal/model"
)

type SummaryResponse struct {
	CashOnHand   int64     `json:"cash_on_hand"`
	MonthlyBurn  int64     `json:"monthly_burn"`
	RunwayMonths float64   `json:"runway_months"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToSummaryResponse(s *model.Summary) SummaryResponse {
	return SummaryResponse{
		CashOnHand:   s.CashOnHand,
		MonthlyBurn:  s.MonthlyBurn,
		RunwayMonths: s.RunwayMonths.InexactFloat64(),
		Currency:     s.Currency,
		UpdatedAt:    s.UpdatedAt,
	}
}
