package dto

import (
	"time"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
)

type SummaryResponseDTO struct {
	Date  string `json:"date" example:"2024-03-10"`
	Total string `json:"total" example:"15.50"`
	Count int    `json:"count" example:"2"`
}

type PaymentResponseDTO struct {
	PaymentID  string `json:"paymentId" example:"abc123"`
	Amount     string `json:"amount" example:"10.50"`
	Status     string `json:"status" example:"CONFIRMED"`
	Time       string `json:"time" example:"14:30:05"`
	ReceivedAt string `json:"received_at" example:"2024-03-10T14:30:05-03:00"`
}

type ClosingResponseDTO struct {
	Date     string `json:"date" example:"2024-03-10"`
	Total    string `json:"total" example:"15.50"`
	Count    int    `json:"count" example:"2"`
	ClosedAt string `json:"closed_at" example:"2024-03-10T23:59:05-03:00"`
}

type ReportResponseDTO struct {
	Date     string               `json:"date" example:"2024-03-10"`
	Closed   bool                 `json:"closed" example:"true"`
	Closing  *ClosingResponseDTO  `json:"closing,omitempty"`
	Summary  SummaryResponseDTO   `json:"summary"`
	Payments []PaymentResponseDTO `json:"payments"`
}

func Summary(s *domain.DailySummary) SummaryResponseDTO {
	return SummaryResponseDTO{
		Date:  s.Date.Format(domain.DateLayout),
		Total: s.TotalAmount.StringFixed(2),
		Count: s.Count,
	}
}

func Payment(p domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		PaymentID:  p.ExternalID,
		Amount:     p.Amount.StringFixed(2),
		Status:     p.Status,
		Time:       p.ReceivedAt.Format(domain.TimeLayout),
		ReceivedAt: p.ReceivedAt.Format(time.RFC3339),
	}
}

func Payments(payments []domain.Payment) []PaymentResponseDTO {
	out := make([]PaymentResponseDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, Payment(p))
	}
	return out
}

func Closing(c *domain.ClosingRecord) *ClosingResponseDTO {
	if c == nil {
		return nil
	}
	return &ClosingResponseDTO{
		Date:     c.Date.Format(domain.DateLayout),
		Total:    c.TotalAmount.StringFixed(2),
		Count:    c.Count,
		ClosedAt: c.ClosedAt.Format(time.RFC3339),
	}
}
