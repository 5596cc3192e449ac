package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// StatusConfirmed платёж подтверждён шлюзом.
	StatusConfirmed string = "CONFIRMED"

	// DateLayout формат календарной даты в путях и отчётах.
	DateLayout = "2006-01-02"
	// TimeLayout формат времени суток в live-событиях.
	TimeLayout = "15:04:05"
)

type Tenant struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type Payment struct {
	ID          int             `db:"id"`
	TenantID    int             `db:"tenant_id"`
	ExternalID  string          `db:"external_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	PaymentDate time.Time       `db:"payment_date"`
	ReceivedAt  time.Time       `db:"received_at"`
}

// DailySummary is computed from payments on every read and never stored.
type DailySummary struct {
	TenantID    int
	Date        time.Time
	TotalAmount decimal.Decimal
	Count       int
}

type ClosingRecord struct {
	TenantID    int             `db:"tenant_id"`
	Date        time.Time       `db:"closing_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Count       int             `db:"payment_count"`
	ClosedAt    time.Time       `db:"closed_at"`
}

// LiveEvent is pushed to every viewer of a tenant after a new payment.
type LiveEvent struct {
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	Time       string `json:"time"`
	DailyTotal string `json:"dailyTotal"`
	DailyCount int    `json:"dailyCount"`
}

// DateOf returns the calendar date of t in t's location as midnight UTC,
// the form pgx uses for DATE columns.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
