package webhookservice

//go:generate mockgen -source=webhookservice.go -destination=mock_webhookservice.go -package=webhookservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
	"github.com/GlebRadaev/pixcontrol/pkg/validate"
)

type Verifier interface {
	Verify(body []byte, sig string) bool
}

type Recorder interface {
	RecordPayment(ctx context.Context, tenantID int, externalID string, amount decimal.Decimal, status string, receivedAt time.Time) (*domain.Payment, bool, error)
}

type Aggregator interface {
	Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
}

type Publisher interface {
	Publish(tenantID int, event domain.LiveEvent)
}

// payload тело уведомления платёжного шлюза.
type payload struct {
	PaymentID string      `json:"paymentId" validate:"required,max=128"`
	Amount    json.Number `json:"amount"`
	Status    string      `json:"status" validate:"omitempty,max=32"`
}

type Result struct {
	Payment  *domain.Payment
	Inserted bool
	// Summary is nil for duplicates and when the post-insert read failed.
	Summary *domain.DailySummary
}

type Service struct {
	verifier   Verifier
	recorder   Recorder
	aggregator Aggregator
	publisher  Publisher
	clock      clock.Clock
}

func New(verifier Verifier, recorder Recorder, aggregator Aggregator, publisher Publisher, clk clock.Clock) *Service {
	return &Service{
		verifier:   verifier,
		recorder:   recorder,
		aggregator: aggregator,
		publisher:  publisher,
		clock:      clk,
	}
}

// VerifyAndRecord authenticates a raw webhook body, stores the payment once
// and pushes the new daily total to the tenant's viewers.
// A repeated delivery succeeds with Inserted=false and publishes nothing.
func (s *Service) VerifyAndRecord(ctx context.Context, tenantID int, rawBody []byte, sig string) (*Result, error) {
	if !s.verifier.Verify(rawBody, sig) {
		return nil, domain.ErrUnauthenticated
	}

	p, amount, err := decode(rawBody)
	if err != nil {
		return nil, err
	}

	payment, inserted, err := s.recorder.RecordPayment(ctx, tenantID, p.PaymentID, amount, p.Status, s.clock.Now())
	if err != nil {
		return nil, err
	}
	result := &Result{Payment: payment, Inserted: inserted}
	if !inserted {
		return result, nil
	}

	// Платёж уже сохранён: ошибки ниже только логируем.
	summary, err := s.aggregator.Summary(ctx, tenantID, payment.PaymentDate)
	if err != nil {
		zap.L().Warn("payment stored but daily summary unavailable",
			zap.Int("tenant_id", tenantID), zap.String("external_id", payment.ExternalID), zap.Error(err))
		return result, nil
	}
	result.Summary = summary

	s.publisher.Publish(tenantID, domain.LiveEvent{
		Amount:     payment.Amount.StringFixed(2),
		Status:     payment.Status,
		Time:       payment.ReceivedAt.Format(domain.TimeLayout),
		DailyTotal: summary.TotalAmount.StringFixed(2),
		DailyCount: summary.Count,
	})
	return result, nil
}

func decode(body []byte) (*payload, decimal.Decimal, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: malformed body: %v", domain.ErrValidation, err)
	}
	if err := validate.Struct(p); err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	amount := decimal.Zero
	if p.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(p.Amount.String())
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("%w: amount: %v", domain.ErrValidation, err)
		}
	}
	return &p, amount, nil
}
