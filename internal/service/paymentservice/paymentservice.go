package paymentservice

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
)

// MaxExternalIDLen ограничение длины идентификатора платежа шлюза.
const MaxExternalIDLen = 128

// MaxAmount is the largest value the NUMERIC(14,2) amount column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

type Repo interface {
	Insert(ctx context.Context, payment *domain.Payment) (bool, error)
	Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
	ListByDay(ctx context.Context, tenantID int, date time.Time) ([]domain.Payment, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// RecordPayment persists a confirmed payment at most once per
// (tenant, externalID). The payment date is the calendar day of receivedAt
// in receivedAt's location, so callers pass a time in the business zone.
func (s *Service) RecordPayment(ctx context.Context, tenantID int, externalID string, amount decimal.Decimal, status string, receivedAt time.Time) (*domain.Payment, bool, error) {
	if tenantID <= 0 {
		return nil, false, fmt.Errorf("%w: tenant id must be positive", domain.ErrValidation)
	}
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, false, fmt.Errorf("%w: payment id is required", domain.ErrValidation)
	}
	if len(externalID) > MaxExternalIDLen {
		return nil, false, fmt.Errorf("%w: payment id longer than %d", domain.ErrValidation, MaxExternalIDLen)
	}
	if amount.IsNegative() {
		return nil, false, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if amount.GreaterThan(MaxAmount) {
		return nil, false, fmt.Errorf("%w: amount exceeds %s", domain.ErrValidation, MaxAmount.StringFixed(2))
	}
	// копейки не округляем: шлюз обязан прислать сумму в центах
	if !amount.Equal(amount.Round(2)) {
		return nil, false, fmt.Errorf("%w: amount has more than 2 decimal places", domain.ErrValidation)
	}
	if status == "" {
		status = domain.StatusConfirmed
	}

	payment := &domain.Payment{
		TenantID:    tenantID,
		ExternalID:  externalID,
		Amount:      amount.Round(2),
		Status:      status,
		PaymentDate: domain.DateOf(receivedAt),
		ReceivedAt:  receivedAt,
	}

	inserted, err := s.repo.Insert(ctx, payment)
	if err != nil {
		zap.L().Error("can't record payment", zap.Int("tenant_id", tenantID), zap.String("external_id", externalID), zap.Error(err))
		return nil, false, err
	}
	if !inserted {
		zap.L().Info("duplicate payment ignored", zap.Int("tenant_id", tenantID), zap.String("external_id", externalID))
	}
	return payment, inserted, nil
}

func (s *Service) DailySummary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error) {
	summary, err := s.repo.Summary(ctx, tenantID, domain.DateOf(date))
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Service) ListPayments(ctx context.Context, tenantID int, date time.Time) ([]domain.Payment, error) {
	payments, err := s.repo.ListByDay(ctx, tenantID, domain.DateOf(date))
	if err != nil {
		zap.L().Error("failed to list payments", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, err
	}
	return payments, nil
}
