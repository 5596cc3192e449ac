package closingservice

//go:generate mockgen -source=closingservice.go -destination=mock_closingservice.go -package=closingservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/pkg/audit"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 366
)

type Repo interface {
	Upsert(ctx context.Context, record *domain.ClosingRecord) error
	FindByDay(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error)
	ListRecent(ctx context.Context, tenantID int, limit int) ([]domain.ClosingRecord, error)
}

type Aggregator interface {
	Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
	TodayDate() time.Time
}

type PaymentLister interface {
	ListPayments(ctx context.Context, tenantID int, date time.Time) ([]domain.Payment, error)
}

type Auditor interface {
	Log(action string, tenantID int, ip string, extra map[string]any)
}

// Report is what a manager sees for one day. Closing is nil when the day
// has not been closed yet; Summary is always the live figure.
type Report struct {
	Closing  *domain.ClosingRecord
	Summary  *domain.DailySummary
	Payments []domain.Payment
}

type Service struct {
	repo       Repo
	aggregator Aggregator
	payments   PaymentLister
	clock      clock.Clock
	auditor    Auditor
}

func New(repo Repo, aggregator Aggregator, payments PaymentLister, clk clock.Clock, auditor Auditor) *Service {
	return &Service{
		repo:       repo,
		aggregator: aggregator,
		payments:   payments,
		clock:      clk,
		auditor:    auditor,
	}
}

// CloseDay snapshots the day's totals. Closing the same day again
// overwrites the previous snapshot.
func (s *Service) CloseDay(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error) {
	date = domain.DateOf(date)
	summary, err := s.aggregator.Summary(ctx, tenantID, date)
	if err != nil {
		zap.L().Error("can't read summary for closing", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, err
	}

	record := &domain.ClosingRecord{
		TenantID:    tenantID,
		Date:        date,
		TotalAmount: summary.TotalAmount,
		Count:       summary.Count,
		ClosedAt:    s.clock.Now(),
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("close day %s: %w", date.Format(domain.DateLayout), err)
	}

	zap.L().Info("day closed",
		zap.Int("tenant_id", tenantID),
		zap.String("date", date.Format(domain.DateLayout)),
		zap.String("total", record.TotalAmount.StringFixed(2)),
		zap.Int("count", record.Count),
	)
	s.auditor.Log(audit.ActionDayClosed, tenantID, "", map[string]any{
		"date":  date.Format(domain.DateLayout),
		"total": record.TotalAmount.StringFixed(2),
		"count": record.Count,
	})
	return record, nil
}

func (s *Service) CloseToday(ctx context.Context, tenantID int) (*domain.ClosingRecord, error) {
	return s.CloseDay(ctx, tenantID, s.aggregator.TodayDate())
}

func (s *Service) GetClosing(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error) {
	return s.repo.FindByDay(ctx, tenantID, domain.DateOf(date))
}

// Report never writes a closing.
func (s *Service) Report(ctx context.Context, tenantID int, date time.Time) (*Report, error) {
	date = domain.DateOf(date)
	closing, err := s.GetClosing(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	summary, err := s.aggregator.Summary(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListPayments(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}
	return &Report{
		Closing:  closing,
		Summary:  summary,
		Payments: payments,
	}, nil
}

func (s *Service) History(ctx context.Context, tenantID int, limit int) ([]domain.ClosingRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.ListRecent(ctx, tenantID, limit)
}
