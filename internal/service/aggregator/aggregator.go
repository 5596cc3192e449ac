package aggregator

//go:generate mockgen -source=aggregator.go -destination=mock_aggregator.go -package=aggregator

import (
	"context"
	"time"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
)

type Store interface {
	DailySummary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
}

// Service is the only place daily totals are read from. Totals are derived
// from stored payments on every call, there is no running counter.
type Service struct {
	store Store
	clock clock.Clock
}

func New(store Store, clk clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clk,
	}
}

func (s *Service) Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error) {
	return s.store.DailySummary(ctx, tenantID, domain.DateOf(date))
}

func (s *Service) Today(ctx context.Context, tenantID int) (*domain.DailySummary, error) {
	return s.Summary(ctx, tenantID, s.TodayDate())
}

// TodayDate is the current business day.
func (s *Service) TodayDate() time.Time {
	return domain.DateOf(s.clock.Now())
}
