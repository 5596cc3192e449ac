package scheduler

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
)

type TenantLister interface {
	ListActive(ctx context.Context) ([]domain.Tenant, error)
}

type Closer interface {
	CloseDay(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error)
}

type State int

const (
	// Waiting ждём окна закрытия.
	Waiting State = iota
	// FiredToday закрытие уже запущено, держим паузу.
	FiredToday
)

func (s State) String() string {
	if s == FiredToday {
		return "fired_today"
	}
	return "waiting"
}

type Config struct {
	Hour         int
	Minute       int
	PollInterval time.Duration
	Hold         time.Duration
	Workers      int
}

// Scheduler closes every active tenant's day once per calendar day when
// the clock enters Hour:Minute. It polls, so the poll interval has to be
// shorter than the one-minute window.
type Scheduler struct {
	cfg        Config
	tenants    TenantLister
	closer     Closer
	clock      clock.Clock
	workerPool WorkerPoolI
	metrics    *metrics.Metrics

	state   State
	firedAt time.Time
	lastDay time.Time
}

func New(cfg Config, tenants TenantLister, closer Closer, clk clock.Clock, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		tenants:    tenants,
		closer:     closer,
		clock:      clk,
		workerPool: NewWorkerPool(cfg.Workers),
		metrics:    m,
		state:      Waiting,
	}
}

// Run blocks until ctx is canceled. A closing run that already started is
// finished before Run returns.
func (s *Scheduler) Run(ctx context.Context) {
	zap.L().Info("Closing scheduler started",
		zap.String("at", fmt.Sprintf("%02d:%02d", s.cfg.Hour, s.cfg.Minute)),
		zap.Duration("poll", s.cfg.PollInterval),
	)
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping closing scheduler")
			return
		case <-ticker.C:
			s.tick(ctx, s.clock.Now())
		}
	}
}

func (s *Scheduler) State() State {
	return s.state
}

// tick advances the state machine and reports whether a closing run fired.
func (s *Scheduler) tick(ctx context.Context, now time.Time) bool {
	if s.state == FiredToday {
		if now.Sub(s.firedAt) < s.cfg.Hold {
			return false
		}
		s.state = Waiting
	}

	if now.Hour() != s.cfg.Hour || now.Minute() != s.cfg.Minute {
		return false
	}
	day := domain.DateOf(now)
	if day.Equal(s.lastDay) {
		return false
	}

	s.state = FiredToday
	s.firedAt = now
	s.lastDay = day

	// Закрытие не прерываем на shutdown, иначе запись дня останется недописанной.
	s.closeAll(context.WithoutCancel(ctx), day)
	return true
}

func (s *Scheduler) closeAll(ctx context.Context, day time.Time) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ClosingDuration.Observe(time.Since(start).Seconds())
		}
	}()

	tenants, err := s.tenants.ListActive(ctx)
	if err != nil {
		zap.L().Error("Failed to list tenants for closing", zap.Error(err))
		s.count("error")
		return
	}
	zap.L().Info("Closing day", zap.String("date", day.Format(domain.DateLayout)), zap.Int("tenants", len(tenants)))

	var g errgroup.Group
	var wg sync.WaitGroup
	for _, tenant := range tenants {
		tenantID := tenant.ID
		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				return s.closeTenant(ctx, tenantID, day)
			})
			if err != nil {
				wg.Done()
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling closings", zap.Error(err))
	}
	wg.Wait()
}

func (s *Scheduler) closeTenant(ctx context.Context, tenantID int, day time.Time) error {
	if _, err := s.closer.CloseDay(ctx, tenantID, day); err != nil {
		s.count("error")
		return fmt.Errorf("close tenant %d: %w", tenantID, err)
	}
	s.count("ok")
	return nil
}

func (s *Scheduler) count(result string) {
	if s.metrics != nil {
		s.metrics.Closings.WithLabelValues(result).Inc()
	}
}
