package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/broadcast"
	"github.com/GlebRadaev/pixcontrol/internal/config"
	"github.com/GlebRadaev/pixcontrol/internal/handlers"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
	"github.com/GlebRadaev/pixcontrol/internal/pg"
	"github.com/GlebRadaev/pixcontrol/internal/repo"
	"github.com/GlebRadaev/pixcontrol/internal/scheduler"
	"github.com/GlebRadaev/pixcontrol/internal/service"
	"github.com/GlebRadaev/pixcontrol/pkg/audit"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
	"github.com/GlebRadaev/pixcontrol/pkg/logger"
	"github.com/GlebRadaev/pixcontrol/pkg/ratelimit"
	"github.com/GlebRadaev/pixcontrol/pkg/signature"
)

const (
	shutdownTimeout = 5 * time.Second
	rateLimitPrefix = "pixcontrol:webhook"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	hub   *broadcast.Hub
	sched *scheduler.Scheduler

	pool  *pgxpool.Pool
	redis *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	clk := clock.New(cfg.Location)
	auditLog := audit.NewStdout()

	conn := pg.New(pool)
	a.cfg = cfg
	a.hub = broadcast.New(cfg.ViewerBuffer, m)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, signature.NewVerifier(cfg.WebhookSecret), a.hub, clk, auditLog)
	a.api = handlers.New(a.srv, handlers.Options{
		DefaultTenantID: cfg.DefaultTenantID,
		MaxBody:         cfg.WebhookMaxBody,
		Production:      cfg.Production(),
		JWT:             auth.NewJWTService(cfg.JWTSecret),
		Limiter:         a.newLimiter(ctx),
		Hub:             a.hub,
		Auditor:         auditLog,
		Metrics:         m,
		Gatherer:        reg,
	})
	a.sched = scheduler.New(scheduler.Config{
		Hour:         cfg.ClosingHour,
		Minute:       cfg.ClosingMinute,
		PollInterval: cfg.ClosingPollInterval,
		Hold:         cfg.ClosingHold,
		Workers:      cfg.ClosingWorkers,
	}, a.repo.TenantRepo, a.srv.ClosingService, clk, m)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("timezone", cfg.Location.String()),
		zap.String("closing_at", fmt.Sprintf("%02d:%02d", cfg.ClosingHour, cfg.ClosingMinute)),
	)
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// newLimiter returns nil when limiting is off. With REDIS_URL the counters
// are shared between instances, otherwise each process counts on its own.
func (a *Application) newLimiter(ctx context.Context) ratelimit.Limiter {
	if a.cfg.WebhookRateLimit == 0 {
		return nil
	}
	if a.cfg.RedisURL == "" {
		return ratelimit.NewMemory(a.cfg.WebhookRateLimit, a.cfg.WebhookRateWindow)
	}

	opts, err := redis.ParseURL(a.cfg.RedisURL)
	if err != nil {
		zap.L().Warn("bad REDIS_URL, using in-memory rate limiter", zap.Error(err))
		return ratelimit.NewMemory(a.cfg.WebhookRateLimit, a.cfg.WebhookRateWindow)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, using in-memory rate limiter", zap.Error(err))
		_ = client.Close()
		return ratelimit.NewMemory(a.cfg.WebhookRateLimit, a.cfg.WebhookRateWindow)
	}
	a.redis = client
	return ratelimit.NewRedis(client, rateLimitPrefix, a.cfg.WebhookRateLimit, a.cfg.WebhookRateWindow)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// live-стрим снимает дедлайн записи для себя сам
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	// SSE-соединения никогда не простаивают, Shutdown их не дождётся
	server.RegisterOnShutdown(a.hub.CloseAll)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sched.Run(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.release()
	return appErr
}

func (a *Application) release() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("redis close", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
