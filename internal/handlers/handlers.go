package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/pixcontrol/docs"
	dashboardhandlers "github.com/GlebRadaev/pixcontrol/internal/handlers/dashboard"
	livehandlers "github.com/GlebRadaev/pixcontrol/internal/handlers/live"
	reportshandlers "github.com/GlebRadaev/pixcontrol/internal/handlers/reports"
	webhookhandlers "github.com/GlebRadaev/pixcontrol/internal/handlers/webhook"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
	"github.com/GlebRadaev/pixcontrol/internal/service"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/ratelimit"
	"github.com/GlebRadaev/pixcontrol/pkg/utils"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type LiveHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Payments(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	CloseToday(w http.ResponseWriter, r *http.Request)
}

type Options struct {
	DefaultTenantID int
	MaxBody         int64
	Production      bool
	JWT             auth.JWTServiceInterface
	Limiter         ratelimit.Limiter
	Hub             livehandlers.Hub
	Auditor         webhookhandlers.Auditor
	Metrics         *metrics.Metrics
	Gatherer        prometheus.Gatherer
}

type Handlers struct {
	WebhookHandler   WebhookHandler
	LiveHandler      LiveHandler
	DashboardHandler DashboardHandler
	ReportHandler    ReportHandler

	jwt        auth.JWTServiceInterface
	limiter    ratelimit.Limiter
	gatherer   prometheus.Gatherer
	production bool
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		WebhookHandler:   webhookhandlers.New(s.WebhookService, opts.Auditor, opts.Metrics, opts.DefaultTenantID, opts.MaxBody),
		LiveHandler:      livehandlers.New(s.DashboardService, opts.Hub),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		ReportHandler:    reportshandlers.New(s.ClosingService, s.PaymentService),
		jwt:              opts.JWT,
		limiter:          opts.Limiter,
		gatherer:         opts.Gatherer,
		production:       opts.Production,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		RequestLogger(),
		middleware.Recoverer,
		SecurityHeaders(h.production),
	)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
	})
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/webhook/pix", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimit.Middleware(h.limiter))
		}
		r.Post("/", h.WebhookHandler.Receive)
		r.Post("/{tenantID}", h.WebhookHandler.Receive)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwt))
		r.Get("/live", h.LiveHandler.Stream)
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/today", h.DashboardHandler.Today)
			r.Get("/{date}", h.DashboardHandler.ByDate)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleManager))
			r.Get("/", h.ReportHandler.History)
			r.Get("/{date}", h.ReportHandler.Report)
			r.Get("/{date}/summary", h.ReportHandler.Summary)
			r.Get("/{date}/payments", h.ReportHandler.Payments)
			r.Post("/today/close", h.ReportHandler.CloseToday)
			r.Post("/{date}/close", h.ReportHandler.Close)
		})
	})

	return r
}

// SecurityHeaders sets the browser hardening headers on every response.
// HSTS only makes sense behind TLS, so it is sent in production only.
func SecurityHeaders(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Referrer-Policy", "strict-origin")
			if production {
				w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
