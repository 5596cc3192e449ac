package service

import (
	"github.com/GlebRadaev/pixcontrol/internal/handlers/dashboard"
	"github.com/GlebRadaev/pixcontrol/internal/handlers/reports"
	"github.com/GlebRadaev/pixcontrol/internal/handlers/webhook"
	"github.com/GlebRadaev/pixcontrol/internal/repo"
	"github.com/GlebRadaev/pixcontrol/internal/service/aggregator"
	"github.com/GlebRadaev/pixcontrol/internal/service/closingservice"
	"github.com/GlebRadaev/pixcontrol/internal/service/paymentservice"
	"github.com/GlebRadaev/pixcontrol/internal/service/webhookservice"
	"github.com/GlebRadaev/pixcontrol/pkg/clock"
)

type Services struct {
	WebhookService   webhook.Service
	DashboardService dashboard.Service
	PaymentService   reports.PaymentService
	ClosingService   reports.ClosingService
}

// New wires the core: payments feed the aggregator, the aggregator feeds
// both the live path and the closing path.
func New(repo *repo.Repositories, verifier webhookservice.Verifier, publisher webhookservice.Publisher, clk clock.Clock, auditor closingservice.Auditor) *Services {
	paymentService := paymentservice.New(repo.PaymentRepo)
	aggregatorService := aggregator.New(paymentService, clk)
	closingService := closingservice.New(repo.ClosingRepo, aggregatorService, paymentService, clk, auditor)
	webhookService := webhookservice.New(verifier, paymentService, aggregatorService, publisher, clk)

	return &Services{
		WebhookService:   webhookService,
		DashboardService: aggregatorService,
		PaymentService:   paymentService,
		ClosingService:   closingService,
	}
}
