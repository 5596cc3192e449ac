package repo

import (
	"github.com/GlebRadaev/pixcontrol/internal/pg"
	closingrepo "github.com/GlebRadaev/pixcontrol/internal/repo/closing-repo"
	paymentrepo "github.com/GlebRadaev/pixcontrol/internal/repo/payment-repo"
	tenantrepo "github.com/GlebRadaev/pixcontrol/internal/repo/tenant-repo"
	"github.com/GlebRadaev/pixcontrol/internal/scheduler"
	"github.com/GlebRadaev/pixcontrol/internal/service/closingservice"
	"github.com/GlebRadaev/pixcontrol/internal/service/paymentservice"
)

type Repositories struct {
	PaymentRepo paymentservice.Repo
	ClosingRepo closingservice.Repo
	TenantRepo  scheduler.TenantLister
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PaymentRepo: paymentrepo.New(conn),
		ClosingRepo: closingrepo.New(conn, txManager),
		TenantRepo:  tenantrepo.New(conn),
	}
}
