package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert stores the payment unless (tenant_id, external_id) already exists.
// The unique constraint decides between concurrent deliveries, so a losing
// insert reports false and no error.
func (r *Repository) Insert(ctx context.Context, payment *domain.Payment) (bool, error) {
	query := `
        INSERT INTO payments (tenant_id, external_id, amount, status, payment_date, received_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (tenant_id, external_id) DO NOTHING
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		payment.TenantID,
		payment.ExternalID,
		payment.Amount,
		payment.Status,
		payment.PaymentDate,
		payment.ReceivedAt,
	)
	err := row.Scan(&payment.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't insert payment", zap.Int("tenant_id", payment.TenantID), zap.Error(err))
		return false, pg.Classify(err)
	}
	return true, nil
}

func (r *Repository) Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM payments
        WHERE tenant_id = $1 AND payment_date = $2
    `
	summary := domain.DailySummary{
		TenantID: tenantID,
		Date:     date,
	}
	err := r.db.QueryRow(ctx, query, tenantID, date).Scan(&summary.TotalAmount, &summary.Count)
	if err != nil {
		zap.L().Error("can't compute daily summary", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, pg.Classify(err)
	}
	return &summary, nil
}

func (r *Repository) ListByDay(ctx context.Context, tenantID int, date time.Time) ([]domain.Payment, error) {
	query := `
        SELECT id, tenant_id, external_id, amount, status, payment_date, received_at
        FROM payments
        WHERE tenant_id = $1 AND payment_date = $2
        ORDER BY received_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, tenantID, date)
	if err != nil {
		zap.L().Error("can't list payments", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.TenantID, &p.ExternalID, &p.Amount, &p.Status, &p.PaymentDate, &p.ReceivedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.Classify(err)
	}
	return payments, nil
}
