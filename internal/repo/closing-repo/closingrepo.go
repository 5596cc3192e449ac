package closingrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Upsert replaces the snapshot for (tenant, date). The newest closing wins.
func (r *Repository) Upsert(ctx context.Context, record *domain.ClosingRecord) error {
	query := `
        INSERT INTO closings (tenant_id, closing_date, total_amount, payment_count, closed_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (tenant_id, closing_date) DO UPDATE
        SET total_amount = EXCLUDED.total_amount,
            payment_count = EXCLUDED.payment_count,
            closed_at = EXCLUDED.closed_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, record.TenantID, record.Date, record.TotalAmount, record.Count, record.ClosedAt)
		if err != nil {
			zap.L().Error("can't save closing", zap.Int("tenant_id", record.TenantID), zap.Error(err))
			return pg.Classify(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByDay(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error) {
	query := `
        SELECT tenant_id, closing_date, total_amount, payment_count, closed_at
        FROM closings
        WHERE tenant_id = $1 AND closing_date = $2
    `
	var record domain.ClosingRecord
	err := r.db.QueryRow(ctx, query, tenantID, date).
		Scan(&record.TenantID, &record.Date, &record.TotalAmount, &record.Count, &record.ClosedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find closing", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, pg.Classify(err)
	}
	return &record, nil
}

func (r *Repository) ListRecent(ctx context.Context, tenantID int, limit int) ([]domain.ClosingRecord, error) {
	query := `
        SELECT tenant_id, closing_date, total_amount, payment_count, closed_at
        FROM closings
        WHERE tenant_id = $1
        ORDER BY closing_date DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, tenantID, limit)
	if err != nil {
		zap.L().Error("can't list closings", zap.Int("tenant_id", tenantID), zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	records := make([]domain.ClosingRecord, 0)
	for rows.Next() {
		var record domain.ClosingRecord
		err := rows.Scan(&record.TenantID, &record.Date, &record.TotalAmount, &record.Count, &record.ClosedAt)
		if err != nil {
			zap.L().Error("can't scan closing row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
