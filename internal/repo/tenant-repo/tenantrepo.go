package tenantrepo

import (
	"context"

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

func (r *Repository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	query := `
        SELECT id, name, active, created_at
        FROM tenants
        WHERE active
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tenants", zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var tenant domain.Tenant
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Active, &tenant.CreatedAt); err != nil {
			zap.L().Error("can't scan tenant row", zap.Error(err))
			return nil, err
		}
		tenants = append(tenants, tenant)
	}
	return tenants, nil
}
