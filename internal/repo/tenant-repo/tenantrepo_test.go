package tenantrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
)

func TestRepository_ListActive(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := New(mockDB)
	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, name, active, created_at FROM tenants WHERE active ORDER BY id")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Tenant
	}{
		{
			name: "Active tenants",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "active", "created_at"}).
					AddRow(1, "default", true, now).
					AddRow(2, "padaria", true, now)
				mockDB.ExpectQuery(query).WillReturnRows(rows)
			},
			result: []domain.Tenant{
				{ID: 1, Name: "default", Active: true, CreatedAt: now},
				{ID: 2, Name: "padaria", Active: true, CreatedAt: now},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mockDB.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "active", "created_at"}).
					AddRow("one", "default", true, now)
				mockDB.ExpectQuery(query).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListActive(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
