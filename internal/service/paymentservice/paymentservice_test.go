package paymentservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestRecordPayment(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	receivedAt := time.Date(2024, 3, 10, 22, 15, 0, 0, brt)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		tenantID         int
		externalID       string
		amount           decimal.Decimal
		status           string
		prepareMock      func(repo *MockRepo)
		expectedInserted bool
		expectedError    error
	}{
		{
			name:       "New payment is stored",
			tenantID:   1,
			externalID: "abc123",
			amount:     decimal.RequireFromString("10.50"),
			status:     "CONFIRMED",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (bool, error) {
						assert.Equal(t, 1, p.TenantID)
						assert.Equal(t, "abc123", p.ExternalID)
						assert.Equal(t, day, p.PaymentDate)
						assert.True(t, p.Amount.Equal(decimal.RequireFromString("10.50")))
						p.ID = 7
						return true, nil
					})
			},
			expectedInserted: true,
		},
		{
			name:       "Duplicate delivery is not an error",
			tenantID:   1,
			externalID: "abc123",
			amount:     decimal.RequireFromString("10.50"),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedInserted: false,
		},
		{
			name:       "Zero amount is accepted",
			tenantID:   2,
			externalID: "zero",
			amount:     decimal.Zero,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedInserted: true,
		},
		{
			name:          "Negative amount is rejected",
			tenantID:      1,
			externalID:    "neg",
			amount:        decimal.RequireFromString("-1.00"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Amount above column precision is rejected",
			tenantID:      1,
			externalID:    "big",
			amount:        decimal.RequireFromString("1e13"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:       "Largest storable amount is accepted",
			tenantID:   1,
			externalID: "max",
			amount:     decimal.RequireFromString("999999999999.99"),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedInserted: true,
		},
		{
			name:          "Sub-cent amount is rejected",
			tenantID:      1,
			externalID:    "fraction",
			amount:        decimal.RequireFromString("10.505"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:       "Trailing zeros are not sub-cent",
			tenantID:   1,
			externalID: "zeros",
			amount:     decimal.RequireFromString("10.500"),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedInserted: true,
		},
		{
			name:          "Blank payment id is rejected",
			tenantID:      1,
			externalID:    "   ",
			amount:        decimal.RequireFromString("1.00"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Too long payment id is rejected",
			tenantID:      1,
			externalID:    strings.Repeat("x", MaxExternalIDLen+1),
			amount:        decimal.RequireFromString("1.00"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing tenant is rejected",
			tenantID:      0,
			externalID:    "abc",
			amount:        decimal.RequireFromString("1.00"),
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:       "Storage failure is passed through",
			tenantID:   1,
			externalID: "abc",
			amount:     decimal.RequireFromString("1.00"),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, domain.ErrStorageUnavailable)
			},
			expectedError: domain.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			payment, inserted, err := service.RecordPayment(context.Background(), tt.tenantID, tt.externalID, tt.amount, tt.status, receivedAt)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedInserted, inserted)
			assert.Equal(t, domain.StatusConfirmed, payment.Status)
		})
	}
}

func TestRecordPayment_TrimsExternalID(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)

	payment, _, err := service.RecordPayment(context.Background(), 1, "  abc123 ", decimal.NewFromInt(1), "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "abc123", payment.ExternalID)
}

func TestDailySummary(t *testing.T) {
	service, repo := NewMock(t)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	expected := &domain.DailySummary{TenantID: 1, Date: day, TotalAmount: decimal.RequireFromString("15.50"), Count: 2}

	repo.EXPECT().Summary(gomock.Any(), 1, day).Return(expected, nil)

	summary, err := service.DailySummary(context.Background(), 1, time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestListPayments(t *testing.T) {
	service, repo := NewMock(t)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListByDay(gomock.Any(), 1, day).Return(nil, errors.New("boom"))

	payments, err := service.ListPayments(context.Background(), 1, day)
	assert.Error(t, err)
	assert.Nil(t, payments)
}
