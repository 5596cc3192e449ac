package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/service/closingservice"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
)

var (
	brt = time.FixedZone("BRT", -3*60*60)
	day = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (chi.Router, *MockClosingService, *MockPaymentService) {
	ctrl := gomock.NewController(t)
	closings := NewMockClosingService(ctrl)
	payments := NewMockPaymentService(ctrl)
	handler := New(closings, payments)

	r := chi.NewRouter()
	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/", handler.History)
		r.Get("/{date}", handler.Report)
		r.Get("/{date}/summary", handler.Summary)
		r.Get("/{date}/payments", handler.Payments)
		r.Post("/today/close", handler.CloseToday)
		r.Post("/{date}/close", handler.Close)
	})
	return r, closings, payments
}

func summary() *domain.DailySummary {
	return &domain.DailySummary{TenantID: 1, Date: day, TotalAmount: decimal.RequireFromString("15.50"), Count: 2}
}

func closing() *domain.ClosingRecord {
	return &domain.ClosingRecord{
		TenantID:    1,
		Date:        day,
		TotalAmount: decimal.RequireFromString("15.50"),
		Count:       2,
		ClosedAt:    time.Date(2024, 3, 10, 23, 59, 5, 0, brt),
	}
}

func payments() []domain.Payment {
	return []domain.Payment{
		{ExternalID: "abc123", Amount: decimal.RequireFromString("10.50"), Status: "CONFIRMED", ReceivedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, brt)},
		{ExternalID: "xyz999", Amount: decimal.RequireFromString("5.00"), Status: "CONFIRMED", ReceivedAt: time.Date(2024, 3, 10, 14, 30, 5, 0, brt)},
	}
}

func TestReports(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		tenantID     int
		prepareMock  func(c *MockClosingService, p *MockPaymentService)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "History",
			method:   http.MethodGet,
			path:     "/api/reports?limit=7",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().History(gomock.Any(), 1, 7).Return([]domain.ClosingRecord{*closing()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"date":"2024-03-10","total":"15.50","count":2,"closed_at":"2024-03-10T23:59:05-03:00"}]`,
		},
		{
			name:     "Report of an open day",
			method:   http.MethodGet,
			path:     "/api/reports/2024-03-10",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().Report(gomock.Any(), 1, day).Return(&closingservice.Report{
					Summary:  summary(),
					Payments: payments()[:1],
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"date":"2024-03-10","closed":false,
				"summary":{"date":"2024-03-10","total":"15.50","count":2},
				"payments":[{"paymentId":"abc123","amount":"10.50","status":"CONFIRMED","time":"09:00:00","received_at":"2024-03-10T09:00:00-03:00"}]
			}`,
		},
		{
			name:     "Report of a closed day",
			method:   http.MethodGet,
			path:     "/api/reports/2024-03-10",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().Report(gomock.Any(), 1, day).Return(&closingservice.Report{
					Closing:  closing(),
					Summary:  summary(),
					Payments: []domain.Payment{},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"date":"2024-03-10","closed":true,
				"closing":{"date":"2024-03-10","total":"15.50","count":2,"closed_at":"2024-03-10T23:59:05-03:00"},
				"summary":{"date":"2024-03-10","total":"15.50","count":2},
				"payments":[]
			}`,
		},
		{
			name:     "Summary",
			method:   http.MethodGet,
			path:     "/api/reports/2024-03-10/summary",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				p.EXPECT().DailySummary(gomock.Any(), 1, day).Return(summary(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"date":"2024-03-10","total":"15.50","count":2}`,
		},
		{
			name:     "Payments",
			method:   http.MethodGet,
			path:     "/api/reports/2024-03-10/payments",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				p.EXPECT().ListPayments(gomock.Any(), 1, day).Return(payments(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[
				{"paymentId":"abc123","amount":"10.50","status":"CONFIRMED","time":"09:00:00","received_at":"2024-03-10T09:00:00-03:00"},
				{"paymentId":"xyz999","amount":"5.00","status":"CONFIRMED","time":"14:30:05","received_at":"2024-03-10T14:30:05-03:00"}
			]`,
		},
		{
			name:     "Close now",
			method:   http.MethodPost,
			path:     "/api/reports/2024-03-10/close",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().CloseDay(gomock.Any(), 1, day).Return(closing(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"date":"2024-03-10","total":"15.50","count":2,"closed_at":"2024-03-10T23:59:05-03:00"}`,
		},
		{
			name:     "Close failure",
			method:   http.MethodPost,
			path:     "/api/reports/2024-03-10/close",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().CloseDay(gomock.Any(), 1, day).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name:     "Close today",
			method:   http.MethodPost,
			path:     "/api/reports/today/close",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().CloseToday(gomock.Any(), 1).Return(closing(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"date":"2024-03-10","total":"15.50","count":2,"closed_at":"2024-03-10T23:59:05-03:00"}`,
		},
		{
			name:     "Close today failure",
			method:   http.MethodPost,
			path:     "/api/reports/today/close",
			tenantID: 1,
			prepareMock: func(c *MockClosingService, p *MockPaymentService) {
				c.EXPECT().CloseToday(gomock.Any(), 1).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name:         "Close today without tenant",
			method:       http.MethodPost,
			path:         "/api/reports/today/close",
			prepareMock:  func(c *MockClosingService, p *MockPaymentService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Unauthorized"}`,
		},
		{
			name:         "Invalid date",
			method:       http.MethodGet,
			path:         "/api/reports/yesterday",
			tenantID:     1,
			prepareMock:  func(c *MockClosingService, p *MockPaymentService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid date, expected YYYY-MM-DD"}`,
		},
		{
			name:         "No tenant",
			method:       http.MethodGet,
			path:         "/api/reports/2024-03-10",
			prepareMock:  func(c *MockClosingService, p *MockPaymentService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, closings, payments := NewMock(t)
			tt.prepareMock(closings, payments)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.tenantID > 0 {
				req = req.WithContext(context.WithValue(req.Context(), auth.TenantIDKey, tt.tenantID))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
