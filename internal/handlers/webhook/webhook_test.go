package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
	"github.com/GlebRadaev/pixcontrol/internal/pg"
	"github.com/GlebRadaev/pixcontrol/internal/service/webhookservice"
	"github.com/GlebRadaev/pixcontrol/pkg/audit"
	"github.com/GlebRadaev/pixcontrol/pkg/signature"
)

type fixture struct {
	router  chi.Router
	service *MockService
	audit   *bytes.Buffer
	metrics *metrics.Metrics
}

func NewMock(t *testing.T, maxBody int64) *fixture {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	buf := &bytes.Buffer{}
	m := metrics.New(prometheus.NewRegistry())
	handler := New(service, audit.New(buf), m, 1, maxBody)

	r := chi.NewRouter()
	r.Post("/webhook/pix", handler.Receive)
	r.Post("/webhook/pix/{tenantID}", handler.Receive)
	return &fixture{router: r, service: service, audit: buf, metrics: m}
}

func (f *fixture) post(path, body, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.9:40000"
	if sig != "" {
		req.Header.Set(signature.Header, sig)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) auditEvent(t *testing.T) map[string]any {
	t.Helper()
	var ev map[string]any
	require.NoError(t, json.Unmarshal(f.audit.Bytes(), &ev))
	return ev
}

func recorded(inserted bool) *webhookservice.Result {
	return &webhookservice.Result{
		Inserted: inserted,
		Payment:  &domain.Payment{ExternalID: "abc123", Amount: decimal.RequireFromString("10.50")},
	}
}

func TestReceive(t *testing.T) {
	body := `{"paymentId":"abc123","amount":10.50}`

	tests := []struct {
		name           string
		path           string
		sig            string
		prepareMock    func(s *MockService)
		expectedCode   int
		expectedBody   string
		expectedAction string
		expectedOut    string
	}{
		{
			name: "Payment recorded on default tenant",
			path: "/webhook/pix",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, []byte(body), "cafe").Return(recorded(true), nil)
			},
			expectedCode:   http.StatusOK,
			expectedBody:   `{"ok":true}`,
			expectedAction: audit.ActionPaymentRecorded,
			expectedOut:    metrics.OutcomeRecorded,
		},
		{
			name: "Duplicate delivery on explicit tenant",
			path: "/webhook/pix/7",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 7, []byte(body), "cafe").Return(recorded(false), nil)
			},
			expectedCode:   http.StatusOK,
			expectedBody:   `{"ok":true,"duplicate":true}`,
			expectedAction: audit.ActionPaymentDuplicate,
			expectedOut:    metrics.OutcomeDuplicate,
		},
		{
			name: "Missing signature",
			path: "/webhook/pix",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, []byte(body), "").Return(nil, domain.ErrUnauthenticated)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid signature"}`,
			expectedAction: audit.ActionWebhookRejected,
			expectedOut:    metrics.OutcomeUnauthorized,
		},
		{
			name: "Invalid payload",
			path: "/webhook/pix",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, gomock.Any(), "cafe").
					Return(nil, fmt.Errorf("%w: paymentId: required", domain.ErrValidation))
			},
			expectedCode:   http.StatusBadRequest,
			expectedBody:   `{"message":"validation error: paymentId: required"}`,
			expectedAction: audit.ActionWebhookRejected,
			expectedOut:    metrics.OutcomeInvalid,
		},
		{
			name: "Value rejected by storage",
			path: "/webhook/pix",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, gomock.Any(), "cafe").
					Return(nil, pg.Classify(&pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange, Message: "numeric field overflow"}))
			},
			expectedCode:   http.StatusBadRequest,
			expectedBody:   `{"message":"validation error: numeric field overflow"}`,
			expectedAction: audit.ActionWebhookRejected,
			expectedOut:    metrics.OutcomeInvalid,
		},
		{
			name: "Unknown tenant",
			path: "/webhook/pix/99",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 99, gomock.Any(), "cafe").Return(nil, domain.ErrUnknownTenant)
			},
			expectedCode:   http.StatusNotFound,
			expectedBody:   `{"message":"Unknown tenant"}`,
			expectedAction: audit.ActionWebhookRejected,
			expectedOut:    metrics.OutcomeUnknownTenant,
		},
		{
			name:         "Malformed tenant id",
			path:         "/webhook/pix/abc",
			sig:          "cafe",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Unknown tenant"}`,
			expectedOut:  metrics.OutcomeUnknownTenant,
		},
		{
			name: "Storage unavailable",
			path: "/webhook/pix",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, gomock.Any(), "cafe").Return(nil, domain.ErrStorageUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"Storage unavailable"}`,
			expectedOut:  metrics.OutcomeUnavailable,
		},
		{
			name: "Unexpected error",
			path: "/webhook/pix",
			sig:  "cafe",
			prepareMock: func(s *MockService) {
				s.EXPECT().VerifyAndRecord(gomock.Any(), 1, gomock.Any(), "cafe").Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
			expectedOut:  metrics.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t, 0)
			tt.prepareMock(f.service)

			w := f.post(tt.path, body, tt.sig)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Webhooks.WithLabelValues(tt.expectedOut)))
			if tt.expectedAction == "" {
				assert.Zero(t, f.audit.Len())
				return
			}
			ev := f.auditEvent(t)
			assert.Equal(t, tt.expectedAction, ev["action"])
			assert.Equal(t, "203.0.113.9", ev["ip"])
		})
	}
}

func TestReceive_BodyTooLarge(t *testing.T) {
	f := NewMock(t, 16)

	w := f.post("/webhook/pix", `{"paymentId":"abcdefghijklmnopqrstuvwxyz"}`, "cafe")

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
