package webhook

//go:generate mockgen -source=webhook.go -destination=mock_webhook.go -package=webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/dto"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
	"github.com/GlebRadaev/pixcontrol/internal/service/webhookservice"
	"github.com/GlebRadaev/pixcontrol/pkg/audit"
	"github.com/GlebRadaev/pixcontrol/pkg/ratelimit"
	"github.com/GlebRadaev/pixcontrol/pkg/signature"
	"github.com/GlebRadaev/pixcontrol/pkg/utils"
)

const DefaultMaxBody int64 = 64 << 10

type Service interface {
	VerifyAndRecord(ctx context.Context, tenantID int, rawBody []byte, sig string) (*webhookservice.Result, error)
}

type Auditor interface {
	Log(action string, tenantID int, ip string, extra map[string]any)
}

type WebhookHandler struct {
	service         Service
	auditor         Auditor
	metrics         *metrics.Metrics
	defaultTenantID int
	maxBody         int64
}

func New(service Service, auditor Auditor, m *metrics.Metrics, defaultTenantID int, maxBody int64) *WebhookHandler {
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &WebhookHandler{
		service:         service,
		auditor:         auditor,
		metrics:         m,
		defaultTenantID: defaultTenantID,
		maxBody:         maxBody,
	}
}

// Receive godoc
//
//	@Summary		Receive a payment confirmation
//	@Description	Gateway callback. The body is authenticated with an HMAC-SHA256 hex digest in X-Signature. Repeated deliveries of the same paymentId are acknowledged and ignored.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			X-Signature	header		string					true	"hex HMAC-SHA256 of the raw body"
//	@Param			tenantID	path		int						false	"Tenant id, the default tenant when omitted"
//	@Param			payment		body		dto.WebhookRequestDTO	true	"Payment confirmation"
//	@Success		200			{object}	dto.WebhookResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed or invalid payload"
//	@Failure		401			{object}	utils.Response	"Missing or wrong signature"
//	@Failure		404			{object}	utils.Response	"Unknown tenant"
//	@Failure		413			{object}	utils.Response	"Body too large"
//	@Failure		429			{object}	utils.Response	"Too many requests"
//	@Failure		503			{object}	utils.Response	"Storage unavailable"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/webhook/pix/{tenantID} [post]
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)

	tenantID, ok := h.tenantID(r)
	if !ok {
		h.metrics.Webhook(metrics.OutcomeUnknownTenant)
		utils.RespondWithError(w, http.StatusNotFound, "Unknown tenant")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		h.metrics.Webhook(metrics.OutcomeInvalid)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	res, err := h.service.VerifyAndRecord(r.Context(), tenantID, body, r.Header.Get(signature.Header))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			h.reject(tenantID, ip, metrics.OutcomeUnauthorized, "signature")
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, domain.ErrValidation):
			h.reject(tenantID, ip, metrics.OutcomeInvalid, "payload")
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnknownTenant):
			h.reject(tenantID, ip, metrics.OutcomeUnknownTenant, "tenant")
			utils.RespondWithError(w, http.StatusNotFound, "Unknown tenant")
		case errors.Is(err, domain.ErrStorageUnavailable):
			h.metrics.Webhook(metrics.OutcomeUnavailable)
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Storage unavailable")
		default:
			h.metrics.Webhook(metrics.OutcomeError)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	extra := map[string]any{
		"payment_id": res.Payment.ExternalID,
		"amount":     res.Payment.Amount.StringFixed(2),
	}
	if res.Inserted {
		h.metrics.Webhook(metrics.OutcomeRecorded)
		h.auditor.Log(audit.ActionPaymentRecorded, tenantID, ip, extra)
	} else {
		h.metrics.Webhook(metrics.OutcomeDuplicate)
		h.auditor.Log(audit.ActionPaymentDuplicate, tenantID, ip, extra)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{OK: true, Duplicate: !res.Inserted})
}

func (h *WebhookHandler) tenantID(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "tenantID")
	if raw == "" {
		return h.defaultTenantID, h.defaultTenantID > 0
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *WebhookHandler) reject(tenantID int, ip, outcome, reason string) {
	h.metrics.Webhook(outcome)
	h.auditor.Log(audit.ActionWebhookRejected, tenantID, ip, map[string]any{"reason": reason})
}
