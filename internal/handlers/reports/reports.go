package reports

//go:generate mockgen -source=reports.go -destination=mock_reports.go -package=reports

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/dto"
	"github.com/GlebRadaev/pixcontrol/internal/service/closingservice"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/utils"
)

type ClosingService interface {
	CloseDay(ctx context.Context, tenantID int, date time.Time) (*domain.ClosingRecord, error)
	CloseToday(ctx context.Context, tenantID int) (*domain.ClosingRecord, error)
	Report(ctx context.Context, tenantID int, date time.Time) (*closingservice.Report, error)
	History(ctx context.Context, tenantID int, limit int) ([]domain.ClosingRecord, error)
}

type PaymentService interface {
	DailySummary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
	ListPayments(ctx context.Context, tenantID int, date time.Time) ([]domain.Payment, error)
}

type ReportHandler struct {
	closings ClosingService
	payments PaymentService
}

func New(closings ClosingService, payments PaymentService) *ReportHandler {
	return &ReportHandler{
		closings: closings,
		payments: payments,
	}
}

// History godoc
//
//	@Summary		Recent closings
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"How many days, newest first"
//	@Success		200		{array}		dto.ClosingResponseDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Manager role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports [get]
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.closings.History(r.Context(), tenantID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]*dto.ClosingResponseDTO, 0, len(records))
	for i := range records {
		response = append(response, dto.Closing(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Report godoc
//
//	@Summary		Closing report of a day
//	@Description	Stored closing when the day was closed, the live totals and the day's payments. Reading a report never closes the day.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{object}	dto.ReportResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Manager role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{date} [get]
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	tenantID, date, ok := h.tenantAndDate(w, r)
	if !ok {
		return
	}
	report, err := h.closings.Report(r.Context(), tenantID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReportResponseDTO{
		Date:     date.Format(domain.DateLayout),
		Closed:   report.Closing != nil,
		Closing:  dto.Closing(report.Closing),
		Summary:  dto.Summary(report.Summary),
		Payments: dto.Payments(report.Payments),
	})
}

// Summary godoc
//
//	@Summary		Live totals of a day
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{object}	dto.SummaryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Manager role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{date}/summary [get]
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	tenantID, date, ok := h.tenantAndDate(w, r)
	if !ok {
		return
	}
	summary, err := h.payments.DailySummary(r.Context(), tenantID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Summary(summary))
}

// Payments godoc
//
//	@Summary		Payments of a day
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{array}		dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Manager role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{date}/payments [get]
func (h *ReportHandler) Payments(w http.ResponseWriter, r *http.Request) {
	tenantID, date, ok := h.tenantAndDate(w, r)
	if !ok {
		return
	}
	payments, err := h.payments.ListPayments(r.Context(), tenantID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Payments(payments))
}

// Close godoc
//
//	@Summary		Close a day now
//	@Description	Snapshots the day's totals. Closing again replaces the previous snapshot.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{object}	dto.ClosingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Manager role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{date}/close [post]
func (h *ReportHandler) Close(w http.ResponseWriter, r *http.Request) {
	tenantID, date, ok := h.tenantAndDate(w, r)
	if !ok {
		return
	}
	record, err := h.closings.CloseDay(r.Context(), tenantID, date)
	if err != nil {
		zap.L().Error("manual closing failed", zap.Int("tenant_id", tenantID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Closing(record))
}

// CloseToday godoc
//
//	@Summary		Close the current business day now
//	@Description	Same as closing today's date explicitly; "today" is taken in the business time zone.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ClosingResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Manager role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/today/close [post]
func (h *ReportHandler) CloseToday(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	record, err := h.closings.CloseToday(r.Context(), tenantID)
	if err != nil {
		zap.L().Error("manual closing failed", zap.Int("tenant_id", tenantID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Closing(record))
}

func (h *ReportHandler) tenantAndDate(w http.ResponseWriter, r *http.Request) (int, time.Time, bool) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, time.Time{}, false
	}
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return 0, time.Time{}, false
	}
	return tenantID, date, true
}
