package dashboard

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/dto"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/utils"
)

type Service interface {
	Today(ctx context.Context, tenantID int) (*domain.DailySummary, error)
	Summary(ctx context.Context, tenantID int, date time.Time) (*domain.DailySummary, error)
}

type DashboardHandler struct {
	service Service
}

func New(service Service) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// Today godoc
//
//	@Summary		Today's totals
//	@Description	Running total and payment count of the current business day for the caller's tenant.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/today [get]
func (h *DashboardHandler) Today(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	summary, err := h.service.Today(r.Context(), tenantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Summary(summary))
}

// ByDate godoc
//
//	@Summary		Totals of a day
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string	true	"Calendar date, YYYY-MM-DD"
//	@Success		200		{object}	dto.SummaryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/{date} [get]
func (h *DashboardHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	summary, err := h.service.Summary(r.Context(), tenantID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Summary(summary))
}
