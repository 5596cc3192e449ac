package live

//go:generate mockgen -source=live.go -destination=mock_live.go -package=live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/broadcast"
	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/dto"
	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/utils"
)

const DefaultHeartbeat = 15 * time.Second

type Service interface {
	Today(ctx context.Context, tenantID int) (*domain.DailySummary, error)
}

type Hub interface {
	Subscribe(tenantID int) *broadcast.Subscription
}

type LiveHandler struct {
	service   Service
	hub       Hub
	heartbeat time.Duration
}

func New(service Service, hub Hub) *LiveHandler {
	return &LiveHandler{
		service:   service,
		hub:       hub,
		heartbeat: DefaultHeartbeat,
	}
}

// Stream godoc
//
//	@Summary		Live payment stream
//	@Description	Server-sent events for the caller's tenant. The first event is a "snapshot" of today's totals, every following message is a LiveEvent.
//	@Tags			Live
//	@Produce		text/event-stream
//	@Security		BearerAuth
//	@Success		200	{object}	domain.LiveEvent
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/live [get]
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Подписываемся до снимка, чтобы не потерять платёж между ними.
	sub := h.hub.Subscribe(tenantID)
	defer sub.Close()

	summary, err := h.service.Today(r.Context(), tenantID)
	if err != nil {
		zap.L().Error("can't load live snapshot", zap.Int("tenant_id", tenantID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	snapshot, err := json.Marshal(dto.Summary(summary))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	rc := http.NewResponseController(w)
	// поток живёт дольше WriteTimeout сервера
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", snapshot)
	if err := rc.Flush(); err != nil {
		zap.L().Debug("streaming unsupported", zap.Error(err))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Events():
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
