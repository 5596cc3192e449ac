package broadcast

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
	"github.com/GlebRadaev/pixcontrol/internal/metrics"
)

const DefaultBuffer = 16

// Hub fans live events out to the viewers of one tenant. A viewer that
// can't keep up loses events; publishers never block.
type Hub struct {
	mu      sync.RWMutex
	subs    map[int]map[string]*Subscription
	buffer  int
	metrics *metrics.Metrics
}

type Subscription struct {
	ID       string
	TenantID int

	ch   chan []byte
	hub  *Hub
	once sync.Once
}

// New creates a hub; m may be nil.
func New(buffer int, m *metrics.Metrics) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:    make(map[int]map[string]*Subscription),
		buffer:  buffer,
		metrics: m,
	}
}

func (h *Hub) Subscribe(tenantID int) *Subscription {
	sub := &Subscription{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		ch:       make(chan []byte, h.buffer),
		hub:      h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[tenantID] == nil {
		h.subs[tenantID] = make(map[string]*Subscription)
	}
	h.subs[tenantID][sub.ID] = sub
	if h.metrics != nil {
		h.metrics.Viewers.Inc()
	}
	zap.L().Debug("viewer connected", zap.Int("tenant_id", tenantID), zap.String("subscription", sub.ID))
	return sub
}

// Publish delivers event to every current viewer of tenantID.
func (h *Hub) Publish(tenantID int, event domain.LiveEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal live event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs[tenantID] {
		select {
		case sub.ch <- msg:
		default:
			if h.metrics != nil {
				h.metrics.DroppedEvents.Inc()
			}
			zap.L().Warn("viewer buffer full, event dropped", zap.Int("tenant_id", tenantID), zap.String("subscription", sub.ID))
		}
	}
}

func (h *Hub) Subscribers(tenantID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[tenantID])
}

// CloseAll ends every subscription, so open streams return. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for tenantID, tenantSubs := range h.subs {
		for _, sub := range tenantSubs {
			close(sub.ch)
			n++
		}
		delete(h.subs, tenantID)
	}
	if h.metrics != nil {
		h.metrics.Viewers.Sub(float64(n))
	}
	if n > 0 {
		zap.L().Info("live viewers disconnected", zap.Int("count", n))
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tenantSubs, ok := h.subs[sub.TenantID]
	if !ok {
		return
	}
	if _, ok := tenantSubs[sub.ID]; !ok {
		return
	}
	delete(tenantSubs, sub.ID)
	if len(tenantSubs) == 0 {
		delete(h.subs, sub.TenantID)
	}
	close(sub.ch)
	if h.metrics != nil {
		h.metrics.Viewers.Dec()
	}
	zap.L().Debug("viewer disconnected", zap.Int("tenant_id", sub.TenantID), zap.String("subscription", sub.ID))
}

// Events yields JSON-encoded LiveEvents until Close.
func (s *Subscription) Events() <-chan []byte {
	return s.ch
}

// Close is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}
