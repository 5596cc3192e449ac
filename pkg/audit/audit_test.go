package audit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		ip       string
		extra    map[string]any
		expected map[string]any
	}{
		{
			name:   "With ip and extra",
			action: ActionWebhookRejected,
			ip:     "10.0.0.1",
			extra:  map[string]any{"reason": "unauthenticated"},
			expected: map[string]any{
				"action":    "webhook_rejected",
				"tenant_id": float64(1),
				"ip":        "10.0.0.1",
				"extra":     map[string]any{"reason": "unauthenticated"},
			},
		},
		{
			name:   "Bare action",
			action: ActionDayClosed,
			expected: map[string]any{
				"action":    "day_closed",
				"tenant_id": float64(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Log(tt.action, 1, tt.ip, tt.extra)

			var got map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Contains(t, got, "time")
			delete(got, "time")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Log(ActionPaymentRecorded, 1, "", nil)
	})
}
