package audit

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	ActionWebhookRejected  = "webhook_rejected"
	ActionPaymentRecorded  = "payment_recorded"
	ActionPaymentDuplicate = "payment_duplicate"
	ActionDayClosed        = "day_closed"
)

// Logger writes one JSON line per security- or money-relevant action.
type Logger struct {
	log zerolog.Logger
}

func New(w io.Writer) *Logger {
	return &Logger{
		log: zerolog.New(w).With().Timestamp().Logger(),
	}
}

func NewStdout() *Logger {
	return New(os.Stdout)
}

func Nop() *Logger {
	return &Logger{log: zerolog.Nop()}
}

func (l *Logger) Log(action string, tenantID int, ip string, extra map[string]any) {
	ev := l.log.Log().
		Str("action", action).
		Int("tenant_id", tenantID)
	if ip != "" {
		ev = ev.Str("ip", ip)
	}
	if len(extra) > 0 {
		ev = ev.Interface("extra", extra)
	}
	ev.Send()
}
