package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/ports"
)

// LogSink writes notifications to the structured log. Deployments with a
// push channel (websocket, email) replace this with their own Sink.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n ports.Notification) {
	s.log.Info().
		Str("user_id", n.UserID).
		Str("event", n.Event).
		Str("message", n.Message).
		Msg("notification")
}
