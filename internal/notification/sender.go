package notification

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender only logs messages. It is used when mail delivery is disabled.
type LogSender struct {
	log *zap.SugaredLogger
}

// NewLogSender returns a sender that writes messages to log.
func NewLogSender(log *zap.SugaredLogger) *LogSender {
	return &LogSender{log: log.Named("mail.log")}
}

// Send logs msg and never fails.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Infow("mail delivery disabled, message not sent",
		"message_id", msg.ID, "to", msg.To, "subject", msg.Subject)
	return nil
}
