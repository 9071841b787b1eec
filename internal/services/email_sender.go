package services

import (
	"context"

	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/events"
	"scipress-events/pkg/logger"
)

// LogEmailSender is the development transport: it logs the message
// instead of delivering it. Production deployments plug a real
// transport into the worker.
type LogEmailSender struct {
	From string
	Log  *logger.Logger
}

func (s *LogEmailSender) Send(ctx context.Context, msg *outbox.EmailMessage, attachments []events.Attachment) error {
	if s.Log != nil {
		s.Log.Infof("email (dry run): from=%s to=%s subject=%q attachments=%d",
			s.From, msg.Recipient, msg.Subject, len(attachments))
	}
	return nil
}
