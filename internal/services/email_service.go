package services

import (
	"context"
	"encoding/json"

	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	"scipress-events/pkg/logger"
)

// EmailService renders each event's email content and stores it in the
// outbox. Actual delivery is the outbox processor's job; this handler
// only decides audience and content.
type EmailService struct {
	outboxRepo repository.OutboxRepository
	templates  map[string]string
	adminEmail string
	log        *logger.Logger
}

func NewEmailService(outboxRepo repository.OutboxRepository, adminEmail string, l *logger.Logger) *EmailService {
	return &EmailService{
		outboxRepo: outboxRepo,
		templates:  defaultTemplateSources(),
		adminEmail: adminEmail,
		log:        l,
	}
}

// SetTemplateSource overrides the source for one template name.
func (s *EmailService) SetTemplateSource(name, src string) {
	s.templates[name] = src
}

func (s *EmailService) Register(bus *events.Bus) {
	bus.SubscribeAll(s.handleEvent)
}

// handleEvent never returns an error: a failed email must not reach
// the code that published the event.
func (s *EmailService) handleEvent(ctx context.Context, e events.Event) error {
	name := e.EmailTemplateName()
	if name == "" {
		return nil
	}
	recipient := emailRecipient(e, s.adminEmail)
	if recipient == "" {
		return nil
	}
	src, ok := s.templates[name]
	if !ok {
		s.errorf("no template source registered for %q (event %s)", name, e.Type())
		return nil
	}

	opts, err := e.EmailTemplate(src, false)
	if err != nil {
		s.errorf("failed to render email for event %s: %v", e.Type(), err)
		return nil
	}
	if opts == nil {
		return nil
	}

	msg := &outbox.EmailMessage{
		EventType: string(e.Type()),
		Recipient: recipient,
		Subject:   opts.Subject,
		HTML:      opts.HTML,
		Status:    outbox.StatusPending,
	}
	if len(opts.Attachments) > 0 {
		raw, err := json.Marshal(opts.Attachments)
		if err != nil {
			s.errorf("failed to encode attachments for event %s: %v", e.Type(), err)
			return nil
		}
		msg.Attachments = raw
	}
	if err := s.outboxRepo.Create(ctx, msg); err != nil {
		s.errorf("failed to enqueue email for event %s: %v", e.Type(), err)
	}
	return nil
}

func (s *EmailService) errorf(template string, args ...interface{}) {
	if s.log != nil {
		s.log.Errorf(template, args...)
	}
}
