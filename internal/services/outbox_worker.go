package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"scipress-events/internal/domain/outbox"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	"scipress-events/pkg/logger"
)

const maxEmailRetries = 9

// EmailSender hands a rendered message to the mail transport.
type EmailSender interface {
	Send(ctx context.Context, msg *outbox.EmailMessage, attachments []events.Attachment) error
}

// OutboxWorker polls the email outbox and drives pending messages
// through the sender with bounded retries.
type OutboxWorker struct {
	outboxRepo repository.OutboxRepository
	sender     EmailSender
	log        *logger.Logger
	interval   time.Duration
	batchSize  int
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

func NewOutboxWorker(outboxRepo repository.OutboxRepository, sender EmailSender, l *logger.Logger) *OutboxWorker {
	return &OutboxWorker{
		outboxRepo: outboxRepo,
		sender:     sender,
		log:        l,
		interval:   time.Second,
		batchSize:  50,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the worker loop
func (w *OutboxWorker) Start() {
	w.wg.Add(1)
	go w.run()
}

// Stop gracefully shuts down
func (w *OutboxWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *OutboxWorker) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.processBatch()
		}
	}
}

func (w *OutboxWorker) processBatch() {
	ctx := context.Background()
	pending, err := w.outboxRepo.GetPending(ctx, w.batchSize)
	if err != nil {
		w.errorf("failed to load pending emails: %v", err)
		return
	}

	for i := range pending {
		w.processMessage(ctx, &pending[i])
	}
}

func (w *OutboxWorker) processMessage(ctx context.Context, msg *outbox.EmailMessage) {
	// Prevent duplicate processing
	if err := w.outboxRepo.MarkProcessing(ctx, msg.ID); err != nil {
		return
	}

	var attachments []events.Attachment
	if len(msg.Attachments) > 0 {
		if err := json.Unmarshal(msg.Attachments, &attachments); err != nil {
			w.outboxRepo.MarkFailed(ctx, msg.ID, "failed to decode attachments")
			return
		}
	}

	if err := w.sender.Send(ctx, msg, attachments); err != nil {
		// IncrementRetry requeues; past the retry budget the message
		// parks as failed for operator inspection.
		w.outboxRepo.IncrementRetry(ctx, msg.ID)
		if msg.RetryCount >= maxEmailRetries {
			w.outboxRepo.MarkFailed(ctx, msg.ID, err.Error())
		}
		w.errorf("email delivery failed for %s: %v", msg.ID, err)
		return
	}

	w.outboxRepo.MarkCompleted(ctx, msg.ID)
}

func (w *OutboxWorker) errorf(template string, args ...interface{}) {
	if w.log != nil {
		w.log.Errorf(template, args...)
	}
}
