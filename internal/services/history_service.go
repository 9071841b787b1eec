package services

import (
	"context"

	"github.com/google/uuid"

	"scipress-events/internal/domain/history"
	"scipress-events/internal/events"
	"scipress-events/internal/repository"
	"scipress-events/pkg/logger"
)

// HistoryService appends audit lines to the resource an event
// concerns. Only events whose HistoryTemplate returns content leave a
// trace.
type HistoryService struct {
	repo repository.HistoryRepository
	log  *logger.Logger
}

func NewHistoryService(repo repository.HistoryRepository, l *logger.Logger) *HistoryService {
	return &HistoryService{repo: repo, log: l}
}

func (s *HistoryService) Register(bus *events.Bus) {
	bus.SubscribeAll(s.handleEvent)
}

func (s *HistoryService) handleEvent(ctx context.Context, e events.Event) error {
	line := e.HistoryTemplate()
	if line == nil {
		return nil
	}
	resourceType, resourceID, ok := historyResource(e)
	if !ok {
		s.errorf("event %s produced a history line but names no resource", e.Type())
		return nil
	}

	entry := &history.Entry{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Description:  line.Description,
		CreatedAt:    line.CreatedAt,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.errorf("failed to append history for event %s: %v", e.Type(), err)
	}
	return nil
}

// historyResource maps an event to the resource its audit line hangs
// off. Review lines attach to the reviewed deposit.
func historyResource(e events.Event) (string, uuid.UUID, bool) {
	switch data := e.DTO().Data.(type) {
	case events.DepositEventData:
		return "deposit", data.Deposit.ID, true
	case events.ReviewCreatedData:
		return "deposit", data.Deposit.ID, true
	case events.CommunityEventData:
		return "community", data.Community.ID, true
	default:
		return "", uuid.Nil, false
	}
}

func (s *HistoryService) errorf(template string, args ...interface{}) {
	if s.log != nil {
		s.log.Errorf(template, args...)
	}
}
