// Package application implements one service per roadmap operation. Every
// service follows the same discipline: load the document, apply one edit,
// stamp timestamps, save.
package application

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/google/uuid"
)

// EventLog is the sink audit events are appended to.
type EventLog interface {
	Append(event domain.Event) error
}

// AuditService records mutation events. Recording is best-effort: a failed
// append is reported as a warning and never fails the mutation it describes.
type AuditService struct {
	events EventLog
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(events EventLog) *AuditService {
	return &AuditService{events: events}
}

func (s *AuditService) Log(action string, details map[string]any) error {
	if s == nil || s.events == nil {
		return nil
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	}

	if err := s.events.Append(event); err != nil {
		log.Warn("failed to record audit event", "action", action, "err", err)
	}
	return nil
}
