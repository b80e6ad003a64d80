package application

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// StatusService moves roadmap items through the status machine.
type StatusService struct {
	repo  domain.DocumentRepository
	audit domain.AuditLogger
}

func NewStatusService(repo domain.DocumentRepository, audit domain.AuditLogger) *StatusService {
	return &StatusService{repo: repo, audit: audit}
}

// StatusUpdate describes a completed status move.
type StatusUpdate struct {
	ItemID string
	Title  string
	From   roadmap.Status
	To     roadmap.Status
	Forced bool
}

// UpdateStatus moves the item to target. The transition table is enforced
// unless force is set; an unknown target status is rejected regardless of
// force. Nothing is written when validation fails.
func (s *StatusService) UpdateStatus(itemID string, target roadmap.Status, force bool) (*StatusUpdate, error) {
	if !target.IsValid() {
		_, err := roadmap.ParseStatus(string(target))
		return nil, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	item := doc.Item(itemID)
	if item == nil {
		return nil, &roadmap.NotFoundError{ItemID: itemID}
	}

	from := item.CurrentStatus()
	if force {
		log.Debug("transition validation bypassed", "item", itemID, "from", from, "to", target)
	} else {
		machine, err := roadmap.NewStatusMachine(from, itemID)
		if err != nil {
			return nil, err
		}
		if err := machine.Transition(target); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	item.Status = target
	item.Touch(now)
	doc.Touch(now)

	if err := s.repo.Save(doc); err != nil {
		return nil, err
	}

	_ = s.audit.Log("item.status", map[string]any{
		"item_id": itemID,
		"from":    string(from),
		"to":      string(target),
		"forced":  force,
	})

	return &StatusUpdate{
		ItemID: itemID,
		Title:  item.Title,
		From:   from,
		To:     target,
		Forced: force,
	}, nil
}
