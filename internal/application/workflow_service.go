package application

import (
	"time"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// WorkflowService merges progress-tracking fields into an item's
// workflowState map.
type WorkflowService struct {
	repo  domain.DocumentRepository
	audit domain.AuditLogger
}

func NewWorkflowService(repo domain.DocumentRepository, audit domain.AuditLogger) *WorkflowService {
	return &WorkflowService{repo: repo, audit: audit}
}

// UpdateWorkflowState shallow-merges updates into the item's workflowState,
// creating the map if absent. lastSession is always overwritten with the
// current timestamp regardless of caller input. Returns the item after the
// merge.
func (s *WorkflowService) UpdateWorkflowState(itemID string, updates map[string]any) (*roadmap.Item, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	item := doc.Item(itemID)
	if item == nil {
		return nil, &roadmap.NotFoundError{ItemID: itemID}
	}

	if item.WorkflowState == nil {
		item.WorkflowState = roadmap.WorkflowState{}
	}
	item.WorkflowState.Merge(updates)

	now := time.Now().UTC()
	item.WorkflowState["lastSession"] = now.Format(time.RFC3339)
	item.Touch(now)
	doc.Touch(now)

	if err := s.repo.Save(doc); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	_ = s.audit.Log("item.workflow", map[string]any{
		"item_id": itemID,
		"keys":    keys,
	})

	return item, nil
}
