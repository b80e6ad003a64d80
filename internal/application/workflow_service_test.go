package application

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

func TestWorkflowService_MergeRetainsExistingKeys(t *testing.T) {
	doc := twoItemDoc()
	doc.Items[0].WorkflowState = roadmap.WorkflowState{
		"phase":    "testing",
		"attempts": float64(2),
	}
	repo := newMemRepo(doc)
	audit := &memAudit{}
	svc := NewWorkflowService(repo, audit)

	item, err := svc.UpdateWorkflowState("item-a", map[string]any{"attempts": float64(3)})
	if err != nil {
		t.Fatalf("UpdateWorkflowState error: %v", err)
	}

	if item.WorkflowState["phase"] != "testing" {
		t.Errorf("phase = %v, want testing", item.WorkflowState["phase"])
	}
	if item.WorkflowState["attempts"] != float64(3) {
		t.Errorf("attempts = %v, want 3", item.WorkflowState["attempts"])
	}
	if _, ok := item.WorkflowState["lastSession"].(string); !ok {
		t.Error("lastSession not rewritten with a timestamp")
	}
	requireAction(t, audit, "item.workflow")
}

func TestWorkflowService_LastSessionAlwaysOverwritten(t *testing.T) {
	doc := twoItemDoc()
	doc.Items[0].WorkflowState = roadmap.WorkflowState{"lastSession": "2020-01-01T00:00:00Z"}
	repo := newMemRepo(doc)
	svc := NewWorkflowService(repo, &memAudit{})

	// Even a caller-supplied lastSession loses to the fresh stamp.
	item, err := svc.UpdateWorkflowState("item-a", map[string]any{"lastSession": "bogus"})
	if err != nil {
		t.Fatalf("UpdateWorkflowState error: %v", err)
	}
	if item.WorkflowState["lastSession"] == "bogus" || item.WorkflowState["lastSession"] == "2020-01-01T00:00:00Z" {
		t.Errorf("lastSession = %v, want fresh timestamp", item.WorkflowState["lastSession"])
	}
}

func TestWorkflowService_CreatesMapWhenAbsent(t *testing.T) {
	repo := newMemRepo(twoItemDoc())
	svc := NewWorkflowService(repo, &memAudit{})

	item, err := svc.UpdateWorkflowState("item-b", map[string]any{"phase": "ideation"})
	if err != nil {
		t.Fatalf("UpdateWorkflowState error: %v", err)
	}
	if item.WorkflowState["phase"] != "ideation" {
		t.Errorf("phase = %v", item.WorkflowState["phase"])
	}

	saved, _ := repo.Load()
	if saved.Item("item-b").WorkflowState["phase"] != "ideation" {
		t.Error("workflowState not persisted")
	}
}

func TestWorkflowService_ItemNotFound(t *testing.T) {
	repo := newMemRepo(twoItemDoc())
	svc := NewWorkflowService(repo, &memAudit{})

	_, err := svc.UpdateWorkflowState("missing", map[string]any{"phase": "x"})
	if !errors.Is(err, roadmap.ErrItemNotFound) {
		t.Fatalf("error = %v, want ErrItemNotFound", err)
	}
	if repo.saves != 0 {
		t.Error("document saved for unknown item")
	}
}
