package application

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// memRepo is an in-memory DocumentRepository for service tests. Load returns
// a deep copy so tests observe only what Save persisted, mirroring the
// file-backed behavior.
type memRepo struct {
	doc     *roadmap.Document
	raw     []byte
	saves   int
	saveErr error
}

var _ domain.DocumentRepository = (*memRepo)(nil)

func newMemRepo(doc *roadmap.Document) *memRepo {
	return &memRepo{doc: doc}
}

func (m *memRepo) Path() string {
	return "roadmap/roadmap.json"
}

func (m *memRepo) Load() (*roadmap.Document, error) {
	if m.doc == nil {
		return nil, fmt.Errorf("%w: roadmap/roadmap.json", roadmap.ErrDocumentNotFound)
	}
	return copyDoc(m.doc), nil
}

func (m *memRepo) LoadRaw() ([]byte, error) {
	if m.raw != nil {
		return m.raw, nil
	}
	if m.doc == nil {
		return nil, fmt.Errorf("%w: roadmap/roadmap.json", roadmap.ErrDocumentNotFound)
	}
	return json.Marshal(m.doc)
}

func (m *memRepo) Save(doc *roadmap.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = copyDoc(doc)
	m.saves++
	return nil
}

func copyDoc(doc *roadmap.Document) *roadmap.Document {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var out roadmap.Document
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// memAudit records audit actions for assertions.
type memAudit struct {
	actions []string
}

var _ domain.AuditLogger = (*memAudit)(nil)

func (m *memAudit) Log(action string, details map[string]any) error {
	m.actions = append(m.actions, action)
	return nil
}

func twoItemDoc() *roadmap.Document {
	return &roadmap.Document{
		ProjectName:    "Demo",
		ProjectSummary: "A demo project",
		TimeHorizons:   json.RawMessage(`{"now":["a"],"later":[]}`),
		Items: []roadmap.Item{
			{ID: "item-a", Title: "Transaction sync", Status: roadmap.StatusInProgress, Moscow: "must-have"},
			{ID: "item-b", Title: "User Authentication", Status: roadmap.StatusNotStarted, Moscow: "should-have"},
		},
	}
}

func requireAction(t *testing.T, audit *memAudit, action string) {
	t.Helper()
	for _, a := range audit.actions {
		if a == action {
			return
		}
	}
	t.Errorf("audit actions %v missing %q", audit.actions, action)
}
