// Package domain declares the persistence contracts the application layer
// depends on.
package domain

import (
	"time"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// DocumentRepository handles persistence of the roadmap document. The
// document is read and written whole on every operation; there is no
// locking and the last writer wins.
type DocumentRepository interface {
	// Path returns the absolute location of the roadmap file.
	Path() string
	// Load parses the document, reporting roadmap.ErrDocumentNotFound or
	// roadmap.ErrDocumentParse on failure.
	Load() (*roadmap.Document, error)
	// LoadRaw returns the document bytes without decoding them.
	LoadRaw() ([]byte, error)
	// Save serializes the full document with stable formatting and
	// overwrites the file in place.
	Save(doc *roadmap.Document) error
}

// AuditLogger records mutation events.
type AuditLogger interface {
	Log(action string, details map[string]any) error
}

// Event is one recorded mutation.
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
}
