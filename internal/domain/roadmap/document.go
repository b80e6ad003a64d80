// Package roadmap holds the core document model: the roadmap document, its
// items, the status machine, and the text utilities that operate on titles.
package roadmap

import (
	"encoding/json"
	"time"
)

// Document is the full roadmap file. It is always read and written whole;
// there is no partial patching.
type Document struct {
	ProjectName    string          `json:"projectName"`
	ProjectSummary string          `json:"projectSummary"`
	LastUpdated    time.Time       `json:"lastUpdated,omitzero"`
	TimeHorizons   json.RawMessage `json:"timeHorizons,omitempty"`
	Items          []Item          `json:"items"`
}

// Item is one planned unit of work.
type Item struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Status          Status           `json:"status"`
	Moscow          string           `json:"moscow,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt,omitzero"`
	WorkflowState   WorkflowState    `json:"workflowState,omitempty"`
	LinkedArtifacts *LinkedArtifacts `json:"linkedArtifacts,omitempty"`
}

// LinkedArtifacts records the staged planning documents for an item. SpecSlug
// names a directory under specs/; the path fields are set only when the file
// existed at link time.
type LinkedArtifacts struct {
	SpecSlug           string `json:"specSlug,omitempty"`
	IdeationPath       string `json:"ideationPath,omitempty"`
	SpecPath           string `json:"specPath,omitempty"`
	TasksPath          string `json:"tasksPath,omitempty"`
	ImplementationPath string `json:"implementationPath,omitempty"`
}

// WorkflowState is the free-form progress-tracking map attached to an item.
// Unrecognized keys pass through untouched; only lastSession is owned by the
// tooling.
type WorkflowState map[string]any

// Merge applies updates as a shallow merge. Existing keys not mentioned in
// updates are retained.
func (w WorkflowState) Merge(updates map[string]any) {
	for k, v := range updates {
		w[k] = v
	}
}

// Item returns a pointer to the item with the given id, or nil.
func (d *Document) Item(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// Touch stamps the document-level modification time.
func (d *Document) Touch(now time.Time) {
	d.LastUpdated = now.UTC()
}

// Touch stamps the item-level modification time.
func (it *Item) Touch(now time.Time) {
	it.UpdatedAt = now.UTC()
}

// CurrentStatus returns the item status, defaulting to not-started when the
// field was never set.
func (it *Item) CurrentStatus() Status {
	if it.Status == "" {
		return StatusNotStarted
	}
	return it.Status
}
