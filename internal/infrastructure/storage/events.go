package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
)

// FileEventLog appends mutation events to a JSON Lines file next to the
// roadmap document.
type FileEventLog struct {
	mu   sync.Mutex
	path string
}

// NewFileEventLog creates an event log at the given path. The parent
// directory is created on first write, not at construction time.
func NewFileEventLog(path string) *FileEventLog {
	return &FileEventLog{path: path}
}

// Append writes one event as a single JSON line.
func (l *FileEventLog) Append(event domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0750); err != nil {
		return fmt.Errorf("create event log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	data = append(data, '\n')

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}
