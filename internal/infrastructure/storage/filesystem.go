// Package storage persists the roadmap document as a JSON file inside the
// project tree.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// DefaultDocumentFile is the conventional roadmap location relative to the
// project root.
const DefaultDocumentFile = "roadmap/roadmap.json"

// FilesystemRepository reads and writes the roadmap document. Every call
// touches the file; nothing is cached across invocations.
type FilesystemRepository struct {
	path        string
	retryConfig retry.Config
}

// NewFilesystemRepository creates a repository for the document at
// root/documentFile.
func NewFilesystemRepository(root, documentFile string) *FilesystemRepository {
	if documentFile == "" {
		documentFile = DefaultDocumentFile
	}
	return &FilesystemRepository{
		path: filepath.Join(root, documentFile),
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Path returns the absolute location of the roadmap file.
func (r *FilesystemRepository) Path() string {
	return r.path
}

// LoadRaw returns the document bytes without decoding them.
func (r *FilesystemRepository) LoadRaw() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", roadmap.ErrDocumentNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	return data, nil
}

// Load parses the roadmap document. A missing file reports
// roadmap.ErrDocumentNotFound; malformed JSON reports roadmap.ErrDocumentParse
// with the decoder diagnostic.
func (r *FilesystemRepository) Load() (*roadmap.Document, error) {
	retryer := retry.New[*roadmap.Document](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*roadmap.Document, error) {
		data, err := r.LoadRaw()
		if err != nil {
			return nil, err
		}

		var doc roadmap.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", roadmap.ErrDocumentParse, err)
		}
		return &doc, nil
	})
}

// Save serializes the full document with 2-space indentation and a trailing
// newline, then overwrites the file in place. The write is not atomic; a
// crash mid-write can corrupt the file.
func (r *FilesystemRepository) Save(doc *roadmap.Document) error {
	if doc.Items == nil {
		doc.Items = []roadmap.Item{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", roadmap.ErrDocumentWrite, err)
	}
	data = append(data, '\n')

	// G301: Use 0700 for directories
	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("%w: %v", roadmap.ErrDocumentWrite, err)
	}

	// G306: Use 0600 for files
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", roadmap.ErrDocumentWrite, err)
	}
	return nil
}
