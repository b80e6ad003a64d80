package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// ResetService wipes the roadmap back to an empty project.
type ResetService struct {
	repo  domain.DocumentRepository
	audit domain.AuditLogger
}

func NewResetService(repo domain.DocumentRepository, audit domain.AuditLogger) *ResetService {
	return &ResetService{repo: repo, audit: audit}
}

// Reset replaces the project name and summary, clears all items, and stamps
// lastUpdated. timeHorizons is preserved untouched. Blank arguments are
// rejected before anything is loaded or written. Irreversible; no backup is
// taken.
func (s *ResetService) Reset(projectName, projectSummary string) error {
	if strings.TrimSpace(projectName) == "" {
		return fmt.Errorf("%w: project name", roadmap.ErrEmptyField)
	}
	if strings.TrimSpace(projectSummary) == "" {
		return fmt.Errorf("%w: project summary", roadmap.ErrEmptyField)
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	cleared := len(doc.Items)
	doc.ProjectName = projectName
	doc.ProjectSummary = projectSummary
	doc.Items = []roadmap.Item{}
	doc.Touch(time.Now().UTC())

	if err := s.repo.Save(doc); err != nil {
		return err
	}

	_ = s.audit.Log("roadmap.reset", map[string]any{
		"project":       projectName,
		"items_cleared": cleared,
	})
	return nil
}
