package application

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// Conventional file names inside a spec directory.
const (
	FileIdeation       = "01-ideation.md"
	FileSpecification  = "02-specification.md"
	FileTasks          = "03-tasks.md"
	FileImplementation = "04-implementation.md"
)

// LinkService connects roadmap items to their spec directories.
type LinkService struct {
	repo     domain.DocumentRepository
	audit    domain.AuditLogger
	root     string
	specsDir string
}

func NewLinkService(repo domain.DocumentRepository, audit domain.AuditLogger, root, specsDir string) *LinkService {
	if specsDir == "" {
		specsDir = "specs"
	}
	return &LinkService{repo: repo, audit: audit, root: root, specsDir: specsDir}
}

// LinkResult describes a completed single-item link.
type LinkResult struct {
	ItemID     string
	Title      string
	SpecDir    string
	DirMissing bool
	Artifacts  *roadmap.LinkedArtifacts
}

// LinkSpec links the spec directory named slug to the item. A missing
// directory is only a warning; linking proceeds with whichever of the four
// conventional files exist. An unknown item id is a hard failure.
func (s *LinkService) LinkSpec(itemID, slug string) (*LinkResult, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	specDir := filepath.Join(s.root, s.specsDir, slug)
	dirMissing := !isDir(specDir)
	if dirMissing {
		log.Warn("spec directory does not exist yet", "dir", specDir)
	}

	item := doc.Item(itemID)
	if item == nil {
		return nil, &roadmap.NotFoundError{ItemID: itemID}
	}

	linked, _ := s.existingArtifacts(slug)
	item.LinkedArtifacts = linked

	now := time.Now().UTC()
	item.Touch(now)
	doc.Touch(now)

	if err := s.repo.Save(doc); err != nil {
		return nil, err
	}

	_ = s.audit.Log("item.link", map[string]any{
		"item_id":   itemID,
		"spec_slug": slug,
	})

	return &LinkResult{
		ItemID:     itemID,
		Title:      item.Title,
		SpecDir:    specDir,
		DirMissing: dirMissing,
		Artifacts:  linked,
	}, nil
}

// existingArtifacts probes the four conventional files under the spec
// directory. Recorded paths are relative to the project root and use forward
// slashes. The count reports how many files were found.
func (s *LinkService) existingArtifacts(slug string) (*roadmap.LinkedArtifacts, int) {
	linked := &roadmap.LinkedArtifacts{SpecSlug: slug}
	count := 0

	probe := func(field *string, name string) {
		rel := path.Join(s.specsDir, slug, name)
		if isFile(filepath.Join(s.root, filepath.FromSlash(rel))) {
			*field = rel
			count++
		}
	}

	probe(&linked.IdeationPath, FileIdeation)
	probe(&linked.SpecPath, FileSpecification)
	probe(&linked.TasksPath, FileTasks)
	probe(&linked.ImplementationPath, FileImplementation)

	return linked, count
}

// artifactsRecorded reports whether everything in fresh is already recorded
// identically on current. Stale extra entries on current are ignored; they
// are never removed automatically.
func artifactsRecorded(current, fresh *roadmap.LinkedArtifacts) bool {
	if current == nil {
		return false
	}
	if current.SpecSlug != fresh.SpecSlug {
		return false
	}
	pairs := []struct{ recorded, found string }{
		{current.IdeationPath, fresh.IdeationPath},
		{current.SpecPath, fresh.SpecPath},
		{current.TasksPath, fresh.TasksPath},
		{current.ImplementationPath, fresh.ImplementationPath},
	}
	for _, p := range pairs {
		if p.found != "" && p.recorded != p.found {
			return false
		}
	}
	return true
}

// Describe returns the populated fields of a LinkedArtifacts in display
// order, for result reporting.
func Describe(la *roadmap.LinkedArtifacts) []string {
	var lines []string
	add := func(key, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", key, value))
		}
	}
	add("specSlug", la.SpecSlug)
	add("ideationPath", la.IdeationPath)
	add("specPath", la.SpecPath)
	add("tasksPath", la.TasksPath)
	add("implementationPath", la.ImplementationPath)
	return lines
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
