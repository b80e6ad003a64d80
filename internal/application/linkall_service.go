package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// LinkOutcome classifies what the bulk linker did with one spec directory.
type LinkOutcome string

const (
	OutcomeLinked    LinkOutcome = "linked"
	OutcomeSkipped   LinkOutcome = "skipped"
	OutcomeUnmatched LinkOutcome = "unmatched"
)

// LinkAllEntry is the per-directory result of a bulk run.
type LinkAllEntry struct {
	Slug      string
	Title     string
	Outcome   LinkOutcome
	Stage     string
	Artifacts *roadmap.LinkedArtifacts
}

// LinkAllReport summarizes a bulk run.
type LinkAllReport struct {
	Entries   []LinkAllEntry
	Linked    int
	Skipped   int
	Unmatched int
	ItemCount int
	Saved     bool
}

// LinkAll scans every spec directory and links each one to its owning item.
// The document is saved at most once, only when something changed and dryRun
// is off. Directories with no recognized files are ignored; directories with
// no matching item are reported unmatched and skipped.
func (s *LinkService) LinkAll(dryRun bool) (*LinkAllReport, error) {
	specsRoot := filepath.Join(s.root, s.specsDir)
	if !isDir(specsRoot) {
		return nil, fmt.Errorf("specs directory not found: %s", specsRoot)
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	dirs, err := os.ReadDir(specsRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", specsRoot, err)
	}

	report := &LinkAllReport{ItemCount: len(doc.Items)}
	now := time.Now().UTC()
	changed := false

	for _, entry := range dirs {
		if !entry.IsDir() {
			continue
		}
		slug := entry.Name()

		fresh, count := s.existingArtifacts(slug)
		if count == 0 {
			continue
		}

		roadmapID := ExtractRoadmapID(filepath.Join(specsRoot, slug))

		item, stage := matchItem(doc.Items, slug, roadmapID)
		if item == nil {
			report.Entries = append(report.Entries, LinkAllEntry{Slug: slug, Outcome: OutcomeUnmatched})
			report.Unmatched++
			continue
		}
		if stage == stageFuzzy {
			// The containment fallback can bind the wrong item when one
			// slug is a prefix of another; surface which stage fired.
			log.Debug("fuzzy slug match", "spec", slug, "item", item.ID, "title", item.Title)
		}

		if artifactsRecorded(item.LinkedArtifacts, fresh) {
			report.Entries = append(report.Entries, LinkAllEntry{
				Slug: slug, Title: item.Title, Outcome: OutcomeSkipped, Stage: stage,
			})
			report.Skipped++
			continue
		}

		if !dryRun {
			item.LinkedArtifacts = fresh
			item.Touch(now)
			changed = true
		}
		report.Entries = append(report.Entries, LinkAllEntry{
			Slug: slug, Title: item.Title, Outcome: OutcomeLinked, Stage: stage, Artifacts: fresh,
		})
		report.Linked++
	}

	if changed && !dryRun {
		doc.Touch(now)
		if err := s.repo.Save(doc); err != nil {
			return nil, err
		}
		report.Saved = true

		_ = s.audit.Log("item.link-all", map[string]any{
			"linked":    report.Linked,
			"skipped":   report.Skipped,
			"unmatched": report.Unmatched,
		})
	}

	return report, nil
}

// Match stages, in priority order.
const (
	stageRoadmapID = "roadmap-id"
	stageSpecSlug  = "spec-slug"
	stageTitleSlug = "title-slug"
	stageFuzzy     = "fuzzy-slug"
)

// matchItem resolves the owning item for a spec directory: embedded roadmap
// id first, then recorded specSlug, then exact slug-of-title, then substring
// containment either direction. The first matching item in document order
// wins.
func matchItem(items []roadmap.Item, slug, roadmapID string) (*roadmap.Item, string) {
	if roadmapID != "" {
		for i := range items {
			if items[i].ID == roadmapID {
				return &items[i], stageRoadmapID
			}
		}
	}

	for i := range items {
		la := items[i].LinkedArtifacts
		if la != nil && la.SpecSlug == slug {
			return &items[i], stageSpecSlug
		}
	}

	for i := range items {
		if roadmap.Slugify(items[i].Title) == slug {
			return &items[i], stageTitleSlug
		}
	}

	for i := range items {
		titleSlug := roadmap.Slugify(items[i].Title)
		if titleSlug == "" {
			continue
		}
		if strings.Contains(slug, titleSlug) || strings.Contains(titleSlug, slug) {
			return &items[i], stageFuzzy
		}
	}

	return nil, ""
}
