package application

import (
	"time"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// QueryService answers read-only questions about the document.
type QueryService struct {
	repo domain.DocumentRepository
}

func NewQueryService(repo domain.DocumentRepository) *QueryService {
	return &QueryService{repo: repo}
}

// FindByTitle returns the items whose titles contain the query,
// case-insensitively, in document order.
func (s *QueryService) FindByTitle(query string) ([]roadmap.ItemSummary, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return roadmap.FindByTitle(doc.Items, query), nil
}

// SlugForItem returns the canonical slug of the item's title.
func (s *QueryService) SlugForItem(itemID string) (string, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return "", err
	}
	item := doc.Item(itemID)
	if item == nil {
		return "", &roadmap.NotFoundError{ItemID: itemID}
	}
	return roadmap.Slugify(item.Title), nil
}

// Summary is a compact view of the whole document.
type Summary struct {
	ProjectName string
	LastUpdated time.Time
	Total       int
	Counts      map[roadmap.Status]int
}

// Summarize counts items by status.
func (s *QueryService) Summarize() (*Summary, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ProjectName: doc.ProjectName,
		LastUpdated: doc.LastUpdated,
		Total:       len(doc.Items),
		Counts:      make(map[roadmap.Status]int),
	}
	for i := range doc.Items {
		summary.Counts[doc.Items[i].CurrentStatus()]++
	}
	return summary, nil
}
