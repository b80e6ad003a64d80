package roadmap

import "strings"

// ItemSummary is the compact projection returned by title searches.
type ItemSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Moscow string `json:"moscow"`
}

// FindByTitle returns every item whose title contains the query,
// case-insensitively, preserving document order.
func FindByTitle(items []Item, query string) []ItemSummary {
	q := strings.ToLower(query)
	var matches []ItemSummary
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) {
			matches = append(matches, ItemSummary{
				ID:     it.ID,
				Title:  it.Title,
				Status: it.CurrentStatus(),
				Moscow: it.Moscow,
			})
		}
	}
	return matches
}
