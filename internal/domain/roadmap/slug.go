package roadmap

import (
	"regexp"
	"strings"
)

var (
	slugDrop     = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugSpace    = regexp.MustCompile(`[\s_]+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify converts text into a URL-safe identifier: lowercase, punctuation
// deleted, whitespace and underscore runs become single hyphens, hyphen runs
// collapse, leading and trailing hyphens are trimmed. Empty or all-punctuation
// input yields the empty string. Slugify is idempotent.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = slugDrop.ReplaceAllString(slug, "")
	slug = slugSpace.ReplaceAllString(slug, "-")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
