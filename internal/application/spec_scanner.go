package application

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// uuidPattern matches the v4 UUID shape roadmap item ids conventionally use.
const uuidPattern = `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`

var (
	uuidRe        = regexp.MustCompile(`(?i)` + uuidPattern)
	frontMatterRe = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---`)

	// Legacy free-text reference shapes predating front-matter support.
	legacyIDRe = regexp.MustCompile(`(?i)\*\*(?:roadmapId|Roadmap ID):\*\*\s*(` + uuidPattern + `)`)
	relatedRe  = regexp.MustCompile(`\*\*Related:\*\*.*?\((` + uuidPattern + `)\)`)
)

// ExtractRoadmapID pulls a roadmap item id out of a spec directory's ideation
// or specification file. The YAML front-matter roadmapId key is checked
// first, then the two legacy free-text shapes. Returns "" when no reference
// is found.
func ExtractRoadmapID(specDir string) string {
	for _, name := range []string{FileIdeation, FileSpecification} {
		content, err := os.ReadFile(filepath.Join(specDir, name))
		if err != nil {
			continue
		}

		if id := frontMatterID(content); id != "" {
			return id
		}
		if m := legacyIDRe.FindSubmatch(content); m != nil {
			return string(m[1])
		}
		if m := relatedRe.FindSubmatch(content); m != nil {
			return string(m[1])
		}
	}
	return ""
}

func frontMatterID(content []byte) string {
	m := frontMatterRe.FindSubmatch(content)
	if m == nil {
		return ""
	}

	var front map[string]any
	if err := yaml.Unmarshal(m[1], &front); err != nil {
		// Malformed front-matter still gets a plain text scan.
		if sub := legacyFrontRe.FindSubmatch(m[1]); sub != nil {
			return string(sub[1])
		}
		return ""
	}

	for key, value := range front {
		if !strings.EqualFold(key, "roadmapId") {
			continue
		}
		if str, ok := value.(string); ok {
			if id := uuidRe.FindString(str); id != "" {
				return id
			}
		}
	}
	return ""
}

var legacyFrontRe = regexp.MustCompile(`(?i)roadmapId:\s*(` + uuidPattern + `)`)
