package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// ParseKeyValueArgs turns key=value arguments into typed updates. Each value
// is decoded as JSON when possible, so "5" becomes a number and `["x"]` a
// list; anything that does not decode stays a literal string.
func ParseKeyValueArgs(args []string) (map[string]any, error) {
	updates := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q (expected key=value)", roadmap.ErrInvalidKeyValue, arg)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: %q (empty key)", roadmap.ErrInvalidKeyValue, arg)
		}
		updates[key] = parseValue(value)
	}
	return updates, nil
}

func parseValue(value string) any {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return value
	}
	return decoded
}
