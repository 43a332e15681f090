package ai

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a reply contains no JSON object.
var ErrNoJSONObject = errors.New("no JSON object in model reply")

// ExtractJSONObject trims markdown fences and surrounding prose from a model
// reply, returning the outermost {...} span.
func ExtractJSONObject(reply string) (string, error) {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}
