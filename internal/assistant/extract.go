package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models sometimes wrap JSON output in a markdown code fence despite
// instructions not to; the rescue pass strips it before giving up.
var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

type extraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// parseExtraction attempts to read a structured extraction from raw model
// output. It reports false when the output is not usable JSON or the name
// field is empty.
func parseExtraction(raw string) (*extraction, bool) {
	trimmed := strings.TrimSpace(raw)

	var result extraction
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		match := jsonBlockRegex.FindStringSubmatch(trimmed)
		if match == nil {
			return nil, false
		}
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &result); err != nil {
			return nil, false
		}
	}

	result.Name = strings.TrimSpace(result.Name)
	result.Description = strings.TrimSpace(result.Description)
	if result.Name == "" {
		return nil, false
	}

	return &result, true
}

// cleanPlainName normalizes a plain-text extraction: trims whitespace and
// stray quote or punctuation characters the model tends to append.
func cleanPlainName(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `".,`)
}
