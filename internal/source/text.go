package source

import (
	"html"
	"regexp"
	"strings"
	"time"
)

// maxDescriptionLen caps normalized descriptions so one verbose posting
// cannot bloat a result set.
const maxDescriptionLen = 2000

var htmlTagRegexp = regexp.MustCompile(`<[^>]*>`)

// cleanDescription converts an HTML (or HTML-encoded) fragment to plain text:
// unescape entities, strip tags, collapse whitespace, cap the length.
func cleanDescription(content string) string {
	if content == "" {
		return ""
	}
	unescaped := html.UnescapeString(content)
	plain := htmlTagRegexp.ReplaceAllString(unescaped, " ")
	collapsed := strings.Join(strings.Fields(plain), " ")
	if len(collapsed) > maxDescriptionLen {
		collapsed = collapsed[:maxDescriptionLen]
	}
	return collapsed
}

// matchesKeywords reports whether any whitespace-split keyword token appears
// as a case-insensitive substring of the combined parts. Providers without
// server-side search use this as the local pre-filter.
func matchesKeywords(keywords string, parts ...string) bool {
	blob := strings.ToLower(strings.Join(parts, " "))
	for _, token := range strings.Fields(strings.ToLower(keywords)) {
		if strings.Contains(blob, token) {
			return true
		}
	}
	return false
}

// parseTime tries each layout in turn and returns a pointer to the first
// successful parse. Unparsable or empty values stay nil: the date filter is
// fail-open and a malformed date must never silently drop a job or be
// replaced with "now".
func parseTime(value string, layouts ...string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
