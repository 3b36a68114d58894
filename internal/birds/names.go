package birds

import (
	"regexp"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`</?[^>]+>`)
	emPattern  = regexp.MustCompile(`(?i)<em[^>]*>([^<]*)</em>`)
)

// CleanName strips every tag-like `<...>` or `</...>` substring from raw.
func CleanName(raw string) string {
	return tagPattern.ReplaceAllString(raw, "")
}

// ScientificName returns the text of the first <em> element in raw, or "".
func ScientificName(raw string) string {
	m := emPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
