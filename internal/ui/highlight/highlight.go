// Package highlight provides syntax highlighting for configuration output.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultStyle is used when no style is named.
const DefaultStyle = "rainbow"

// YAML applies syntax highlighting to YAML using Chroma and the named
// style, writing 256-color terminal escapes. It returns src unchanged if
// highlighting fails.
func YAML(src, style string) string {
	if src == "" {
		return ""
	}
	if style == "" {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "yaml", "terminal256", style); err != nil {
		return src
	}
	return buf.String()
}
