package sorter

import (
	"strings"
	"unicode"
)

// Line is a single source line. Removed marks a line for omission at
// render time; once set, the original text is no longer meaningful.
type Line struct {
	Text    string
	Removed bool
}

// NewLines wraps raw file lines for processing
func NewLines(raw []string) []Line {
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Text: text}
	}
	return lines
}

// IsBlank reports whether the line is empty or contains only whitespace
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// stripSpaces removes every whitespace character from s
func stripSpaces(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripComment truncates s at the first line comment marker
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// pathKey returns the comparison key for an import line: all whitespace
// removed, then truncated to start at the first quote so that aliased
// and plain imports compare on the quoted path text alone.
func pathKey(s string) string {
	stripped := stripSpaces(s)
	if i := strings.Index(stripped, `"`); i >= 0 {
		return stripped[i:]
	}
	return stripped
}
