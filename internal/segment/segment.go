package segment

import (
	"regexp"
	"strings"
)

// Segment is one contiguous slice of the raw document, cut along
// heading-like boundaries. Title holds the first non-empty line with any
// heading markers removed; Raw keeps the full slice including that line.
// Segments are immutable once cut and retain document order.
type Segment struct {
	Raw   string
	Title string
}

var headingRe = regexp.MustCompile(`^#{1,3}\s+`)

// Split cuts a markdown-like document into candidate segments. A new segment
// starts at every line matching one to three leading '#' characters followed
// by whitespace; text before the first heading forms its own candidate.
// Segments with fewer than two non-empty lines are dropped as too thin to be
// a record. An empty document yields an empty slice, never an error.
func Split(doc string) []Segment {
	lines := strings.Split(doc, "\n")
	var out []Segment
	var cur []string

	flush := func() {
		if s, ok := cut(cur); ok {
			out = append(out, s)
		}
		cur = cur[:0]
	}

	for _, line := range lines {
		if headingRe.MatchString(line) {
			flush()
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

// cut builds a Segment from accumulated lines, rejecting slices with fewer
// than two non-empty lines.
func cut(lines []string) (Segment, bool) {
	nonEmpty := 0
	title := ""
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		nonEmpty++
		if title == "" {
			title = strings.TrimSpace(headingRe.ReplaceAllString(t, ""))
		}
	}
	if nonEmpty < 2 || title == "" {
		return Segment{}, false
	}
	return Segment{Raw: strings.Join(lines, "\n"), Title: title}, true
}
