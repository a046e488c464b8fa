// Package field holds the single-purpose extractors that pull one typed
// value out of a segment's text. Each extractor applies an ordered list of
// pattern rules and returns the first match; when nothing matches it returns
// its documented default, so callers never branch on absence.
package field

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gangoo91/coursescout/internal/segment"
)

// Defaults returned when no pattern rule matches.
const (
	DefaultProvider    = "Training Provider"
	DefaultDescription = "Professional course designed to advance your career with industry-recognised certification."
)

const (
	descriptionMinChars = 50
	descriptionMaxChars = 200
)

var (
	ordinalRe  = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
	headMarkRe = regexp.MustCompile(`^#{1,6}\s*`)

	providerLabelRe = regexp.MustCompile(`(?i)provider\s*[:\-]\s*([^\n]+)`)
	providerByRe    = regexp.MustCompile(`\bby\s+([A-Z][A-Za-z&'.]*(?:\s+[A-Z][A-Za-z&'.]*){0,3})`)
	providerNameRe  = regexp.MustCompile(`([A-Z][A-Za-z&'.]*(?:\s+[A-Z][A-Za-z&'.]*){0,3})\s+(?:course|training)\b`)
)

// Title normalizes a candidate title line: heading markers, a leading
// ordinal like "1. ", markdown link brackets, and emphasis markers are all
// stripped. The caller guarantees a non-empty source line, so there is no
// default; a line that is nothing but markup falls back to its unstripped
// form so the result is never empty.
func Title(line string) string {
	raw := strings.TrimSpace(headMarkRe.ReplaceAllString(strings.TrimSpace(line), ""))
	s := ordinalRe.ReplaceAllString(raw, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.Trim(s, "_ ")
	s = strings.TrimSpace(s)
	if s == "" {
		return raw
	}
	return s
}

// Provider tries, in order: an explicit "provider:" label, a "by <Name>"
// attribution, and a capitalized name directly before "course" or
// "training". The name rules are case-sensitive on purpose so that ordinary
// prose does not get promoted to a provider.
func Provider(text string) string {
	if m := providerLabelRe.FindStringSubmatch(text); len(m) == 2 {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	if m := providerByRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	if m := providerNameRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return DefaultProvider
}

// Description picks the first line after the title that is long enough to be
// descriptive prose and is not itself a heading, truncating with a "..."
// continuation past the bound.
func Description(s segment.Segment) string {
	seenTitle := false
	for _, line := range strings.Split(s.Raw, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if !seenTitle {
			seenTitle = true
			continue
		}
		if strings.HasPrefix(t, "#") {
			continue
		}
		if utf8.RuneCountInString(t) > descriptionMinChars {
			return truncate(t, descriptionMaxChars)
		}
	}
	return DefaultDescription
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
