package field

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocation fills the locations list when no "location:" line exists.
const DefaultLocation = "Multiple Locations"

// maxTags bounds the tag list on every record.
const maxTags = 3

// tagVocabulary is the controlled set of allowed tags; matches are collected
// in this order.
var tagVocabulary = []string{
	"Online",
	"Certified",
	"NVQ",
	"Apprenticeship",
	"Level 2",
	"Level 3",
	"Electrical",
	"Safety",
}

var (
	startLabelRe = regexp.MustCompile(`(?i)\bstarts?\s*[:\-]\s*([^\n]+)`)
	bareDateRe   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	locationRe   = regexp.MustCompile(`(?i)\blocations?\s*[:\-]\s*([^\n]+)`)
	urlRe        = regexp.MustCompile(`https?://[^\s)]+`)
)

var titleCaser = cases.Title(language.BritishEnglish, cases.NoLower)

// StartDate extracts an explicit "starts:" value or a bare d/m/y date. With
// no evidence it synthesizes one calendar month from now in ISO form, which
// is why the clock is injected rather than read here.
func StartDate(text string, now time.Time) string {
	if m := startLabelRe.FindStringSubmatch(text); len(m) == 2 {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	if m := bareDateRe.FindString(text); m != "" {
		return m
	}
	return now.AddDate(0, 1, 0).Format("2006-01-02")
}

// Locations extracts a "location:" line as a single-element list, title-cased
// for display consistency.
func Locations(text string) []string {
	if m := locationRe.FindStringSubmatch(text); len(m) == 2 {
		if v := strings.TrimSpace(m[1]); v != "" {
			return []string{titleCaser.String(v)}
		}
	}
	return []string{DefaultLocation}
}

// Tags scans the controlled vocabulary against the text, case-insensitively,
// collecting matches in vocabulary order up to the cap.
func Tags(text string) []string {
	low := strings.ToLower(text)
	tags := make([]string, 0, maxTags)
	for _, term := range tagVocabulary {
		if strings.Contains(low, strings.ToLower(term)) {
			tags = append(tags, term)
			if len(tags) == maxTags {
				break
			}
		}
	}
	return tags
}

// CanonicalURL returns the first http(s) token, stopping at whitespace or a
// closing parenthesis so markdown links extract cleanly. The fallback is
// supplied by the caller; the extractor carries no site address of its own.
func CanonicalURL(text, fallback string) string {
	if m := urlRe.FindString(text); m != "" {
		return m
	}
	return fallback
}
