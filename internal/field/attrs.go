package field

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultDuration = "4-6 weeks"
	DefaultLevel    = "All Levels"
	DefaultPrice    = "Price on enquiry"
	DefaultFormat   = "Flexible"
)

var (
	durationRe = regexp.MustCompile(`(?i)\b(\d+)\s*(week|month|year|day)s?\b`)
	priceRe    = regexp.MustCompile(`£\d{1,3}(?:,\d{3})*(?:\.\d{2})?|£\d+`)
)

// levelChecks are ordered by priority: an explicit numbered level beats a
// loose difficulty word, so "Level 3 Advanced Diploma" reports "Level 3".
var levelChecks = []struct{ needle, value string }{
	{"level 3", "Level 3"},
	{"level 2", "Level 2"},
	{"level 1", "Level 1"},
	{"advanced", "Advanced"},
	{"intermediate", "Intermediate"},
	{"beginner", "Beginner"},
}

var formatChecks = []struct{ needle, value string }{
	{"online", "Online"},
	{"part-time", "Part-time"},
	{"part time", "Part-time"},
	{"full-time", "Full-time"},
	{"full time", "Full-time"},
	{"evening", "Evening"},
	{"weekend", "Weekend"},
}

// Duration extracts "<n> <unit>" spans like "12 weeks" or "1 year",
// normalizing the unit's plural to the count.
func Duration(text string) string {
	m := durationRe.FindStringSubmatch(text)
	if len(m) != 3 {
		return DefaultDuration
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultDuration
	}
	unit := strings.ToLower(m[2])
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", n, unit)
}

// Level returns the first matching level indicator in priority order.
func Level(text string) string {
	low := strings.ToLower(text)
	for _, c := range levelChecks {
		if strings.Contains(low, c.needle) {
			return c.value
		}
	}
	return DefaultLevel
}

// Price returns the first sterling amount verbatim, thousands separators
// included.
func Price(text string) string {
	if m := priceRe.FindString(text); m != "" {
		return m
	}
	return DefaultPrice
}

// Format returns the first matching delivery-format keyword in priority
// order; the hyphen is optional on the part-time/full-time pair.
func Format(text string) string {
	low := strings.ToLower(text)
	for _, c := range formatChecks {
		if strings.Contains(low, c.needle) {
			return c.value
		}
	}
	return DefaultFormat
}
