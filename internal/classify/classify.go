package classify

import (
	"strings"

	"github.com/gangoo91/coursescout/internal/segment"
)

// indicators is the fixed vocabulary of course-signalling words. A segment
// with none of these is treated as page chrome rather than a listing.
var indicators = []string{
	"course",
	"training",
	"qualification",
	"certificate",
	"diploma",
	"learn",
	"study",
}

// IsCourse reports whether a segment plausibly represents one course record.
// Both conditions must hold, case-insensitively, over the title and body:
// at least one indicator word is present, and the query keyword is present.
// Matching is raw substring containment with no word-boundary awareness; a
// keyword embedded inside a longer unrelated word still counts. That
// looseness is part of the contract, not an oversight.
func IsCourse(s segment.Segment, keyword string) bool {
	haystack := strings.ToLower(s.Title + "\n" + s.Raw)
	found := false
	for _, ind := range indicators {
		if strings.Contains(haystack, ind) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return strings.Contains(haystack, strings.ToLower(keyword))
}
