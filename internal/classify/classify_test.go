package classify

import (
	"testing"

	"github.com/gangoo91/coursescout/internal/segment"
)

func seg(title, raw string) segment.Segment {
	return segment.Segment{Title: title, Raw: raw}
}

func TestIsCourse_RequiresBothSignals(t *testing.T) {
	// Indicator word without the query keyword: excluded.
	if IsCourse(seg("Plumbing Training", "Plumbing Training\nLearn pipework basics."), "electrician") {
		t.Fatalf("indicator-only segment should be excluded")
	}
	// Keyword without any indicator word: excluded.
	if IsCourse(seg("About Us", "About Us\nWe employ every electrician in the region."), "electrician") {
		t.Fatalf("keyword-only segment should be excluded")
	}
	// Both present: included.
	if !IsCourse(seg("Electrician Training", "Electrician Training\nHands-on training for electricians."), "electrician") {
		t.Fatalf("segment with both signals should be included")
	}
}

func TestIsCourse_CaseInsensitive(t *testing.T) {
	s := seg("ELECTRICIAN COURSE", "ELECTRICIAN COURSE\nDETAILS FOLLOW.")
	if !IsCourse(s, "Electrician") {
		t.Fatalf("matching must ignore case")
	}
}

func TestIsCourse_SubstringMatchInsideLongerWord(t *testing.T) {
	// Raw substring containment: a keyword embedded in an unrelated longer
	// word still matches. Looser than word-boundary matching, and kept so.
	s := seg("Study Notes", "Study Notes\nCovers electricians and electricianship topics.")
	if !IsCourse(s, "ician") {
		t.Fatalf("embedded keyword should still match")
	}
}

func TestIsCourse_IndicatorMayBeInTitleOrBody(t *testing.T) {
	if !IsCourse(seg("Wiring Diploma", "Wiring Diploma\nFor working electricians."), "electrician") {
		t.Fatalf("indicator in title should count")
	}
	if !IsCourse(seg("Wiring Skills", "Wiring Skills\nA short course for electricians."), "electrician") {
		t.Fatalf("indicator in body should count")
	}
}
