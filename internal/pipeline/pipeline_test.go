package pipeline

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gangoo91/coursescout/internal/field"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
}

func testPipeline() *Pipeline {
	return &Pipeline{
		DefaultURL: "https://catalog.example",
		Source:     "test",
		Seed:       42,
		Now:        fixedNow,
	}
}

func TestExtract_ScenarioWithExplicitFields(t *testing.T) {
	doc := "## Level 3 Electrical Installation Course\n" +
		"This electrical course covers wiring to BS7671 standards and is ideal for learners wanting to start a new career.\n" +
		"Duration: 12 weeks\n" +
		"Price: £1,200\n" +
		"Location: London"

	courses := testPipeline().Extract(doc, Context{Keywords: "electrical"})
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	c := courses[0]
	if c.Title != "Level 3 Electrical Installation Course" {
		t.Fatalf("title: got %q", c.Title)
	}
	if c.Duration != "12 weeks" {
		t.Fatalf("duration: got %q", c.Duration)
	}
	if c.Level != "Level 3" {
		t.Fatalf("level: got %q", c.Level)
	}
	if c.Price != "£1,200" {
		t.Fatalf("price: got %q", c.Price)
	}
	if len(c.Locations) != 1 || c.Locations[0] != "London" {
		t.Fatalf("locations: got %v", c.Locations)
	}
	// No format keyword anywhere in the segment.
	if c.Format != "Flexible" {
		t.Fatalf("format: got %q", c.Format)
	}
	if c.Category != "electrical" {
		t.Fatalf("category: got %q", c.Category)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	if got := testPipeline().Extract("", Context{Keywords: "electrician"}); len(got) != 0 {
		t.Fatalf("expected no courses, got %d", len(got))
	}
}

func TestExtract_MarkupOnlyHeadingYieldsNonEmptyTitle(t *testing.T) {
	doc := "## ***\nElectrician training course available now for everyone."
	got := testPipeline().Extract(doc, Context{Keywords: "electrician"})
	if len(got) != 1 {
		t.Fatalf("expected 1 course, got %d", len(got))
	}
	if got[0].Title == "" {
		t.Fatalf("title must never be empty")
	}
}

func TestExtract_NeverPanicsOnHostileInput(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t\n   ",
		"###",
		"## Broken [link( **unclosed\n£\nstart:",
		strings.Repeat("#", 10000),
		strings.Repeat("## x\ny\n", 5000),
		"## \n\n##  \n x",
	}
	p := testPipeline()
	for _, in := range inputs {
		got := p.Extract(in, Context{Keywords: "electrician"})
		if len(got) > DefaultMaxRecords {
			t.Fatalf("cap exceeded for input %q: %d", in[:min(len(in), 20)], len(got))
		}
	}
}

func TestExtract_CapsOutput(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "## Course %d\nElectrician training available here today.\n\n", i)
	}
	got := testPipeline().Extract(b.String(), Context{Keywords: "electrician"})
	if len(got) != DefaultMaxRecords {
		t.Fatalf("expected %d courses, got %d", DefaultMaxRecords, len(got))
	}
	// Order follows the document.
	if got[0].Title != "Course 0" || got[1].Title != "Course 1" {
		t.Fatalf("output order broken: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestExtract_CustomCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "## Course %d\nElectrician training available here today.\n\n", i)
	}
	p := testPipeline()
	p.MaxRecords = 5
	if got := p.Extract(b.String(), Context{Keywords: "electrician"}); len(got) != 5 {
		t.Fatalf("expected 5 courses, got %d", len(got))
	}
}

func TestExtract_DefaultFill(t *testing.T) {
	doc := "## Electrician Course\nJoin the electrician community today."
	courses := testPipeline().Extract(doc, Context{Keywords: "electrician"})
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	c := courses[0]
	if c.Duration != field.DefaultDuration {
		t.Fatalf("duration default: got %q", c.Duration)
	}
	if c.Price != field.DefaultPrice {
		t.Fatalf("price default: got %q", c.Price)
	}
	if c.Level != field.DefaultLevel {
		t.Fatalf("level default: got %q", c.Level)
	}
	if c.Format != field.DefaultFormat {
		t.Fatalf("format default: got %q", c.Format)
	}
	if c.Provider != field.DefaultProvider {
		t.Fatalf("provider default: got %q", c.Provider)
	}
	if c.Description != field.DefaultDescription {
		t.Fatalf("description default: got %q", c.Description)
	}
	if len(c.Locations) != 1 || c.Locations[0] != field.DefaultLocation {
		t.Fatalf("locations default: got %v", c.Locations)
	}
	if c.URL != "https://catalog.example" {
		t.Fatalf("url fallback: got %q", c.URL)
	}
	// One calendar month from the injected clock.
	if c.StartDate != "2026-09-01" {
		t.Fatalf("startDate default: got %q", c.StartDate)
	}
}

func TestExtract_TagBound(t *testing.T) {
	doc := "## Online Certified NVQ Apprenticeship\n" +
		"Level 2 and Level 3 electrical safety training for every electrician, online and certified."
	courses := testPipeline().Extract(doc, Context{Keywords: "electrician"})
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	tags := courses[0].Tags
	if len(tags) > 3 {
		t.Fatalf("tag cap exceeded: %v", tags)
	}
	vocab := map[string]bool{
		"Online": true, "Certified": true, "NVQ": true, "Apprenticeship": true,
		"Level 2": true, "Level 3": true, "Electrical": true, "Safety": true,
	}
	for _, tag := range tags {
		if !vocab[tag] {
			t.Fatalf("tag %q outside vocabulary", tag)
		}
	}
}

func TestExtract_ThinSegmentNeverClassified(t *testing.T) {
	// One non-empty line mentioning both signals: dropped at segmentation.
	doc := "## Electrician training\n\n## Full Electrician Course\nProper training body line for electricians."
	courses := testPipeline().Extract(doc, Context{Keywords: "electrician"})
	if len(courses) != 1 {
		t.Fatalf("expected only the full segment, got %d", len(courses))
	}
	if courses[0].Title != "Full Electrician Course" {
		t.Fatalf("title: got %q", courses[0].Title)
	}
}

func TestExtract_UniqueIDs(t *testing.T) {
	doc := "## Course A\nElectrician training line one.\n\n## Course B\nElectrician training line two."
	courses := testPipeline().Extract(doc, Context{Keywords: "electrician"})
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].ID == "" || courses[0].ID == courses[1].ID {
		t.Fatalf("ids must be unique and non-empty: %q, %q", courses[0].ID, courses[1].ID)
	}
}
