package record

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gangoo91/coursescout/internal/field"
	"github.com/gangoo91/coursescout/internal/segment"
)

// Accreditation is presentation filler: the source documents carry no
// accreditation data, so every record gets the same label.
const Accreditation = "Fully Accredited"

// Assembler turns one classified segment into a Course by running every
// field extractor once and filling the remaining fields with synthesized
// values. Rating, enrolled count, and the demand flags are realistic-looking
// filler, not measured facts; all randomness flows through Rand so tests can
// seed it and assert exact output. Now and NewID are injectable for the same
// reason.
type Assembler struct {
	DefaultURL string
	Source     string
	Rand       *rand.Rand
	Now        func() time.Time
	NewID      func() string
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Assembler) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

// Assemble builds a fully populated Course from one segment.
func (a *Assembler) Assemble(s segment.Segment) Course {
	title := field.Title(s.Title)
	now := a.now()
	return Course{
		ID:               a.newID(),
		Title:            title,
		Provider:         field.Provider(s.Raw),
		Description:      field.Description(s),
		Duration:         field.Duration(s.Raw),
		Level:            field.Level(s.Raw),
		Price:            field.Price(s.Raw),
		Rating:           4.0 + math.Floor(a.Rand.Float64()*10)/10,
		EnrolledCount:    50 + a.Rand.Intn(300),
		Category:         Category(title),
		Format:           field.Format(s.Raw),
		StartDate:        field.StartDate(s.Raw, now),
		EndDate:          nil,
		Locations:        field.Locations(s.Raw),
		Tags:             field.Tags(s.Raw),
		Accreditation:    Accreditation,
		Prerequisites:    []string{},
		LearningOutcomes: []string{},
		HighDemand:       a.Rand.Intn(2) == 1,
		Trending:         a.Rand.Intn(2) == 1,
		Source:           a.Source,
		URL:              field.CanonicalURL(s.Raw, a.DefaultURL),
		LastUpdated:      now.UTC().Format(time.RFC3339),
	}
}

// Category derives a coarse bucket purely from title keywords.
func Category(title string) string {
	low := strings.ToLower(title)
	switch {
	case strings.Contains(low, "electrical"):
		return "electrical"
	case strings.Contains(low, "health") || strings.Contains(low, "safety"):
		return "health-safety"
	case strings.Contains(low, "business") || strings.Contains(low, "management"):
		return "business"
	case strings.Contains(low, "technical") || strings.Contains(low, "engineering"):
		return "technical"
	default:
		return "general"
	}
}
