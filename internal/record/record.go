// Package record defines the fixed-shape course record and the assembler
// that merges extractor output with synthesized presentation fields.
package record

// Course is the pipeline's output unit. Every field is populated on
// construction: extractors fall back to documented defaults, so downstream
// consumers never branch on absence. EndDate is the one nullable field.
type Course struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Provider         string   `json:"provider"`
	Description      string   `json:"description"`
	Duration         string   `json:"duration"`
	Level            string   `json:"level"`
	Price            string   `json:"price"`
	Rating           float64  `json:"rating"`
	EnrolledCount    int      `json:"enrolledCount"`
	Category         string   `json:"category"`
	Format           string   `json:"format"`
	StartDate        string   `json:"startDate"`
	EndDate          *string  `json:"endDate"`
	Locations        []string `json:"locations"`
	Tags             []string `json:"tags"`
	Accreditation    string   `json:"accreditation"`
	Prerequisites    []string `json:"prerequisites"`
	LearningOutcomes []string `json:"learningOutcomes"`
	HighDemand       bool     `json:"highDemand"`
	Trending         bool     `json:"trending"`
	Source           string   `json:"source"`
	URL              string   `json:"url"`
	LastUpdated      string   `json:"lastUpdated"`
}
