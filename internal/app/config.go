package app

import "time"

// Config holds runtime configuration for the service.
type Config struct {
	// Listen is the HTTP listen address for serve mode.
	Listen string

	// SearchURL is the third-party course-search page to fetch and render.
	SearchURL string
	// CourseURL is the fallback canonical URL for records whose segment
	// carries no link of its own.
	CourseURL string
	// Source labels every response envelope and record.
	Source string
	UserAgent string

	// MaxRecords caps one page of extracted records.
	MaxRecords int
	// FetchTimeout bounds the upstream fetch per request.
	FetchTimeout time.Duration
	CacheDir     string

	// Seed makes synthesized record fields reproducible; zero seeds from
	// the clock.
	Seed int64

	// One-shot mode: extract from a local document instead of serving.
	InputPath  string
	OutputPath string
	OutputPDF  string
	Keywords   string
	Location   string

	Verbose bool
}

// Defaults for fields left unset by flags, env, and file config.
const (
	DefaultListen    = ":8085"
	DefaultSearchURL = "https://www.findcourses.co.uk/search"
	DefaultCourseURL = "https://www.findcourses.co.uk"
	DefaultSource    = "findcourses"
	DefaultUserAgent = "coursescout/1.0 (+https://github.com/gangoo91/coursescout)"
)

// ApplyDefaults fills unset fields with the documented defaults.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.CourseURL == "" {
		cfg.CourseURL = DefaultCourseURL
	}
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxRecords == 0 {
		cfg.MaxRecords = 20
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.Keywords == "" {
		cfg.Keywords = "electrician"
	}
	if cfg.Location == "" {
		cfg.Location = "United Kingdom"
	}
}
