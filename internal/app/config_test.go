package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)

	if cfg.Listen != DefaultListen {
		t.Fatalf("listen: got %q", cfg.Listen)
	}
	if cfg.SearchURL != DefaultSearchURL || cfg.CourseURL != DefaultCourseURL {
		t.Fatalf("urls: got %q / %q", cfg.SearchURL, cfg.CourseURL)
	}
	if cfg.MaxRecords != 20 {
		t.Fatalf("maxRecords: got %d", cfg.MaxRecords)
	}
	if cfg.Keywords != "electrician" || cfg.Location != "United Kingdom" {
		t.Fatalf("query defaults: got %q / %q", cfg.Keywords, cfg.Location)
	}
}

func TestApplyDefaults_DoesNotOverrideSetValues(t *testing.T) {
	cfg := Config{Listen: ":9000", MaxRecords: 5}
	ApplyDefaults(&cfg)
	if cfg.Listen != ":9000" || cfg.MaxRecords != 5 {
		t.Fatalf("explicit values clobbered: %+v", cfg)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("SEARCH_URL", "https://env.example/search")
	t.Setenv("MAX_RECORDS", "7")
	t.Setenv("FETCH_TIMEOUT", "30s")

	cfg := Config{}
	ApplyEnvToConfig(&cfg)

	if cfg.SearchURL != "https://env.example/search" {
		t.Fatalf("searchURL: got %q", cfg.SearchURL)
	}
	if cfg.MaxRecords != 7 {
		t.Fatalf("maxRecords: got %d", cfg.MaxRecords)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Fatalf("fetchTimeout: got %v", cfg.FetchTimeout)
	}
}

func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
	t.Setenv("SEARCH_URL", "https://env.example/search")
	cfg := Config{SearchURL: "https://flag.example/search"}
	ApplyEnvToConfig(&cfg)
	if cfg.SearchURL != "https://flag.example/search" {
		t.Fatalf("flag value lost: %q", cfg.SearchURL)
	}
}

func TestLoadAndMergeFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `listen: ":7070"
search:
  url: https://file.example/search
  ua: custom-agent/2.0
defaults:
  courseURL: https://file.example
  source: file-source
max:
  records: 10
fetch:
  timeout: 20s
seed: 99
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Config{Listen: ":8000"} // flag-style value must win
	MergeFileConfig(&cfg, fc)

	if cfg.Listen != ":8000" {
		t.Fatalf("flag value lost: %q", cfg.Listen)
	}
	if cfg.SearchURL != "https://file.example/search" || cfg.UserAgent != "custom-agent/2.0" {
		t.Fatalf("search section: %q / %q", cfg.SearchURL, cfg.UserAgent)
	}
	if cfg.CourseURL != "https://file.example" || cfg.Source != "file-source" {
		t.Fatalf("defaults section: %q / %q", cfg.CourseURL, cfg.Source)
	}
	if cfg.MaxRecords != 10 || cfg.FetchTimeout != 20*time.Second {
		t.Fatalf("limits: %d / %v", cfg.MaxRecords, cfg.FetchTimeout)
	}
	if cfg.Seed != 99 || !cfg.Verbose {
		t.Fatalf("seed/verbose: %d / %v", cfg.Seed, cfg.Verbose)
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
