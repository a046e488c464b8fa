package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration schema. Nested sections map
// naturally onto flags and env.
type FileConfig struct {
	Listen string `yaml:"listen"`

	Search struct {
		URL string `yaml:"url"`
		UA  string `yaml:"ua"`
	} `yaml:"search"`

	Defaults struct {
		CourseURL string `yaml:"courseURL"`
		Source    string `yaml:"source"`
	} `yaml:"defaults"`

	Max struct {
		Records int `yaml:"records"`
	} `yaml:"max"`

	Fetch struct {
		// Timeout is a Go duration string like "15s".
		Timeout string `yaml:"timeout"`
	} `yaml:"fetch"`

	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`

	Seed    int64 `yaml:"seed"`
	Verbose bool  `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// MergeFileConfig fills unset cfg fields from the file. Flags and env win
// over the file; the file wins over built-in defaults.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.Listen == "" {
		cfg.Listen = fc.Listen
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = fc.Search.URL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Search.UA
	}
	if cfg.CourseURL == "" {
		cfg.CourseURL = fc.Defaults.CourseURL
	}
	if cfg.Source == "" {
		cfg.Source = fc.Defaults.Source
	}
	if cfg.MaxRecords == 0 {
		cfg.MaxRecords = fc.Max.Records
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.Seed == 0 {
		cfg.Seed = fc.Seed
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
