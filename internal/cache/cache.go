// Package cache is a small on-disk store for fetched pages, keyed by URL.
// It exists to support conditional revalidation: the fetcher replays stored
// validators and serves the stored body on 304.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one cached response. Body travels inside the JSON document, so a
// URL maps to exactly one file on disk.
type Entry struct {
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"last_modified"`
	SavedAt      time.Time `json:"saved_at"`
	Body         []byte    `json:"body"`
}

// Store writes entries as <sha256(url)>.json under Dir. Deterministic, no
// eviction; callers that want a bounded cache point Dir at a temp directory.
type Store struct {
	Dir string
}

func (s *Store) path(url string) (string, error) {
	if s == nil || s.Dir == "" {
		return "", errors.New("cache dir not configured")
	}
	h := sha256.Sum256([]byte(url))
	return filepath.Join(s.Dir, hex.EncodeToString(h[:])+".json"), nil
}

// Load returns the stored entry for url, or an error when absent.
func (s *Store) Load(_ context.Context, url string) (*Entry, error) {
	p, err := s.path(url)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	return &e, nil
}

// Save stores a response, replacing any previous entry for url. The write
// goes through a temp file and rename so readers never observe a torn entry.
func (s *Store) Save(_ context.Context, url, contentType, etag, lastModified string, body []byte) error {
	p, err := s.path(url)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	e := Entry{
		URL:          url,
		ContentType:  contentType,
		ETag:         etag,
		LastModified: lastModified,
		SavedAt:      time.Now().UTC(),
		Body:         body,
	}
	data, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return os.Rename(tmp, p)
}
