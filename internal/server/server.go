// Package server exposes the extraction pipeline over HTTP with the JSON
// envelope and permissive CORS the web client expects.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gangoo91/coursescout/internal/fetch"
	"github.com/gangoo91/coursescout/internal/pipeline"
	"github.com/gangoo91/coursescout/internal/record"
	"github.com/gangoo91/coursescout/internal/render"
)

// Query parameter defaults.
const (
	DefaultKeywords = "electrician"
	DefaultLocation = "United Kingdom"
)

// Envelope is the success response shape. Courses is never null: an empty
// result serializes as [].
type Envelope struct {
	Courses []record.Course `json:"courses"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Source  string          `json:"source"`
}

// ErrorEnvelope mirrors Envelope with an error message and empty results, so
// clients parse one shape on both paths.
type ErrorEnvelope struct {
	Error   string          `json:"error"`
	Courses []record.Course `json:"courses"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Source  string          `json:"source"`
}

// Handler wires fetch, render, and extract behind GET /api/courses.
type Handler struct {
	Pipeline *pipeline.Pipeline
	Fetcher  *fetch.Client
	// SearchURL is the third-party search page; keywords, location, and
	// page are appended as query parameters.
	SearchURL string
	Source    string
	// Timeout bounds the whole fetch+extract handling of one request.
	Timeout time.Duration
}

// Routes returns the handler's mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses", h.handleCourses)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (h *Handler) handleCourses(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodGet:
	default:
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	keywords := r.URL.Query().Get("keywords")
	if keywords == "" {
		keywords = DefaultKeywords
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = DefaultLocation
	}
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	body, _, err := h.Fetcher.Get(ctx, h.searchURL(keywords, location, page))
	if err != nil {
		log.Warn().Err(err).Str("keywords", keywords).Msg("search page fetch failed")
		h.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	doc := render.FromHTML(body)
	courses := h.Pipeline.Extract(doc, pipeline.Context{Keywords: keywords, Location: location})
	if courses == nil {
		courses = []record.Course{}
	}
	log.Info().Str("keywords", keywords).Str("location", location).Int("count", len(courses)).Msg("extraction complete")

	writeJSON(w, http.StatusOK, Envelope{
		Courses: courses,
		Total:   len(courses),
		Page:    page,
		Source:  h.Source,
	})
}

func (h *Handler) searchURL(keywords, location string, page int) string {
	u, err := url.Parse(h.SearchURL)
	if err != nil {
		return h.SearchURL
	}
	q := u.Query()
	q.Set("q", keywords)
	q.Set("location", location)
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// writeError always reports page 1: the client resets pagination on any
// upstream failure.
func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{
		Error:   msg,
		Courses: []record.Course{},
		Total:   0,
		Page:    1,
		Source:  h.Source,
	})
}

func setCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
