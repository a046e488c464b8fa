package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gangoo91/coursescout/internal/cache"
	"github.com/gangoo91/coursescout/internal/export"
	"github.com/gangoo91/coursescout/internal/fetch"
	"github.com/gangoo91/coursescout/internal/pipeline"
	"github.com/gangoo91/coursescout/internal/server"
)

// App wires the fetch, render, and extraction layers behind either an HTTP
// server or a one-shot file run.
type App struct {
	cfg     Config
	handler *server.Handler
}

// New builds an App from a fully defaulted Config.
func New(cfg Config) *App {
	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       3,
		PerRequestTimeout: cfg.FetchTimeout,
	}
	if cfg.CacheDir != "" {
		client.Cache = &cache.Store{Dir: cfg.CacheDir}
	}
	p := &pipeline.Pipeline{
		MaxRecords: cfg.MaxRecords,
		DefaultURL: cfg.CourseURL,
		Source:     cfg.Source,
		Seed:       cfg.Seed,
	}
	return &App{
		cfg: cfg,
		handler: &server.Handler{
			Pipeline:  p,
			Fetcher:   client,
			SearchURL: cfg.SearchURL,
			Source:    cfg.Source,
			Timeout:   cfg.FetchTimeout,
		},
	}
}

// Serve runs the HTTP server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           a.handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.cfg.Listen).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// RunOnce extracts from a local markdown-like document and writes the course
// list as JSON to OutputPath (stdout when empty), plus an optional PDF
// course sheet.
func (a *App) RunOnce(_ context.Context) error {
	data, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	courses := a.handler.Pipeline.Extract(string(data), pipeline.Context{
		Keywords: a.cfg.Keywords,
		Location: a.cfg.Location,
	})
	log.Info().Int("count", len(courses)).Str("input", a.cfg.InputPath).Msg("extraction complete")

	out, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("encode courses: %w", err)
	}
	if a.cfg.OutputPath == "" {
		fmt.Println(string(out))
	} else if err := os.WriteFile(a.cfg.OutputPath, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if a.cfg.OutputPDF != "" {
		if err := export.WritePDF(courses, a.cfg.OutputPDF); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDF).Msg("course sheet written")
	}
	return nil
}
