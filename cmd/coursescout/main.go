package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gangoo91/coursescout/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath   string
		listen       string
		searchURL    string
		courseURL    string
		source       string
		userAgent    string
		cacheDir     string
		maxRecords   int
		fetchTimeout time.Duration
		seed         int64
		inputPath    string
		outputPath   string
		outputPDF    string
		keywords     string
		location     string
		verbose      bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.StringVar(&listen, "listen", "", "HTTP listen address for serve mode")
	flag.StringVar(&searchURL, "search.url", "", "Third-party course search page URL")
	flag.StringVar(&courseURL, "course.url", "", "Fallback canonical URL for records without a link")
	flag.StringVar(&source, "source", "", "Source label reported in responses")
	flag.StringVar(&userAgent, "ua", "", "Custom User-Agent for upstream fetches")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the fetch cache (empty disables)")
	flag.IntVar(&maxRecords, "max.records", 0, "Maximum records per extraction")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Upstream fetch timeout")
	flag.Int64Var(&seed, "seed", 0, "Seed for synthesized record fields (0 = clock)")
	flag.StringVar(&inputPath, "input", "", "Extract from a local document instead of serving")
	flag.StringVar(&outputPath, "output", "", "Write one-shot JSON output here instead of stdout")
	flag.StringVar(&outputPDF, "output.pdf", "", "Also write a PDF course sheet in one-shot mode")
	flag.StringVar(&keywords, "keywords", "", "Search keywords for one-shot mode")
	flag.StringVar(&location, "location", "", "Location for one-shot mode")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Listen:       listen,
		SearchURL:    searchURL,
		CourseURL:    courseURL,
		Source:       source,
		UserAgent:    userAgent,
		CacheDir:     cacheDir,
		MaxRecords:   maxRecords,
		FetchTimeout: fetchTimeout,
		Seed:         seed,
		InputPath:    inputPath,
		OutputPath:   outputPath,
		OutputPDF:    outputPDF,
		Keywords:     keywords,
		Location:     location,
		Verbose:      verbose,
	}
	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)
	app.ApplyDefaults(&cfg)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	var err error
	if cfg.InputPath != "" {
		err = a.RunOnce(ctx)
	} else {
		err = a.Serve(ctx)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("coursescout failed")
	}
}
