package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/nrennie/sentiment-analysis/internal/app"
	"github.com/nrennie/sentiment-analysis/internal/config"
	"github.com/nrennie/sentiment-analysis/internal/errors"
	"github.com/nrennie/sentiment-analysis/internal/platform/logging"
	"github.com/nrennie/sentiment-analysis/internal/platform/version"
	"github.com/nrennie/sentiment-analysis/internal/wordcloud"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func report(result *app.Result) {
	fmt.Printf("mean_sentiment\t%.6f\n", result.Mean)
	if result.VaderCompound != nil {
		fmt.Printf("vader_compound\t%.6f\n", *result.VaderCompound)
	}

	fmt.Println("word\tcount\tscore")
	for _, w := range result.Words {
		score := ""
		if w.Score != nil {
			score = strconv.Itoa(*w.Score)
		}
		fmt.Printf("%s\t%d\t%s\n", w.Word, w.Count, score)
	}
}

func renderCloud(cfg *config.Config, result *app.Result) {
	opts := wordcloud.Options{
		Width:       cfg.CloudWidth,
		Height:      cfg.CloudHeight,
		MaxFontSize: float64(cfg.CloudMaxFont),
		Seed:        cfg.CloudSeed,
		Background:  color.White,
	}
	if err := wordcloud.SavePNG(cfg.OutputPNG, result.Words, opts); err != nil {
		slog.Error("Failed to render word cloud", "error", err, "path", cfg.OutputPNG)
		os.Exit(errors.ExitCodeFor(err))
	}
	slog.Info("Word cloud written", "path", cfg.OutputPNG, "words", len(result.Words))
}

func main() {
	showVersion := flag.Bool("version", false, "print build information and exit")
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("sentiment %s (commit %s, built %s, %s)\n",
			info.Version, info.Commit, info.BuildTime, info.GoVersion)
		return
	}

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Pipeline starting",
		"source", cfg.InputSource, "top_k", cfg.TopK, "version", version.Get().Version)

	pipeline, err := app.New(cfg, clockwork.NewRealClock())
	if err != nil {
		slog.Error("Failed to build pipeline", "error", err)
		os.Exit(errors.ExitCodeFor(err))
	}

	result, err := pipeline.Run(context.Background())
	if err != nil {
		slog.Error("Pipeline failed", "error", err, "type", errors.TypeOf(err))
		os.Exit(errors.ExitCodeFor(err))
	}

	report(result)

	if cfg.OutputPNG != "" {
		renderCloud(cfg, result)
	}
}
