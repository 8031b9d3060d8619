// Package main is the entry point for the koyomi calendar generator.
//
// One run fetches the Japanese national-holiday dataset once, then
// writes twelve printable A3 SVG pages (one per logical month of the
// target year) into the output directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/zapponejosh/koyomi/internal/config"
	"github.com/zapponejosh/koyomi/internal/holiday"
	"github.com/zapponejosh/koyomi/internal/logger"
	"github.com/zapponejosh/koyomi/internal/svgpage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting calendar generation",
		slog.Int("year", cfg.TargetYear),
		slog.String("output_dir", cfg.OutputDir),
	)

	if err := run(cfg, log); err != nil {
		log.Error("generation failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("calendar generation complete", slog.String("output_dir", cfg.OutputDir))
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}

	// The holiday map is needed by every page, so a failed fetch
	// aborts before anything is written.
	holidays, err := holiday.Fetch(ctx, client, cfg.HolidayURL, cfg.TargetYear)
	if err != nil {
		return err
	}
	log.Info("fetched holidays", slog.Int("count", len(holidays)))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", cfg.OutputDir, err)
	}

	composer := &svgpage.Composer{
		Year:     cfg.TargetYear,
		Holidays: holidays,
		Theme:    svgpage.DefaultTheme(),
	}

	bar := progressbar.NewOptions(12,
		progressbar.OptionSetDescription("rendering pages"),
		progressbar.OptionSetWidth(20),
	)
	defer bar.Close()

	for slot := 1; slot <= 12; slot++ {
		doc := composer.Render(slot)
		path := filepath.Join(cfg.OutputDir, composer.FileName(slot))
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug("saved page", slog.String("file", path), slog.Int("slot", slot))
		_ = bar.Add(1)
	}

	return nil
}
