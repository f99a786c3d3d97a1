package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/vectrust/benchcmp/internal/apperr"
	"github.com/vectrust/benchcmp/internal/bench/compare"
	"github.com/vectrust/benchcmp/internal/bench/report"
	"github.com/vectrust/benchcmp/internal/bench/results"
	"github.com/vectrust/benchcmp/internal/bench/spec"
	"github.com/vectrust/benchcmp/pkg/config/env"
)

func main() {
	env.LoadDotEnv(".env")
	cfg := parseFlags()

	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	os.Exit(run(cfg))
}

func run(cfg cliConfig) int {
	if cfg.ResultsDir == "" {
		slog.Error("Missing results directory argument")
		return 1
	}

	info, err := os.Stat(cfg.ResultsDir)
	if err != nil || !info.IsDir() {
		slog.Error("Results directory not found", "path", cfg.ResultsDir)
		return 1
	}

	s, err := loadSpec(cfg.SpecPath)
	if err != nil {
		slog.Error("Failed to load comparison spec", "path", cfg.SpecPath, "error", err)
		return 1
	}

	baseline, target, err := loadLatest(cfg.ResultsDir, s)
	if err != nil {
		slog.Error("Failed to load benchmark results", "error", err)
		return 1
	}

	c, err := compare.Compare(baseline, target, s.Categories)
	if err != nil {
		var nce *apperr.NotComparableError
		if errors.As(err, &nce) {
			// Nothing to compare is a diagnostic, not a failure.
			slog.Info("Cannot generate comparison", "reason", nce.Message)
			return 0
		}
		slog.Error("Comparison failed", "error", err)
		return 1
	}

	r := report.Generate(c, s, time.Now())

	mdPath, jsonPath, err := report.WriteFiles(r, cfg.ResultsDir)
	if err != nil {
		slog.Error("Failed to write report files", "error", err)
		return 1
	}

	report.WriteConsoleSummary(r, os.Stdout, mdPath, jsonPath)
	return 0
}

func loadSpec(path string) (*spec.CompareSpec, error) {
	if path == "" {
		return spec.Default(), nil
	}
	return spec.LoadFromFile(path)
}

func loadLatest(dir string, s *spec.CompareSpec) (baseline, target *results.ResultSet, err error) {
	baselineSets, err := results.Load(dir, results.Family{Label: s.Baseline.Label, Prefix: s.Baseline.Prefix})
	if err != nil {
		return nil, nil, err
	}
	targetSets, err := results.Load(dir, results.Family{Label: s.Target.Label, Prefix: s.Target.Prefix})
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("Found result files", "source", s.Baseline.Label, "count", len(baselineSets))
	slog.Debug("Found result files", "source", s.Target.Label, "count", len(targetSets))

	return results.Latest(baselineSets), results.Latest(targetSets), nil
}
