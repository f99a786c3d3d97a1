package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectrust/benchcmp/internal/bench/report"
)

func writeResult(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func reportFiles(t *testing.T, dir, ext string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dir, "performance_comparison_*"+ext))
	require.NoError(t, err)
	return paths
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	// the older rust run carries decoy values; only the latest may be compared
	writeResult(t, dir, "rust_benchmark_001.json",
		`{"timestamp":"2025-01-01T08:00:00","results":{"search_10k":100.0,"insert_1k":100.0,"batch_insert_1000":100.0}}`)
	writeResult(t, dir, "rust_benchmark_002.json",
		`{"timestamp":"2025-01-02T08:00:00","results":{"search_10k":1.0,"insert_1k":2.0,"batch_insert_1000":4.0}}`)
	writeResult(t, dir, "nodejs_benchmark_001.json",
		`{"timestamp":"2025-01-02T09:00:00","results":{"search_10k":2.0,"insert_1k":8.0,"batch_insert_1000":4.0,"nodejs_only":9.0}}`)

	code := run(cliConfig{ResultsDir: dir})
	assert.Equal(t, 0, code)

	require.Len(t, reportFiles(t, dir, ".md"), 1)
	jsonPaths := reportFiles(t, dir, ".json")
	require.Len(t, jsonPaths, 1)

	raw, err := os.ReadFile(jsonPaths[0])
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal(raw, &r))

	assert.Equal(t, "2025-01-02T08:00:00", r.BaselineTimestamp)
	assert.Equal(t, "2025-01-02T09:00:00", r.TargetTimestamp)

	// three overlapping benchmarks with ratios 2.0, 4.0, 1.0
	assert.Equal(t, 3, r.Summary.Compared)
	assert.InDelta(t, 7.0/3.0, float64(r.Summary.AverageSpeedup), 1e-9)
	assert.Equal(t, report.Speedup(4.0), r.Summary.MaxSpeedup)
	assert.Equal(t, report.Speedup(1.0), r.Summary.MinSpeedup)

	require.Len(t, r.Detailed, 3)
	assert.NotContains(t, r.Detailed, "nodejs_only")
	assert.Equal(t, 2.0, r.Detailed["insert_1k"].BaselineTime)
	assert.Equal(t, 8.0, r.Detailed["insert_1k"].TargetTime)
}

func TestRun_NotComparable(t *testing.T) {
	t.Run("disjoint benchmark names", func(t *testing.T) {
		dir := t.TempDir()
		writeResult(t, dir, "rust_benchmark_001.json",
			`{"timestamp":"t1","results":{"only_rust":1.0}}`)
		writeResult(t, dir, "nodejs_benchmark_001.json",
			`{"timestamp":"t1","results":{"only_node":1.0}}`)

		code := run(cliConfig{ResultsDir: dir})
		assert.Equal(t, 0, code)

		assert.Empty(t, reportFiles(t, dir, ".md"))
		assert.Empty(t, reportFiles(t, dir, ".json"))
	})

	t.Run("one side has no result files", func(t *testing.T) {
		dir := t.TempDir()
		writeResult(t, dir, "rust_benchmark_001.json",
			`{"timestamp":"t1","results":{"search_10k":1.0}}`)

		code := run(cliConfig{ResultsDir: dir})
		assert.Equal(t, 0, code)

		assert.Empty(t, reportFiles(t, dir, ".md"))
		assert.Empty(t, reportFiles(t, dir, ".json"))
	})

	t.Run("empty directory", func(t *testing.T) {
		dir := t.TempDir()

		code := run(cliConfig{ResultsDir: dir})
		assert.Equal(t, 0, code)
		assert.Empty(t, reportFiles(t, dir, ".json"))
	})
}

func TestRun_Fatal(t *testing.T) {
	t.Run("missing results directory", func(t *testing.T) {
		code := run(cliConfig{ResultsDir: filepath.Join(t.TempDir(), "nope")})
		assert.Equal(t, 1, code)
	})

	t.Run("results path is a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "results.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		code := run(cliConfig{ResultsDir: path})
		assert.Equal(t, 1, code)
	})

	t.Run("missing directory argument", func(t *testing.T) {
		code := run(cliConfig{})
		assert.Equal(t, 1, code)
	})

	t.Run("unreadable spec path", func(t *testing.T) {
		dir := t.TempDir()
		code := run(cliConfig{ResultsDir: dir, SpecPath: filepath.Join(dir, "missing.yaml")})
		assert.Equal(t, 1, code)
	})
}
