package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const filePrefix = "performance_comparison_"

// Paths returns the output file locations for a report written into dir.
// Both files share the report's generation timestamp.
func Paths(r *Report, dir string) (mdPath, jsonPath string) {
	stamp := r.GeneratedAt.Format("20060102_150405")
	mdPath = filepath.Join(dir, filePrefix+stamp+".md")
	jsonPath = filepath.Join(dir, filePrefix+stamp+".json")
	return mdPath, jsonPath
}

// WriteFiles persists the formatted report and the structured summary as
// siblings inside dir.
func WriteFiles(r *Report, dir string) (mdPath, jsonPath string, err error) {
	mdPath, jsonPath = Paths(r, dir)

	var b strings.Builder
	if err := WriteMarkdown(r, &b); err != nil {
		return "", "", fmt.Errorf("render markdown: %w", err)
	}
	if err := os.WriteFile(mdPath, []byte(b.String()), 0644); err != nil {
		return "", "", fmt.Errorf("write markdown report: %w", err)
	}

	if err := WriteJSON(r, jsonPath); err != nil {
		return "", "", err
	}

	return mdPath, jsonPath, nil
}

// WriteJSON persists just the structured summary, for callers that want the
// machine-readable half without the Markdown document.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
