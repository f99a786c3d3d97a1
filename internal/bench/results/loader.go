package results

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads every result file in dir belonging to family, parsing each as
// JSON. Files that cannot be read or parsed are logged and skipped; a bad
// file never aborts the run. The returned order is unspecified.
func Load(dir string, family Family) ([]ResultSet, error) {
	pattern := filepath.Join(dir, family.Prefix+"*.json")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	sets := make([]ResultSet, 0, len(paths))
	for _, path := range paths {
		rs, err := loadFile(path)
		if err != nil {
			slog.Warn("Skipping result file", "path", path, "error", err)
			continue
		}
		rs.Source = family.Label
		rs.Path = path
		sets = append(sets, rs)
	}

	return sets, nil
}

func loadFile(path string) (ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ResultSet{}, fmt.Errorf("read result file: %w", err)
	}

	var rs ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return ResultSet{}, fmt.Errorf("parse result JSON: %w", err)
	}

	return rs, nil
}
