package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the stock comparison spec: the latest Rust run against the
// latest Node.js run, with the category vocabulary both harnesses use in
// their benchmark names.
func Default() *CompareSpec {
	return &CompareSpec{
		Title:      "Vectrust Performance Comparison Report",
		Baseline:   Source{Label: "Rust", Prefix: "rust_benchmark_"},
		Target:     Source{Label: "Node.js", Prefix: "nodejs_benchmark_"},
		Categories: []string{"index", "insert", "search", "scale", "batch"},
		Notes: []string{
			"Rust implementation uses optimized memory-mapped storage and HNSW indexing",
			"Node.js results are from vectra-enhanced library",
			"All benchmarks use identical test data and parameters",
			"Times are averaged across multiple iterations",
		},
	}
}

func LoadFromFile(path string) (*CompareSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*CompareSpec, error) {
	var s CompareSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	applyDefaults(&s)
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyDefaults(s *CompareSpec) {
	def := Default()
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.Baseline.Label == "" && s.Baseline.Prefix == "" {
		s.Baseline = def.Baseline
	}
	if s.Target.Label == "" && s.Target.Prefix == "" {
		s.Target = def.Target
	}
	if len(s.Categories) == 0 {
		s.Categories = def.Categories
	}
	if len(s.Notes) == 0 {
		s.Notes = def.Notes
	}
}

func validate(s *CompareSpec) error {
	if s.Baseline.Label == "" {
		return fmt.Errorf("baseline source has no label")
	}
	if s.Baseline.Prefix == "" {
		return fmt.Errorf("baseline source %q has no prefix", s.Baseline.Label)
	}
	if s.Target.Label == "" {
		return fmt.Errorf("target source has no label")
	}
	if s.Target.Prefix == "" {
		return fmt.Errorf("target source %q has no prefix", s.Target.Label)
	}
	if s.Baseline.Prefix == s.Target.Prefix {
		return fmt.Errorf("baseline and target share prefix %q", s.Baseline.Prefix)
	}
	for i, c := range s.Categories {
		if c == "" {
			return fmt.Errorf("category at index %d is empty", i)
		}
	}
	return nil
}
