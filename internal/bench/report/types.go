package report

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vectrust/benchcmp/internal/bench/compare"
	"github.com/vectrust/benchcmp/internal/bench/spec"
)

// Report is the aggregate output of one comparison run. The JSON-tagged
// fields form the machine-readable summary; the remaining fields carry what
// the Markdown and console renderers need.
type Report struct {
	Meta              Meta              `json:"meta"`
	Timestamp         string            `json:"timestamp"`
	BaselineTimestamp string            `json:"baseline_timestamp"`
	TargetTimestamp   string            `json:"target_timestamp"`
	Summary           Summary           `json:"summary"`
	Detailed          map[string]Detail `json:"detailed_results"`

	GeneratedAt   time.Time              `json:"-"`
	Title         string                 `json:"-"`
	BaselineLabel string                 `json:"-"`
	TargetLabel   string                 `json:"-"`
	Notes         []string               `json:"-"`
	Records       []compare.Record       `json:"-"`
	Categories    []compare.CategoryStat `json:"-"`
	TopGains      []compare.Record       `json:"-"`
	Regressions   []compare.Record       `json:"-"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Version     string          `json:"version"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	AverageSpeedup Speedup `json:"average_speedup"`
	MaxSpeedup     Speedup `json:"max_speedup"`
	MinSpeedup     Speedup `json:"min_speedup"`
	Compared       int     `json:"benchmarks_compared"`
}

type Detail struct {
	BaselineTime float64 `json:"baseline_time"`
	TargetTime   float64 `json:"target_time"`
	Speedup      Speedup `json:"speedup"`
}

// Speedup is a float64 that survives JSON round-trips when infinite.
// encoding/json refuses bare infinities, so +Inf serializes as the string
// sentinel "Infinity".
type Speedup float64

const infSentinel = `"Infinity"`

func (s Speedup) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(s), 1) {
		return []byte(infSentinel), nil
	}
	return []byte(strconv.FormatFloat(float64(s), 'g', -1, 64)), nil
}

func (s *Speedup) UnmarshalJSON(data []byte) error {
	if string(data) == infSentinel {
		*s = Speedup(math.Inf(1))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse speedup %q: %w", data, err)
	}
	*s = Speedup(v)
	return nil
}

// Version is stamped into the report meta block.
const Version = "1.0.0"

// Generate builds the report for a finished comparison. The generation
// instant is passed in so output filenames and the timestamp field agree.
func Generate(c *compare.Comparison, s *spec.CompareSpec, generatedAt time.Time) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       uuid.New(),
			Version:     Version,
			Environment: NewEnvironmentInfo(),
		},
		Timestamp:         generatedAt.Format(time.RFC3339),
		BaselineTimestamp: c.BaselineTimestamp,
		TargetTimestamp:   c.TargetTimestamp,
		Summary: Summary{
			AverageSpeedup: Speedup(c.Stats.Mean),
			MaxSpeedup:     Speedup(c.Stats.Max),
			MinSpeedup:     Speedup(c.Stats.Min),
			Compared:       c.Stats.Compared,
		},
		Detailed: make(map[string]Detail, len(c.Records)),

		GeneratedAt:   generatedAt,
		Title:         s.Title,
		BaselineLabel: s.Baseline.Label,
		TargetLabel:   s.Target.Label,
		Notes:         s.Notes,
		Records:       c.Records,
		Categories:    c.Categories,
		TopGains:      c.TopGains,
		Regressions:   c.Regressions,
	}

	for _, rec := range c.Records {
		r.Detailed[rec.Name] = Detail{
			BaselineTime: rec.BaselineTime,
			TargetTime:   rec.TargetTime,
			Speedup:      Speedup(rec.Speedup),
		}
	}

	return r
}
