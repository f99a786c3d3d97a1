package compare

import (
	"math"
	"sort"
	"strings"

	"github.com/vectrust/benchcmp/internal/apperr"
	"github.com/vectrust/benchcmp/internal/bench/results"
)

// Record is the per-benchmark comparison outcome. Speedup is target time
// over baseline time, so values above 1 mean the baseline is faster. A zero
// baseline time yields +Inf.
type Record struct {
	Name         string
	BaselineTime float64
	TargetTime   float64
	Speedup      float64
}

// Stats aggregates the finite-speedup subset. Infinite speedups are listed
// in the detail table but never feed the mean, max or min. Compared counts
// every shared benchmark, infinite ones included.
type Stats struct {
	Mean     float64
	Max      float64
	Min      float64
	Compared int
}

// CategoryStat is the mean speedup over the finite-speedup members of one
// category bucket. Buckets are substring matches and not mutually exclusive,
// so one benchmark may be counted in several.
type CategoryStat struct {
	Name        string
	MeanSpeedup float64
	Count       int
}

type Comparison struct {
	BaselineTimestamp string
	TargetTimestamp   string
	Records           []Record
	Stats             Stats
	Categories        []CategoryStat
	TopGains          []Record
	Regressions       []Record
}

// Speedup computes how many times faster the baseline ran the benchmark.
func Speedup(baselineTime, targetTime float64) float64 {
	if baselineTime == 0 {
		return math.Inf(1)
	}
	return targetTime / baselineTime
}

// Compare intersects the benchmark names of two selected result sets and
// derives per-benchmark and aggregate speedup statistics. It returns a
// *apperr.NotComparableError when either side is missing or the sets share
// no benchmark names; callers treat that as a diagnostic, not a failure.
func Compare(baseline, target *results.ResultSet, categories []string) (*Comparison, error) {
	if baseline == nil || target == nil {
		return nil, apperr.NewNotComparable("missing results from one or both implementations")
	}

	var names []string
	for name := range baseline.Results {
		if _, ok := target.Results[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, apperr.NewNotComparable("no common benchmarks found between the two result sets")
	}
	sort.Strings(names)

	c := &Comparison{
		BaselineTimestamp: baseline.Timestamp,
		TargetTimestamp:   target.Timestamp,
		Records:           make([]Record, 0, len(names)),
	}

	for _, name := range names {
		bt := baseline.Results[name]
		tt := target.Results[name]
		c.Records = append(c.Records, Record{
			Name:         name,
			BaselineTime: bt,
			TargetTime:   tt,
			Speedup:      Speedup(bt, tt),
		})
	}

	c.Stats = computeStats(c.Records)
	c.Categories = bucketize(c.Records, categories)
	c.TopGains = topGains(c.Records, 3)
	c.Regressions = regressions(c.TopGains)

	return c, nil
}

func computeStats(records []Record) Stats {
	stats := Stats{Compared: len(records)}

	var sum float64
	finite := 0
	for _, r := range records {
		if math.IsInf(r.Speedup, 1) {
			continue
		}
		if finite == 0 {
			stats.Max = r.Speedup
			stats.Min = r.Speedup
		} else {
			stats.Max = math.Max(stats.Max, r.Speedup)
			stats.Min = math.Min(stats.Min, r.Speedup)
		}
		sum += r.Speedup
		finite++
	}
	if finite > 0 {
		stats.Mean = sum / float64(finite)
	}

	return stats
}

func bucketize(records []Record, categories []string) []CategoryStat {
	stats := make([]CategoryStat, 0, len(categories))

	for _, cat := range categories {
		var sum float64
		count := 0
		for _, r := range records {
			if !strings.Contains(r.Name, cat) || math.IsInf(r.Speedup, 1) {
				continue
			}
			sum += r.Speedup
			count++
		}
		cs := CategoryStat{Name: cat, Count: count}
		if count > 0 {
			cs.MeanSpeedup = sum / float64(count)
		}
		stats = append(stats, cs)
	}

	return stats
}

// topGains returns the n records with the highest speedup. Records sharing a
// speedup are ordered by name so selection stays deterministic; infinite
// speedups sort first and are filtered at render time.
func topGains(records []Record, n int) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Speedup != sorted[j].Speedup {
			return sorted[i].Speedup > sorted[j].Speedup
		}
		return sorted[i].Name < sorted[j].Name
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// regressions inspects only the top-gains set; a regression outside the
// three fastest benchmarks is never surfaced here.
func regressions(top []Record) []Record {
	var slow []Record
	for _, r := range top {
		if r.Speedup < 1.0 {
			slow = append(slow, r)
		}
	}
	return slow
}
