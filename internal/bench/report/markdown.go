package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vectrust/benchcmp/internal/bench/compare"
)

// WriteMarkdown renders the formatted report document.
func WriteMarkdown(r *Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", r.Title)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**%s Results:** %s\n", r.BaselineLabel, r.BaselineTimestamp)
	fmt.Fprintf(&b, "**%s Results:** %s\n", r.TargetLabel, r.TargetTimestamp)
	b.WriteString("\n")

	writeSummary(r, &b)
	writeDetailedTable(r, &b)
	writeCategories(r, &b)
	writeInsights(r, &b)
	writeNotes(r, &b)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeSummary emits the summary block. It is omitted entirely when every
// shared benchmark had a zero baseline time, since the aggregate statistics
// are meaningless then.
func writeSummary(r *Report, b *strings.Builder) {
	if !hasFiniteSpeedup(r.Records) {
		return
	}

	b.WriteString("## 📊 Summary\n")
	b.WriteString("\n")
	fmt.Fprintf(b, "- **Average Speedup:** %s\n", FormatSpeedup(float64(r.Summary.AverageSpeedup)))
	fmt.Fprintf(b, "- **Best Speedup:** %s\n", FormatSpeedup(float64(r.Summary.MaxSpeedup)))
	fmt.Fprintf(b, "- **Worst Speedup:** %s\n", FormatSpeedup(float64(r.Summary.MinSpeedup)))
	fmt.Fprintf(b, "- **Benchmarks Compared:** %d\n", r.Summary.Compared)
	b.WriteString("\n")
}

func writeDetailedTable(r *Report, b *strings.Builder) {
	b.WriteString("## 🔍 Detailed Results\n")
	b.WriteString("\n")
	fmt.Fprintf(b, "| Benchmark | %s | %s | Speedup |\n", r.BaselineLabel, r.TargetLabel)
	b.WriteString("|-----------|------|---------|---------|\n")

	for _, rec := range r.Records {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			rec.Name,
			FormatTime(rec.BaselineTime),
			FormatTime(rec.TargetTime),
			FormatSpeedup(rec.Speedup),
		)
	}

	b.WriteString("\n")
}

func writeCategories(r *Report, b *strings.Builder) {
	b.WriteString("## 📈 Performance by Category\n")
	b.WriteString("\n")

	for _, cs := range r.Categories {
		if cs.Count == 0 {
			continue
		}
		fmt.Fprintf(b, "**%s Operations:** %s average\n", titleCase(cs.Name), FormatSpeedup(cs.MeanSpeedup))
	}

	b.WriteString("\n")
}

func writeInsights(r *Report, b *strings.Builder) {
	b.WriteString("## 💡 Key Insights\n")
	b.WriteString("\n")

	b.WriteString("**Top Performance Gains:**\n")
	for _, rec := range r.TopGains {
		// infinite ratios stay out of the gains list
		if math.IsInf(rec.Speedup, 1) {
			continue
		}
		fmt.Fprintf(b, "- %s: %s\n", rec.Name, FormatSpeedup(rec.Speedup))
	}
	b.WriteString("\n")

	if len(r.Regressions) > 0 {
		b.WriteString("**Areas for Improvement:**\n")
		for _, rec := range r.Regressions {
			fmt.Fprintf(b, "- %s: %s\n", rec.Name, FormatSpeedup(rec.Speedup))
		}
		b.WriteString("\n")
	}
}

func writeNotes(r *Report, b *strings.Builder) {
	b.WriteString("## 🔧 Implementation Notes\n")
	b.WriteString("\n")
	for _, note := range r.Notes {
		fmt.Fprintf(b, "- %s\n", note)
	}
}

func hasFiniteSpeedup(records []compare.Record) bool {
	for _, rec := range records {
		if !math.IsInf(rec.Speedup, 1) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
