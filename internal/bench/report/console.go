package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteConsoleSummary prints the condensed digest shown after a run.
func WriteConsoleSummary(r *Report, w io.Writer, mdPath, jsonPath string) {
	fmt.Fprintln(w, "📊 Performance Comparison Summary")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	if hasFiniteSpeedup(r.Records) {
		fmt.Fprintf(w, "Average Speedup: %s\n", FormatSpeedup(float64(r.Summary.AverageSpeedup)))
		fmt.Fprintf(w, "Best Speedup: %s\n", FormatSpeedup(float64(r.Summary.MaxSpeedup)))
		fmt.Fprintf(w, "Benchmarks: %d\n", r.Summary.Compared)
	}

	fmt.Fprintf(w, "\n📄 Full report saved to: %s\n", mdPath)
	fmt.Fprintf(w, "📄 JSON data saved to: %s\n", jsonPath)
}
