package report

import (
	"fmt"
	"math"
)

// FormatTime renders an elapsed time in the unit that keeps the mantissa
// readable: microseconds below 1ms, milliseconds below 1s, seconds above.
func FormatTime(seconds float64) string {
	if seconds < 0.001 {
		return fmt.Sprintf("%.1fμs", seconds*1_000_000)
	}
	if seconds < 1.0 {
		return fmt.Sprintf("%.1fms", seconds*1000)
	}
	return fmt.Sprintf("%.3fs", seconds)
}

// FormatSpeedup renders a speedup ratio with its qualitative tier marker.
// Ratios at or above 1.5x get one decimal, the rest two.
func FormatSpeedup(speedup float64) string {
	switch {
	case math.IsInf(speedup, 1):
		return "∞x 🚀"
	case speedup >= 10:
		return fmt.Sprintf("%.1fx 🚀", speedup)
	case speedup >= 2:
		return fmt.Sprintf("%.1fx ⚡", speedup)
	case speedup >= 1.5:
		return fmt.Sprintf("%.1fx 📈", speedup)
	case speedup >= 1.1:
		return fmt.Sprintf("%.2fx ➕", speedup)
	case speedup >= 0.9:
		return fmt.Sprintf("%.2fx ≈", speedup)
	default:
		return fmt.Sprintf("%.2fx 📉", speedup)
	}
}
