package analytics

import (
	"fmt"
	"math"
	"strings"
)

// FormatMetric renders a reported value for the KPI panel. Ratio-style items
// render as percentages; dollar figures scale to B/M. Values are stored in
// $thousands, so 1e6 thousands is $1 billion.
func FormatMetric(value float64, itemName string) string {
	if math.IsNaN(value) {
		return "N/A"
	}

	lower := strings.ToLower(itemName)
	if strings.Contains(lower, "ratio") || strings.Contains(lower, "rate") || strings.Contains(lower, "%") {
		return fmt.Sprintf("%.2f%%", value)
	}

	abs := math.Abs(value)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fB", value/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fM", value/1e3)
	default:
		return fmt.Sprintf("$%.2fK", value)
	}
}

// Mean returns the arithmetic mean, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
