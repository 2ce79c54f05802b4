package handlers

import (
	"log"
	"net/http"

	"github.com/regtech-tools/y9c-dashboard/internal/analytics"
	"github.com/regtech-tools/y9c-dashboard/internal/charts"
)

// AssetHistogramHandler renders the total-asset distribution of the current
// filtered view as a PNG bar chart.
func AssetHistogramHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	view, _, err := loadView(sel)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.AssetHistogramPNG(w, analytics.AssetHistogram(view)); err != nil {
		log.Printf("failed to render asset histogram: %v", err)
	}
}

// PeriodComparisonHandler renders the per-period aggregate of the current
// filtered view as a PNG time series. The agg query parameter selects
// sum (default) or avg.
func PeriodComparisonHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	agg := analytics.AggSum
	yAxisName := "Total reported value"
	if r.URL.Query().Get("agg") == "avg" {
		agg = analytics.AggAvg
		yAxisName = "Mean reported value"
	}

	view, _, err := loadView(sel)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.PeriodComparisonPNG(w, analytics.PeriodComparison(view, agg), yAxisName); err != nil {
		log.Printf("failed to render period comparison: %v", err)
	}
}
