package analytics

import (
	"sort"
	"time"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// Aggregation selects how per-period values are combined.
type Aggregation string

const (
	AggSum Aggregation = "sum"
	AggAvg Aggregation = "avg"
)

// PeriodPoint is one point of the period-over-period comparison series.
type PeriodPoint struct {
	Period string    `json:"period"`
	Date   time.Time `json:"-"`
	Value  float64   `json:"value"`
	Count  int       `json:"count"`
}

// PeriodComparison aggregates the reported values per reporting period,
// ordered oldest to newest. Periods that fail to parse as dates are skipped.
func PeriodComparison(rows []models.Filing, agg Aggregation) []PeriodPoint {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, fl := range rows {
		sums[fl.ReportPeriod] += fl.Value
		counts[fl.ReportPeriod]++
	}

	points := make([]PeriodPoint, 0, len(sums))
	for period, sum := range sums {
		date, err := time.Parse("2006-01-02", period)
		if err != nil {
			continue
		}
		value := sum
		if agg == AggAvg && counts[period] > 0 {
			value = sum / float64(counts[period])
		}
		points = append(points, PeriodPoint{
			Period: period,
			Date:   date,
			Value:  value,
			Count:  counts[period],
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// LatestPeriod returns the newest reporting period present in the view,
// or "" for an empty view.
func LatestPeriod(rows []models.Filing) string {
	latest := ""
	for _, fl := range rows {
		if fl.ReportPeriod > latest {
			latest = fl.ReportPeriod
		}
	}
	return latest
}
