package repo

import (
	"sort"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// InMemoryFilingRepository is an in-memory implementation of FilingRepository.
// It backs the handler test suites and local demos without a database.
type InMemoryFilingRepository struct {
	filings []models.Filing
}

// NewInMemoryFilingRepository creates a new instance of InMemoryFilingRepository.
func NewInMemoryFilingRepository() *InMemoryFilingRepository {
	return &InMemoryFilingRepository{filings: []models.Filing{}}
}

func matchesFilingFilter(fl models.Filing, f FilingFilter) bool {
	// ISO dates compare correctly as strings.
	if f.PeriodFrom != "" && fl.ReportPeriod < f.PeriodFrom {
		return false
	}
	if f.PeriodTo != "" && fl.ReportPeriod > f.PeriodTo {
		return false
	}
	if f.MinAssets != nil && fl.TotalAssets < *f.MinAssets {
		return false
	}
	if len(f.MDRMCodes) > 0 {
		found := false
		for _, code := range f.MDRMCodes {
			if fl.MDRMCode == code {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *InMemoryFilingRepository) Filter(f FilingFilter) ([]models.Filing, int, error) {
	var filtered []models.Filing
	for _, fl := range r.filings {
		if matchesFilingFilter(fl, f) {
			filtered = append(filtered, fl)
		}
	}

	if f.Offset != nil && *f.Offset > len(filtered) {
		return []models.Filing{}, len(filtered), nil
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryFilingRepository) Periods() ([]string, error) {
	seen := map[string]bool{}
	var periods []string
	for _, fl := range r.filings {
		if !seen[fl.ReportPeriod] {
			seen[fl.ReportPeriod] = true
			periods = append(periods, fl.ReportPeriod)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(periods)))
	return periods, nil
}

// Add appends a filing row to the repository.
func (r *InMemoryFilingRepository) Add(fl models.Filing) {
	r.filings = append(r.filings, fl)
}

// Clear removes all rows.
func (r *InMemoryFilingRepository) Clear() {
	r.filings = []models.Filing{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
