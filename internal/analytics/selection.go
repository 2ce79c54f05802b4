package analytics

import (
	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// Selection holds the user-chosen constraints for one rendering pass.
// Nil/empty fields are inactive. Active predicates AND together; codes
// within Fields OR together.
type Selection struct {
	PeriodFrom string   // inclusive, YYYY-MM-DD
	PeriodTo   string   // inclusive, YYYY-MM-DD
	MinAssets  *float64 // total assets threshold, $thousands
	Fields     []string // MDRM codes
}

// IsEmpty reports whether no predicate is active.
func (s Selection) IsEmpty() bool {
	return s.PeriodFrom == "" && s.PeriodTo == "" && s.MinAssets == nil && len(s.Fields) == 0
}

// Matches reports whether a single filing satisfies every active predicate.
func (s Selection) Matches(fl models.Filing) bool {
	// ISO dates order correctly as strings.
	if s.PeriodFrom != "" && fl.ReportPeriod < s.PeriodFrom {
		return false
	}
	if s.PeriodTo != "" && fl.ReportPeriod > s.PeriodTo {
		return false
	}
	if s.MinAssets != nil && fl.TotalAssets < *s.MinAssets {
		return false
	}
	if len(s.Fields) > 0 && !containsCode(s.Fields, fl.MDRMCode) {
		return false
	}
	return true
}

// Apply returns the subset of rows satisfying the selection, in input order.
// An empty selection returns the input unchanged. Apply is idempotent:
// reapplying a selection to its own output yields the same output.
func Apply(rows []models.Filing, s Selection) []models.Filing {
	if s.IsEmpty() {
		return rows
	}

	filtered := make([]models.Filing, 0, len(rows))
	for _, fl := range rows {
		if s.Matches(fl) {
			filtered = append(filtered, fl)
		}
	}
	return filtered
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
