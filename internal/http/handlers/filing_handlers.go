package handlers

import (
	"net/http"

	"github.com/regtech-tools/y9c-dashboard/internal/analytics"
	"github.com/regtech-tools/y9c-dashboard/internal/models"
	"github.com/regtech-tools/y9c-dashboard/internal/redissvc"
	repo "github.com/regtech-tools/y9c-dashboard/internal/repo"
)

// loadView produces the filtered view for a selection, plus the match count
// before the row cap. Every predicate is pushed into the fetch (and cached
// alongside its total when redis is wired); Apply re-checks the cached slice
// so every endpoint sees identical rows for identical selections.
func loadView(sel analytics.Selection) ([]models.Filing, int, error) {
	fetch := repo.FilingFilter{
		PeriodFrom: sel.PeriodFrom,
		PeriodTo:   sel.PeriodTo,
		MinAssets:  sel.MinAssets,
		MDRMCodes:  sel.Fields,
		Limit:      &rowLimit,
	}

	key := redissvc.FilterKey(fetch)
	rows, total, hit := cache.GetFilings(key)
	if !hit {
		var err error
		rows, total, err = filingRepo.Filter(fetch)
		if err != nil {
			return nil, 0, err
		}
		cache.SetFilings(key, rows, total)
	}

	return analytics.Apply(rows, sel), total, nil
}

// GetFilingsHandler returns the rows of the current filtered view.
// total_count is the match count before the row cap, so a truncated view
// is distinguishable from a complete one.
func GetFilingsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	view, total, err := loadView(sel)
	if err != nil {
		writeError(w, err)
		return
	}

	if view == nil {
		view = []models.Filing{}
	}
	writeJSON(w, http.StatusOK, FilingsResponse{
		Filings:    view,
		TotalCount: total,
		Columns:    models.FilingColumns,
	})
}

// GetPeriodsHandler returns the distinct reporting periods, newest first,
// for the date-range picker.
func GetPeriodsHandler(w http.ResponseWriter, r *http.Request) {
	periods, err := filingRepo.Periods()
	if err != nil {
		writeError(w, err)
		return
	}
	if periods == nil {
		periods = []string{}
	}
	writeJSON(w, http.StatusOK, PeriodsResponse{Periods: periods})
}

// GetFieldsHandler returns the current MDRM dictionary entries for the
// field multi-select.
func GetFieldsHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := mdrmRepo.GetAll()
	if err != nil {
		writeError(w, err)
		return
	}
	if fields == nil {
		fields = []models.MDRMField{}
	}
	writeJSON(w, http.StatusOK, FieldsResponse{Fields: fields})
}

// GetSummaryHandler returns the KPI tiles: per selected field, the mean
// reported value across the latest period in the filtered view.
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
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

	resp := SummaryResponse{
		LatestPeriod: analytics.LatestPeriod(view),
		Institutions: analytics.TotalInstitutions(view),
		KPIs:         []KPI{},
	}
	if resp.LatestPeriod == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	codes := sel.Fields
	if len(codes) == 0 {
		codes = distinctCodes(view)
	}

	for _, code := range codes {
		var values []float64
		for _, fl := range view {
			if fl.ReportPeriod == resp.LatestPeriod && fl.MDRMCode == code {
				values = append(values, fl.Value)
			}
		}
		if len(values) == 0 {
			continue
		}

		kpi := KPI{Code: code, ItemName: code}
		if field, err := mdrmRepo.GetByCode(code); err == nil {
			kpi.ItemName = field.ItemName
			kpi.Description = field.Description
		}
		kpi.Value = analytics.Mean(values)
		kpi.Formatted = analytics.FormatMetric(kpi.Value, kpi.ItemName)
		resp.KPIs = append(resp.KPIs, kpi)
	}

	writeJSON(w, http.StatusOK, resp)
}

func distinctCodes(rows []models.Filing) []string {
	seen := map[string]bool{}
	var codes []string
	for _, fl := range rows {
		if !seen[fl.MDRMCode] {
			seen[fl.MDRMCode] = true
			codes = append(codes, fl.MDRMCode)
		}
	}
	return codes
}
