package handlers

import "github.com/regtech-tools/y9c-dashboard/internal/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type FilingsResponse struct {
	Filings []models.Filing `json:"filings"`
	// TotalCount is the match count before the row cap; when it exceeds
	// len(Filings) the view was truncated.
	TotalCount int      `json:"total_count"`
	Columns    []string `json:"columns"`
}

type PeriodsResponse struct {
	Periods []string `json:"periods"`
}

type FieldsResponse struct {
	Fields []models.MDRMField `json:"fields"`
}

// KPI is one key-performance-indicator tile: the mean of a selected field
// across the latest period in the filtered view.
type KPI struct {
	Code        string  `json:"code"`
	ItemName    string  `json:"item_name"`
	Value       float64 `json:"value"`
	Formatted   string  `json:"formatted"`
	Description string  `json:"description,omitempty"`
}

type SummaryResponse struct {
	LatestPeriod string `json:"latest_period"`
	Institutions int    `json:"institutions"`
	KPIs         []KPI  `json:"kpis"`
}
