package models

// Filing represents one reported FR Y-9C data point: one institution, one
// reporting period, one MDRM field. Rows are immutable once fetched.
type Filing struct {
	RSSDID          string  `json:"rssd_id"`
	InstitutionName string  `json:"institution_name"`
	ReportPeriod    string  `json:"report_period"` // quarter-end date, YYYY-MM-DD
	MDRMCode        string  `json:"mdrm_code"`
	Value           float64 `json:"value"`
	TotalAssets     float64 `json:"total_assets"` // BHCK2170, reported in $thousands
}

// FilingColumns is the canonical column order for tables and CSV export.
var FilingColumns = []string{
	"rssd_id",
	"institution_name",
	"report_period",
	"mdrm_code",
	"value",
	"total_assets",
}
