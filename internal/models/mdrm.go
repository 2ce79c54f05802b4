package models

// MDRMField is one entry of the Micro Data Reference Manual dictionary,
// mapping a mnemonic+item code (e.g. BHCK2170) to its description.
type MDRMField struct {
	Code          string `json:"code"`
	ItemName      string `json:"item_name"`
	Description   string `json:"description,omitempty"`
	ReportingForm string `json:"reporting_form,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
}
