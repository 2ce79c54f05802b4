package repo

import (
	"errors"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// The two failure kinds every data-access call maps to. Handlers classify
// with errors.Is and surface an inline message; nothing is retried.
var (
	// ErrConnectivity means the backing store could not be reached or the
	// query did not complete (network, auth, timeout).
	ErrConnectivity = errors.New("cannot reach regulatory data store")

	// ErrBadFilter means the filter parameters were malformed (e.g. an
	// inverted date range) and no query was issued.
	ErrBadFilter = errors.New("invalid filter")

	// ErrFieldNotFound is returned for an MDRM code absent from the mapping.
	ErrFieldNotFound = errors.New("MDRM field not found")
)

// FilingFilter restricts a filings query. Nil pointer fields are inactive.
type FilingFilter struct {
	PeriodFrom string   // inclusive, YYYY-MM-DD
	PeriodTo   string   // inclusive, YYYY-MM-DD
	MinAssets  *float64 // total assets threshold, $thousands
	MDRMCodes  []string // OR within the set; empty = all fields
	Offset     *int
	Limit      *int
}

// FilingRepository is the read-only data access contract for FR Y-9C rows.
type FilingRepository interface {
	// Filter returns the rows matching the filter plus the total match count
	// before offset/limit are applied.
	Filter(f FilingFilter) ([]models.Filing, int, error)

	// Periods returns the distinct reporting periods, newest first.
	Periods() ([]string, error)
}

// MDRMRepository serves the MDRM dictionary the field picker is built from.
type MDRMRepository interface {
	// GetAll returns the current mapping entries (end_date = 9999-12-31).
	GetAll() ([]models.MDRMField, error)
	GetByCode(code string) (models.MDRMField, error)
}
