package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/regtech-tools/y9c-dashboard/internal/analytics"
	repo "github.com/regtech-tools/y9c-dashboard/internal/repo"
)

// parseSelection builds the filter selection from query parameters:
// from, to (YYYY-MM-DD), min_assets ($thousands), fields (comma-separated
// MDRM codes). Malformed parameters wrap repo.ErrBadFilter.
func parseSelection(q url.Values) (analytics.Selection, error) {
	var sel analytics.Selection

	from := strings.TrimSpace(q.Get("from"))
	if from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			return sel, fmt.Errorf("%w: 'from' must be YYYY-MM-DD, got %q", repo.ErrBadFilter, from)
		}
		sel.PeriodFrom = from
	}

	to := strings.TrimSpace(q.Get("to"))
	if to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			return sel, fmt.Errorf("%w: 'to' must be YYYY-MM-DD, got %q", repo.ErrBadFilter, to)
		}
		sel.PeriodTo = to
	}

	if sel.PeriodFrom != "" && sel.PeriodTo != "" && sel.PeriodFrom > sel.PeriodTo {
		return sel, fmt.Errorf("%w: period range is inverted (%s > %s)", repo.ErrBadFilter, sel.PeriodFrom, sel.PeriodTo)
	}

	if raw := strings.TrimSpace(q.Get("min_assets")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sel, fmt.Errorf("%w: 'min_assets' must be numeric, got %q", repo.ErrBadFilter, raw)
		}
		if v < 0 {
			return sel, fmt.Errorf("%w: 'min_assets' must not be negative", repo.ErrBadFilter)
		}
		sel.MinAssets = &v
	}

	if raw := strings.TrimSpace(q.Get("fields")); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			code = strings.ToLower(strings.TrimSpace(code))
			if code == "" {
				continue
			}
			sel.Fields = append(sel.Fields, code)
		}
	}

	return sel, nil
}
