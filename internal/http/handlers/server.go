package handlers

import (
	"github.com/regtech-tools/y9c-dashboard/internal/redissvc"
	repo "github.com/regtech-tools/y9c-dashboard/internal/repo"
)

var (
	filingRepo repo.FilingRepository
	mdrmRepo   repo.MDRMRepository

	cache    *redissvc.Cache
	rowLimit = 5000
)

func SetFilingRepo(r repo.FilingRepository) {
	filingRepo = r
}

func SetMDRMRepo(r repo.MDRMRepository) {
	mdrmRepo = r
}

// SetCache wires the optional redis-backed fetch cache. Nil disables caching.
func SetCache(c *redissvc.Cache) {
	cache = c
}

// SetRowLimit caps how many rows one fetch may return.
func SetRowLimit(n int) {
	if n > 0 {
		rowLimit = n
	}
}
