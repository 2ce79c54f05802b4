package handlers

import (
	"fmt"
	"net/http"

	repo "github.com/regtech-tools/y9c-dashboard/internal/repo"
)

// ReloadCacheHandler clears the cached fetches so the next render re-queries
// the backing store. The page's reload button calls this before refreshing.
// With caching disabled it is a no-op.
func ReloadCacheHandler(w http.ResponseWriter, r *http.Request) {
	if err := cache.Flush(); err != nil {
		writeError(w, fmt.Errorf("%w: %v", repo.ErrConnectivity, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}
