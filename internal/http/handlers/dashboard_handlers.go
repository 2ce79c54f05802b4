package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed ui/index.html
var dashboardPage []byte

// DashboardPageHandler serves the single-page dashboard UI. All data flows
// through the /api, /charts and /export endpoints the page calls.
func DashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(dashboardPage)
}
