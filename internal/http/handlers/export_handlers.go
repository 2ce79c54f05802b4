package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/regtech-tools/y9c-dashboard/internal/export"
)

// ExportCSVHandler streams the current filtered view as CSV. The rows are
// produced by the same loadView path the table and charts use, so the file
// reflects exactly what is on screen.
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
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

	filename := fmt.Sprintf("y9c_filings_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteCSV(w, view); err != nil {
		log.Printf("failed to write CSV export: %v", err)
	}
}
