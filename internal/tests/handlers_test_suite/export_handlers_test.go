package handlers_test_suite

import (
	"encoding/csv"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

func TestExportCSVHandler_ReflectsFilteredView(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/export/csv?from=2023-01-01&to=2023-12-31&fields=bhck2170")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected an attachment disposition, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	if !reflect.DeepEqual(records[0], models.FilingColumns) {
		t.Errorf("CSV header %v does not match displayed columns", records[0])
	}

	// 4 JPM quarters in 2023 plus WF's bhck2170 row.
	wantRows := 5
	if len(records)-1 != wantRows {
		t.Errorf("expected %d data rows, got %d", wantRows, len(records)-1)
	}
	for _, rec := range records[1:] {
		if rec[3] != "bhck2170" {
			t.Errorf("row with unselected field exported: %v", rec)
		}
	}
}

func TestExportCSVHandler_EmptyViewExportsHeaderOnly(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/export/csv?min_assets=9000000000")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d records", len(records))
	}
}

func TestExportCSVHandler_InvalidFilterRejected(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/export/csv?from=2024-01-01&to=2023-01-01")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
