package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/regtech-tools/y9c-dashboard/internal/http/handlers"
	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

func TestGetFilingsHandler_NoFiltersReturnsAllRows(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/filings")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.FilingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TotalCount != len(fixtureFilings) {
		t.Errorf("expected %d rows, got %d", len(fixtureFilings), resp.TotalCount)
	}
	if len(resp.Columns) != len(models.FilingColumns) {
		t.Errorf("expected %d columns, got %d", len(models.FilingColumns), len(resp.Columns))
	}
}

func TestGetFilingsHandler_PeriodRange(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/filings?from=2023-01-01&to=2023-12-31")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.FilingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	// 4 quarters of JPM 2023 plus 2 Wells Fargo rows on 2023-12-31.
	if resp.TotalCount != 6 {
		t.Errorf("expected 6 rows in 2023, got %d", resp.TotalCount)
	}
	for _, fl := range resp.Filings {
		if fl.ReportPeriod < "2023-01-01" || fl.ReportPeriod > "2023-12-31" {
			t.Errorf("row outside requested range: %s", fl.ReportPeriod)
		}
	}
}

func TestGetFilingsHandler_ThresholdAboveMaxReturnsEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/filings?min_assets=9000000000")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.FilingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TotalCount != 0 || len(resp.Filings) != 0 {
		t.Errorf("expected an empty view, got %d rows", resp.TotalCount)
	}
}

func TestGetFilingsHandler_RowCapReportsFullTotal(t *testing.T) {
	r := newTestRouter(t)
	handler.SetRowLimit(3)
	t.Cleanup(func() { handler.SetRowLimit(5000) })

	w := doGet(r, "/api/filings")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.FilingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Filings) != 3 {
		t.Errorf("expected the capped 3 rows, got %d", len(resp.Filings))
	}
	if resp.TotalCount != len(fixtureFilings) {
		t.Errorf("expected total_count %d before the cap, got %d", len(fixtureFilings), resp.TotalCount)
	}
}

func TestGetFilingsHandler_InvalidFilters(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{"malformed from date", "/api/filings?from=03-31-2023"},
		{"malformed to date", "/api/filings?to=2023Q4"},
		{"inverted range", "/api/filings?from=2023-12-31&to=2023-01-01"},
		{"non-numeric threshold", "/api/filings?min_assets=lots"},
		{"negative threshold", "/api/filings?min_assets=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected an inline error message")
			}
		})
	}
}

func TestGetFilingsHandler_ConnectivityFailure(t *testing.T) {
	r := newTestRouter(t)
	handler.SetFilingRepo(failingFilingRepo{})

	w := doGet(r, "/api/filings")
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 Bad Gateway, got %d", w.Code)
	}
}

func TestGetPeriodsHandler_NewestFirst(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/periods")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.PeriodsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Periods) != 8 {
		t.Fatalf("expected 8 distinct periods, got %d", len(resp.Periods))
	}
	if resp.Periods[0] != "2023-12-31" {
		t.Errorf("expected newest period first, got %s", resp.Periods[0])
	}
}

func TestGetFieldsHandler(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/fields")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.FieldsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Fields) != 2 {
		t.Fatalf("expected 2 dictionary entries, got %d", len(resp.Fields))
	}
	if resp.Fields[0].Code != "bhck2170" {
		t.Errorf("expected bhck2170 first, got %s", resp.Fields[0].Code)
	}
}

func TestGetSummaryHandler_LatestPeriodKPIs(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/summary?fields=bhck2170")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.LatestPeriod != "2023-12-31" {
		t.Errorf("expected latest period 2023-12-31, got %s", resp.LatestPeriod)
	}
	if len(resp.KPIs) != 1 {
		t.Fatalf("expected one KPI, got %d", len(resp.KPIs))
	}
	kpi := resp.KPIs[0]
	if kpi.ItemName != "Total assets" {
		t.Errorf("expected dictionary item name, got %q", kpi.ItemName)
	}
	// Mean of JPM 3.9e9 and WF 1.9e9 on 2023-12-31.
	if kpi.Value != 2_900_000_000 {
		t.Errorf("expected mean 2.9e9, got %v", kpi.Value)
	}
	if kpi.Formatted == "" {
		t.Error("expected a formatted KPI value")
	}
}

func TestGetSummaryHandler_EmptyView(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/summary?min_assets=9000000000")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.LatestPeriod != "" || len(resp.KPIs) != 0 {
		t.Errorf("expected an empty summary, got %+v", resp)
	}
}
