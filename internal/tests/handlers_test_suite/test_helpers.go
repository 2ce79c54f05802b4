package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/regtech-tools/y9c-dashboard/internal/http"
	handler "github.com/regtech-tools/y9c-dashboard/internal/http/handlers"
	rl "github.com/regtech-tools/y9c-dashboard/internal/http/rate_limiter"
	"github.com/regtech-tools/y9c-dashboard/internal/models"
	repo "github.com/regtech-tools/y9c-dashboard/internal/repo"
)

// fixtureFilings covers two institutions across the 2022 and 2023 quarters.
var fixtureFilings = []models.Filing{
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2022-03-31", MDRMCode: "bhck2170", Value: 3_600_000_000, TotalAssets: 3_600_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2022-06-30", MDRMCode: "bhck2170", Value: 3_650_000_000, TotalAssets: 3_650_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2022-09-30", MDRMCode: "bhck2170", Value: 3_700_000_000, TotalAssets: 3_700_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2022-12-31", MDRMCode: "bhck2170", Value: 3_750_000_000, TotalAssets: 3_750_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2023-03-31", MDRMCode: "bhck2170", Value: 3_800_000_000, TotalAssets: 3_800_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2023-06-30", MDRMCode: "bhck2170", Value: 3_850_000_000, TotalAssets: 3_850_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2023-09-30", MDRMCode: "bhck2170", Value: 3_870_000_000, TotalAssets: 3_870_000_000},
	{RSSDID: "1039502", InstitutionName: "JPMorgan Chase & Co", ReportPeriod: "2023-12-31", MDRMCode: "bhck2170", Value: 3_900_000_000, TotalAssets: 3_900_000_000},
	{RSSDID: "1120754", InstitutionName: "Wells Fargo & Company", ReportPeriod: "2023-12-31", MDRMCode: "bhck2170", Value: 1_900_000_000, TotalAssets: 1_900_000_000},
	{RSSDID: "1120754", InstitutionName: "Wells Fargo & Company", ReportPeriod: "2023-12-31", MDRMCode: "bhck2948", Value: 1_700_000_000, TotalAssets: 1_900_000_000},
}

// newTestRouter wires fresh in-memory repositories and returns the router.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	filings := repo.NewInMemoryFilingRepository()
	for _, fl := range fixtureFilings {
		filings.Add(fl)
	}

	mdrm := repo.NewInMemoryMDRMRepository()
	mdrm.Add(models.MDRMField{Code: "bhck2170", ItemName: "Total assets", Description: "Total consolidated assets"})
	mdrm.Add(models.MDRMField{Code: "bhck2948", ItemName: "Total liabilities"})

	handler.SetFilingRepo(filings)
	handler.SetMDRMRepo(mdrm)
	handler.SetCache(nil)
	handler.SetRowLimit(5000)

	rl.CleanupAllVisitors()
	t.Cleanup(rl.CleanupAllVisitors)

	return api.NewRouter()
}

// failingFilingRepo simulates an unreachable backing store.
type failingFilingRepo struct{}

func (failingFilingRepo) Filter(repo.FilingFilter) ([]models.Filing, int, error) {
	return nil, 0, repo.ErrConnectivity
}

func (failingFilingRepo) Periods() ([]string, error) {
	return nil, repo.ErrConnectivity
}

func doGet(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
