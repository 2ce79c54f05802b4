package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestReloadCacheHandler_NoCacheConfigured(t *testing.T) {
	r := newTestRouter(t) // caching disabled: reload must still succeed

	w := doPost(r, "/api/reload")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp["status"] != "cache cleared" {
		t.Errorf("unexpected status %q", resp["status"])
	}
}

func TestReloadCacheHandler_RejectsGet(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/reload")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 Method Not Allowed, got %d", w.Code)
	}
}
