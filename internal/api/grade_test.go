package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postGrade(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/grade", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.handleGrade(rec, req)
	return rec
}

func TestHandleGrade(t *testing.T) {
	body := `{
		"artifacts": [{
			"id": "f1",
			"set_id": "emblem_of_severed_fate",
			"slot": "flower",
			"main_stat": "hp",
			"main_stat_value": 4780,
			"sub_stats": [{"stat": "crit_rate", "value": 23.3}],
			"level": 20,
			"rarity": 5
		}]
	}`

	rec := postGrade(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp gradeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Score != 100.0 {
		t.Errorf("score = %g, want 100.0", resp.Results[0].Score)
	}
	if resp.Results[0].Grade != "S" {
		t.Errorf("grade = %s, want S", resp.Results[0].Grade)
	}
}

func TestHandleGradeCustomWeights(t *testing.T) {
	body := `{
		"weights": {"crit_rate": 0},
		"artifacts": [{
			"id": "f1",
			"slot": "flower",
			"main_stat": "hp",
			"sub_stats": [{"stat": "crit_rate", "value": 23.3}],
			"level": 20,
			"rarity": 5
		}]
	}`

	rec := postGrade(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp gradeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Results[0].Score != 0.0 {
		t.Errorf("score = %g, want 0.0 with crit_rate weight zeroed", resp.Results[0].Score)
	}
}

func TestHandleGradeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"empty artifact list", `{"artifacts": []}`},
		{"invalid slot", `{"artifacts": [{"id": "x", "slot": "weapon", "main_stat": "atk", "rarity": 5}]}`},
		{"negative weight", `{"weights": {"crit_rate": -1}, "artifacts": [{"id": "x", "slot": "flower", "main_stat": "hp", "rarity": 5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postGrade(t, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := APIKeyAuth("secret-key")(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sets", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sets", nil)
	req.Header.Set("X-API-Key", "secret-key")
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid key: status = %d, want 200", rec.Code)
	}

	// Empty key disables the check entirely.
	open := APIKeyAuth("")(next)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/sets", nil)
	rec = httptest.NewRecorder()
	open.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("no configured key: status = %d, want 200", rec.Code)
	}
}
