package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"move-calculator/domain"
)

func TestScheduleHandler_OK(t *testing.T) {

	handler := NewScheduleHandler(newTestMortgageService())

	w := postJSON(t, handler.Schedule, "/amortization-schedule",
		`{"loanAmount": 480000, "interestRate": 6.5, "loanTerm": 30}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ScheduleResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Summary.TotalMonths != 360 {
		t.Errorf("expected 360 months, got %d", result.Summary.TotalMonths)
	}
	if result.Summary.TotalPages != 30 {
		t.Errorf("expected 30 pages, got %d", result.Summary.TotalPages)
	}
	if len(result.Schedule) != 12 {
		t.Fatalf("expected default page of 12 entries, got %d", len(result.Schedule))
	}
	if result.Schedule[0].Month != 1 {
		t.Errorf("expected first month 1, got %d", result.Schedule[0].Month)
	}
	if math.Abs(result.Summary.TotalPrincipal-480000) > 0.01 {
		t.Errorf("expected total principal ~480000, got %.4f", result.Summary.TotalPrincipal)
	}
}

func TestScheduleHandler_Pagination(t *testing.T) {

	handler := NewScheduleHandler(newTestMortgageService())

	w := postJSON(t, handler.Schedule, "/amortization-schedule",
		`{"loanAmount": 480000, "interestRate": 6.5, "loanTerm": 30, "page": 3, "pageSize": 24}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ScheduleResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Summary.CurrentPage != 3 || result.Summary.PageSize != 24 {
		t.Errorf("expected page 3 size 24, got %d/%d",
			result.Summary.CurrentPage, result.Summary.PageSize)
	}
	if len(result.Schedule) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(result.Schedule))
	}
	if result.Schedule[0].Month != 49 {
		t.Errorf("expected page 3 to start at month 49, got %d", result.Schedule[0].Month)
	}
}

func TestScheduleHandler_MethodNotAllowed(t *testing.T) {

	handler := NewScheduleHandler(newTestMortgageService())

	req := httptest.NewRequest(http.MethodGet, "/amortization-schedule", nil)
	w := httptest.NewRecorder()
	handler.Schedule(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestScheduleHandler_BadRequest(t *testing.T) {

	handler := NewScheduleHandler(newTestMortgageService())

	cases := []string{
		`not json`,
		`{"interestRate": 6.5, "loanTerm": 30}`,
		`{"loanAmount": 0, "interestRate": 6.5, "loanTerm": 30}`,
	}

	for _, body := range cases {
		w := postJSON(t, handler.Schedule, "/amortization-schedule", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}
