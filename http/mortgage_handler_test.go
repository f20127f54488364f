package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"move-calculator/domain"
	"move-calculator/repository"
	"move-calculator/service"
)

func newTestMortgageService() *service.MortgageService {
	return service.NewMortgageService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewMockCache(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestMortgageHandler_OK(t *testing.T) {

	handler := NewMortgageHandler(newTestMortgageService())

	w := postJSON(t, handler.Calculate, "/mortgage-calculator",
		`{"loanAmount": 600000, "interestRate": 6.5, "loanTerm": 30}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.MortgageResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if math.Abs(result.MonthlyPayment-3792.41) > 0.01 {
		t.Errorf("expected monthly payment ~3792.41, got %.4f", result.MonthlyPayment)
	}
	if math.Abs(result.TotalPayment-(result.TotalInterest+600000)) > 0.01 {
		t.Errorf("totals do not reconcile: %+v", result)
	}
}

func TestMortgageHandler_StringInputs(t *testing.T) {

	// The calculator UI submits slider values as strings.
	handler := NewMortgageHandler(newTestMortgageService())

	w := postJSON(t, handler.Calculate, "/mortgage-calculator",
		`{"loanAmount": "480000", "interestRate": "6.5", "loanTerm": "30"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMortgageHandler_MethodNotAllowed(t *testing.T) {

	handler := NewMortgageHandler(newTestMortgageService())

	req := httptest.NewRequest(http.MethodGet, "/mortgage-calculator", nil)
	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestMortgageHandler_BadRequest(t *testing.T) {

	handler := NewMortgageHandler(newTestMortgageService())

	cases := []string{
		`{invalid-json}`,
		`{"loanAmount": 600000}`,                                          // missing fields
		`{"loanAmount": "abc", "interestRate": 6.5, "loanTerm": 30}`,      // non-numeric
		`{"loanAmount": -100, "interestRate": 5, "loanTerm": 30}`,         // negative amount
		`{"loanAmount": 600000, "interestRate": -1, "loanTerm": 30}`,      // negative rate
		`{"loanAmount": 600000, "interestRate": 6.5, "loanTerm": 0}`,      // zero term
		`{"loanAmount": "NaN", "interestRate": 6.5, "loanTerm": 30}`,      // NaN string
		`{"loanAmount": null, "interestRate": 6.5, "loanTerm": 30}`,       // null field
	}

	for _, body := range cases {
		w := postJSON(t, handler.Calculate, "/mortgage-calculator", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestMortgageHandler_ErrorBodyIsJSON(t *testing.T) {

	handler := NewMortgageHandler(newTestMortgageService())

	w := postJSON(t, handler.Calculate, "/mortgage-calculator", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var payload map[string]string
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if payload["error"] == "" {
		t.Errorf("expected a descriptive error message")
	}
}
