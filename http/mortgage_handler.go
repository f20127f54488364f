package http

import (
	"encoding/json"
	"net/http"

	"move-calculator/domain"
	"move-calculator/service"
)

// MortgageHandler serves POST /mortgage-calculator.
type MortgageHandler struct {
	service *service.MortgageService
}

func NewMortgageHandler(service *service.MortgageService) *MortgageHandler {
	return &MortgageHandler{service: service}
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.MortgageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
