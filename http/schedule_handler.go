package http

import (
	"encoding/json"
	"net/http"

	"move-calculator/domain"
	"move-calculator/service"
)

// ScheduleHandler serves POST /amortization-schedule.
type ScheduleHandler struct {
	service *service.MortgageService
}

func NewScheduleHandler(service *service.MortgageService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.ScheduleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Schedule(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
