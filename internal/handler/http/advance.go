package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	RequestAdvance(w http.ResponseWriter, r *http.Request)
	ReviewAdvance(w http.ResponseWriter, r *http.Request)
	GetAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

// RequestAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) RequestAdvance(w http.ResponseWriter, r *http.Request) {
	var req advance.RequestAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.RequestAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance requested", result)
}

// ReviewAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) ReviewAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	var req advance.ReviewAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.advanceService.ReviewAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) GetAdvance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	result, err := h.advanceService.GetAdvance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAdvances implements AdvanceHandler
func (h *advanceHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	filter := advance.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}
	if m := r.URL.Query().Get("month"); m != "" {
		filter.Month, _ = strconv.Atoi(m)
	}
	if y := r.URL.Query().Get("year"); y != "" {
		filter.Year, _ = strconv.Atoi(y)
	}

	results, err := h.advanceService.ListAdvances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
