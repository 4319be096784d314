package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/klbeton/pointage-backend-go/internal/domain/attendance"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	NormalizeEntry(w http.ResponseWriter, r *http.Request)
	IngestDailySheet(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// NormalizeEntry implements AttendanceHandler - dry-run preview of one entry
func (h *attendanceHandlerImpl) NormalizeEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.NormalizeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.NormalizeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// IngestDailySheet implements AttendanceHandler
func (h *attendanceHandlerImpl) IngestDailySheet(w http.ResponseWriter, r *http.Request) {
	var req attendance.DailySheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.attendanceService.IngestDailySheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily sheet ingested", results)
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
	}
	if m := r.URL.Query().Get("month"); m != "" {
		filter.Month, _ = strconv.Atoi(m)
	}
	if y := r.URL.Query().Get("year"); y != "" {
		filter.Year, _ = strconv.Atoi(y)
	}

	results, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
