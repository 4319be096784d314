package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/domain/report"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	DownloadMonthlyRecap(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// DownloadPayslip implements ReportHandler
func (h *reportHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year := periodFromQuery(r)
	data, filename, err := h.reportService.GeneratePayslip(r.Context(), payroll.SummaryRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, data)
}

// DownloadMonthlyRecap implements ReportHandler
func (h *reportHandlerImpl) DownloadMonthlyRecap(w http.ResponseWriter, r *http.Request) {
	month, year := periodFromQuery(r)
	data, filename, err := h.reportService.GenerateMonthlyRecap(r.Context(), payroll.PeriodRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, data)
}
