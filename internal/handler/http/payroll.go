package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetSummaryAll(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func periodFromQuery(r *http.Request) (month int, year int) {
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	return month, year
}

// GetSummary implements PayrollHandler
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year := periodFromQuery(r)
	result, err := h.payrollService.ComputeSummary(r.Context(), payroll.SummaryRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToSummaryResponse(result))
}

// GetSummaryAll implements PayrollHandler
func (h *payrollHandlerImpl) GetSummaryAll(w http.ResponseWriter, r *http.Request) {
	month, year := periodFromQuery(r)
	results, err := h.payrollService.ComputeSummaryAll(r.Context(), payroll.PeriodRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToSummaryResponses(results))
}

// GetPolicy implements PayrollHandler
func (h *payrollHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy := h.payrollService.Policy()
	response.Success(w, map[string]interface{}{
		"pay_base_days":         policy.PayBaseDays,
		"standard_day_hours":    policy.StandardDayHours,
		"overtime_multiplier":   policy.OvertimeMultiplier,
		"rest_day":              policy.RestDay.String(),
		"default_leave_days":    policy.DefaultLeaveBalanceDays,
		"default_sick_days":     policy.DefaultSickBalanceDays,
		"enforce_balance_floor": policy.EnforceBalanceFloor,
	})
}
