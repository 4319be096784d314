package employee

import (
	"strings"

	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Matricule        string   `json:"matricule"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Position         string   `json:"position"`
	HireDate         string   `json:"hire_date"` // "YYYY-MM-DD"
	BaseMonthlyPay   float64  `json:"base_monthly_pay"`
	LeaveBalanceDays *float64 `json:"leave_balance_days,omitempty"` // defaults to policy value
	SickBalanceDays  *float64 `json:"sick_balance_days,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricule) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricule",
			Message: "matricule is required",
		})
	} else if !validator.IsValidMatricule(strings.ToUpper(r.Matricule)) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricule",
			Message: "matricule must be 2-20 characters: letters, digits, dashes",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.BaseMonthlyPay < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_monthly_pay",
			Message: "base_monthly_pay must not be negative",
		})
	}

	if r.LeaveBalanceDays != nil && *r.LeaveBalanceDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance_days",
			Message: "leave_balance_days must not be negative",
		})
	}

	if r.SickBalanceDays != nil && *r.SickBalanceDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sick_balance_days",
			Message: "sick_balance_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID               string   `json:"-"`
	FirstName        *string  `json:"first_name,omitempty"`
	LastName         *string  `json:"last_name,omitempty"`
	Position         *string  `json:"position,omitempty"`
	HireDate         *string  `json:"hire_date,omitempty"`
	BaseMonthlyPay   *float64 `json:"base_monthly_pay,omitempty"`
	LeaveBalanceDays *float64 `json:"leave_balance_days,omitempty"`
	SickBalanceDays  *float64 `json:"sick_balance_days,omitempty"`
	Status           *string  `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.BaseMonthlyPay != nil && *r.BaseMonthlyPay < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_monthly_pay",
			Message: "base_monthly_pay must not be negative",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Status string
	Search string
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Matricule        string  `json:"matricule"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Position         string  `json:"position"`
	HireDate         string  `json:"hire_date"`
	BaseMonthlyPay   string  `json:"base_monthly_pay"`
	LeaveBalanceDays float64 `json:"leave_balance_days"`
	SickBalanceDays  float64 `json:"sick_balance_days"`
	Status           string  `json:"status"`
}

func ToEmployeeResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               emp.ID,
		Matricule:        emp.Matricule,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Position:         emp.Position,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		BaseMonthlyPay:   emp.BaseMonthlyPay.Round(3).String(),
		LeaveBalanceDays: emp.LeaveBalanceDays,
		SickBalanceDays:  emp.SickBalanceDays,
		Status:           emp.Status,
	}
}

// PayFromFloat converts a JSON pay figure to the decimal representation used
// everywhere money is computed.
func PayFromFloat(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount)
}
