package advance

import (
	"github.com/klbeton/pointage-backend-go/internal/pkg/validator"
)

// ========================================
// ADVANCE DTOs
// ========================================

type RequestAdvanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date,omitempty"` // defaults to today
	Note       string  `json:"note,omitempty"`
}

func (r *RequestAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewAdvanceRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // APPROVED or REJECTED
}

func (r *ReviewAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	EmployeeID string
	Status     string
	Month      int
	Year       int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, []string{
		string(StatusPending), string(StatusApproved), string(StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be PENDING, APPROVED or REJECTED",
		})
	}

	if (f.Month != 0 || f.Year != 0) && (f.Month < 1 || f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdvanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Amount       string  `json:"amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Note         string  `json:"note,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func ToAdvanceResponse(adv Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:           adv.ID,
		EmployeeID:   adv.EmployeeID,
		Amount:       adv.Amount.Round(3).String(),
		Date:         adv.Date.Format("2006-01-02"),
		Status:       string(adv.Status),
		Note:         adv.Note,
		EmployeeName: adv.EmployeeName,
	}
}

func ToAdvanceResponses(advances []Advance) []AdvanceResponse {
	responses := make([]AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, ToAdvanceResponse(adv))
	}
	return responses
}
