package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/domain/payroll"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	policy payroll.Policy
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, policy payroll.Policy) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		policy:             policy,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	matricule := strings.ToUpper(strings.TrimSpace(req.Matricule))

	_, err := e.EmployeeRepository.GetByMatricule(ctx, matricule)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrMatriculeExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check matricule: %w", err)
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	leaveBalance := e.policy.DefaultLeaveBalanceDays
	if req.LeaveBalanceDays != nil {
		leaveBalance = *req.LeaveBalanceDays
	}
	sickBalance := e.policy.DefaultSickBalanceDays
	if req.SickBalanceDays != nil {
		sickBalance = *req.SickBalanceDays
	}

	emp := employee.Employee{
		ID:               uuid.NewString(),
		Matricule:        matricule,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Position:         strings.TrimSpace(req.Position),
		HireDate:         hireDate,
		BaseMonthlyPay:   employee.PayFromFloat(req.BaseMonthlyPay),
		LeaveBalanceDays: leaveBalance,
		SickBalanceDays:  sickBalance,
		Status:           employee.StatusActive,
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.getByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.getByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		emp.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Position != nil {
		emp.Position = strings.TrimSpace(*req.Position)
	}
	if req.HireDate != nil {
		emp.HireDate, _ = time.Parse("2006-01-02", *req.HireDate)
	}
	if req.BaseMonthlyPay != nil {
		emp.BaseMonthlyPay = employee.PayFromFloat(*req.BaseMonthlyPay)
	}
	if req.LeaveBalanceDays != nil {
		emp.LeaveBalanceDays = *req.LeaveBalanceDays
	}
	if req.SickBalanceDays != nil {
		emp.SickBalanceDays = *req.SickBalanceDays
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToEmployeeResponse(updated), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	emp, err := e.getByID(ctx, id)
	if err != nil {
		return err
	}

	if emp.Status == employee.StatusInactive {
		return nil
	}

	emp.Status = employee.StatusInactive
	if _, err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func (e *EmployeeServiceImpl) getByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}
