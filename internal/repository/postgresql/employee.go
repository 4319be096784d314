package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/klbeton/pointage-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, matricule, first_name, last_name, position, hire_date,
	base_monthly_pay, leave_balance_days, sick_balance_days, status,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Matricule, &emp.FirstName, &emp.LastName, &emp.Position, &emp.HireDate,
		&emp.BaseMonthlyPay, &emp.LeaveBalanceDays, &emp.SickBalanceDays, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, matricule, first_name, last_name, position, hire_date,
			base_monthly_pay, leave_balance_days, sick_balance_days, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Matricule,
		emp.FirstName,
		emp.LastName,
		emp.Position,
		emp.HireDate,
		emp.BaseMonthlyPay,
		emp.LeaveBalanceDays,
		emp.SickBalanceDays,
		emp.Status,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByMatricule implements employee.EmployeeRepository.
func (r *employeeRepository) GetByMatricule(ctx context.Context, matricule string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE matricule = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, matricule))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by matricule: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR matricule ILIKE $%d)", idx, idx, idx))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY last_name ASC, first_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, position = $4, hire_date = $5,
		    base_monthly_pay = $6, leave_balance_days = $7, sick_balance_days = $8,
		    status = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.FirstName,
		emp.LastName,
		emp.Position,
		emp.HireDate,
		emp.BaseMonthlyPay,
		emp.LeaveBalanceDays,
		emp.SickBalanceDays,
		emp.Status,
	).Scan(&emp.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// DecrementLeaveBalance implements employee.EmployeeRepository.
func (r *employeeRepository) DecrementLeaveBalance(ctx context.Context, id string, days float64) error {
	return r.decrementBalance(ctx, "leave_balance_days", id, days)
}

// DecrementSickBalance implements employee.EmployeeRepository.
func (r *employeeRepository) DecrementSickBalance(ctx context.Context, id string, days float64) error {
	return r.decrementBalance(ctx, "sick_balance_days", id, days)
}

func (r *employeeRepository) decrementBalance(ctx context.Context, column string, id string, days float64) error {
	q := GetQuerier(ctx, r.db)

	// column is one of two fixed names, never caller input
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - $2, updated_at = NOW()
		WHERE id = $1
	`, column, column)

	tag, err := q.Exec(ctx, query, id, days)
	if err != nil {
		return fmt.Errorf("failed to decrement %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetBalancesForUpdate implements employee.EmployeeRepository.
func (r *employeeRepository) GetBalancesForUpdate(ctx context.Context, id string) (float64, float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_balance_days, sick_balance_days
		FROM employees
		WHERE id = $1
		FOR UPDATE
	`

	var leave, sick float64
	if err := q.QueryRow(ctx, query, id).Scan(&leave, &sick); err != nil {
		if err == pgx.ErrNoRows {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("failed to get balances: %w", err)
	}

	return leave, sick, nil
}
