package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `
	id, employee_id, amount, date, status, note, created_at, updated_at
`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var adv advance.Advance
	err := row.Scan(
		&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Date, &adv.Status,
		&adv.Note, &adv.CreatedAt, &adv.UpdatedAt,
	)
	return adv, err
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, employee_id, amount, date, status, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		adv.ID,
		adv.EmployeeID,
		adv.Amount,
		adv.Date,
		adv.Status,
		adv.Note,
	).Scan(&adv.CreatedAt, &adv.UpdatedAt)

	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return adv, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advances WHERE id = $1`

	adv, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, err
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return adv, nil
}

// UpdateStatus implements advance.AdvanceRepository.
func (r *advanceRepository) UpdateStatus(ctx context.Context, id string, status advance.ApprovalStatus) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + advanceColumns + `
	`

	adv, err := scanAdvance(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, err
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance status: %w", err)
	}

	return adv, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepository) List(ctx context.Context, filter advance.ListFilter) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.amount, a.date, a.status, a.note,
		       a.created_at, a.updated_at,
		       e.first_name || ' ' || e.last_name
		FROM advances a
		JOIN employees e ON e.id = a.employee_id
	`
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	if filter.Month != 0 && filter.Year != 0 {
		from := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		args = append(args, from)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
		args = append(args, from.AddDate(0, 1, 0))
		conditions = append(conditions, fmt.Sprintf("a.date < $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		if err := rows.Scan(
			&adv.ID, &adv.EmployeeID, &adv.Amount, &adv.Date, &adv.Status,
			&adv.Note, &adv.CreatedAt, &adv.UpdatedAt, &adv.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, rows.Err()
}

// ListByEmployeeAndPeriod implements advance.AdvanceRepository.
func (r *advanceRepository) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, rows.Err()
}
