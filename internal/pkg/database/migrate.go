package database

import (
	"context"
	"fmt"
)

// The unique index on (employee_id, date) is load-bearing: daily sheet
// ingestion relies on upsert-by-composite-key for its idempotent writes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		matricule TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		position TEXT NOT NULL DEFAULT '',
		hire_date DATE NOT NULL,
		base_monthly_pay NUMERIC(12,3) NOT NULL DEFAULT 0,
		leave_balance_days NUMERIC(6,2) NOT NULL DEFAULT 18,
		sick_balance_days NUMERIC(6,2) NOT NULL DEFAULT 10,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		status TEXT NOT NULL,
		worked_units DOUBLE PRECISION NOT NULL DEFAULT 0,
		overtime_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS advances (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		amount NUMERIC(12,3) NOT NULL,
		date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_advances_employee_date ON advances (employee_id, date)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT,
		role TEXT NOT NULL DEFAULT 'EMPLOYEE',
		employee_id UUID REFERENCES employees(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
