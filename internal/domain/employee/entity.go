package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Employee is the administrative record of one worker. Leave and sick
// balances are the single source of truth: they are never recomputed from
// attendance history, only decremented when a sheet is ingested.
type Employee struct {
	ID               string
	Matricule        string
	FirstName        string
	LastName         string
	Position         string
	HireDate         time.Time
	BaseMonthlyPay   decimal.Decimal
	LeaveBalanceDays float64
	SickBalanceDays  float64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
