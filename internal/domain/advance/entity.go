package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// Advance is a cash advance against future pay. The approval transition is
// monotonic: PENDING moves to APPROVED or REJECTED once and never back.
// Only APPROVED advances offset gross pay.
type Advance struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Date       time.Time
	Status     ApprovalStatus
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
