package advance

import (
	"context"
)

// AdvanceService defines business logic for cash advances.
type AdvanceService interface {
	// RequestAdvance records a new advance in PENDING state.
	RequestAdvance(ctx context.Context, req RequestAdvanceRequest) (AdvanceResponse, error)

	// ReviewAdvance approves or rejects a pending advance. An advance that
	// has already been processed cannot be reviewed again.
	ReviewAdvance(ctx context.Context, req ReviewAdvanceRequest) (AdvanceResponse, error)

	GetAdvance(ctx context.Context, id string) (AdvanceResponse, error)

	ListAdvances(ctx context.Context, filter ListFilter) ([]AdvanceResponse, error)
}
