package advance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/advance"
	"github.com/klbeton/pointage-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type AdvanceServiceImpl struct {
	advance.AdvanceRepository
	employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		AdvanceRepository:  advanceRepo,
		EmployeeRepository: employeeRepo,
	}
}

// RequestAdvance implements advance.AdvanceService.
func (a *AdvanceServiceImpl) RequestAdvance(ctx context.Context, req advance.RequestAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceResponse{}, employee.ErrEmployeeNotFound
		}
		return advance.AdvanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	adv := advance.Advance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Date:       date,
		Status:     advance.StatusPending,
		Note:       req.Note,
	}

	created, err := a.AdvanceRepository.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return advance.ToAdvanceResponse(created), nil
}

// ReviewAdvance implements advance.AdvanceService.
func (a *AdvanceServiceImpl) ReviewAdvance(ctx context.Context, req advance.ReviewAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv, err := a.getByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	// The transition is one-way: once approved or rejected, an advance is
	// settled paperwork.
	if adv.Status != advance.StatusPending {
		return advance.AdvanceResponse{}, advance.ErrAdvanceAlreadyProcessed
	}

	updated, err := a.AdvanceRepository.UpdateStatus(ctx, req.ID, advance.ApprovalStatus(req.Status))
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to update advance status: %w", err)
	}

	return advance.ToAdvanceResponse(updated), nil
}

// GetAdvance implements advance.AdvanceService.
func (a *AdvanceServiceImpl) GetAdvance(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	adv, err := a.getByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.ToAdvanceResponse(adv), nil
}

// ListAdvances implements advance.AdvanceService.
func (a *AdvanceServiceImpl) ListAdvances(ctx context.Context, filter advance.ListFilter) ([]advance.AdvanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	advances, err := a.AdvanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	return advance.ToAdvanceResponses(advances), nil
}

func (a *AdvanceServiceImpl) getByID(ctx context.Context, id string) (advance.Advance, error) {
	adv, err := a.AdvanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}
	return adv, nil
}
