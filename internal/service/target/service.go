package target

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/validator"
)

type TargetServiceImpl struct {
	targetRepo   target.TargetRepository
	employeeRepo employee.EmployeeRepository
}

func NewTargetService(targetRepo target.TargetRepository, employeeRepo employee.EmployeeRepository) target.TargetService {
	return &TargetServiceImpl{
		targetRepo:   targetRepo,
		employeeRepo: employeeRepo,
	}
}

// List implements target.TargetService.
func (s *TargetServiceImpl) List(ctx context.Context) ([]target.TargetResponse, error) {
	targets, err := s.targetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]target.TargetResponse, 0, len(targets))
	for _, t := range targets {
		out = append(out, toResponse(t))
	}
	return out, nil
}

// Get implements target.TargetService.
func (s *TargetServiceImpl) Get(ctx context.Context, id string) (target.TargetResponse, error) {
	t, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return target.TargetResponse{}, err
	}
	return toResponse(t), nil
}

// Create implements target.TargetService.
func (s *TargetServiceImpl) Create(ctx context.Context, req target.CreateTargetRequest) (target.TargetResponse, error) {
	if validator.IsEmpty(req.Name) {
		return target.TargetResponse{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}

	if _, err := s.targetRepo.GetByName(ctx, req.Name); err == nil {
		return target.TargetResponse{}, target.ErrTargetNameExists
	} else if !errors.Is(err, target.ErrTargetNotFound) {
		return target.TargetResponse{}, err
	}

	created, err := s.targetRepo.Create(ctx, target.Target{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Roster: dedupeRoster(req.Roster),
	})
	if err != nil {
		return target.TargetResponse{}, err
	}
	return toResponse(created), nil
}

// Update implements target.TargetService.
func (s *TargetServiceImpl) Update(ctx context.Context, id string, req target.UpdateTargetRequest) error {
	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return validator.ValidationErrors{{Field: "name", Message: "name must not be empty"}}
		}
		existing, err := s.targetRepo.GetByName(ctx, *req.Name)
		if err == nil && existing.ID != id {
			return target.ErrTargetNameExists
		}
		if err != nil && !errors.Is(err, target.ErrTargetNotFound) {
			return err
		}
	}
	if req.Roster != nil {
		deduped := dedupeRoster(*req.Roster)
		req.Roster = &deduped
	}
	return s.targetRepo.Update(ctx, id, req)
}

// Delete implements target.TargetService.
func (s *TargetServiceImpl) Delete(ctx context.Context, id string) error {
	return s.targetRepo.Delete(ctx, id)
}

// AddToRoster implements target.TargetService.
func (s *TargetServiceImpl) AddToRoster(ctx context.Context, id string, employeeID string, shift string) error {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}

	t, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.HasEmployee(employeeID) {
		return nil
	}

	if shift == "" {
		shift = employee.DefaultShift
	}
	roster := append(t.Roster, target.RosterEntry{EmployeeID: employeeID, Shift: shift})
	return s.targetRepo.Update(ctx, id, target.UpdateTargetRequest{Roster: &roster})
}

// RemoveFromRoster implements target.TargetService.
func (s *TargetServiceImpl) RemoveFromRoster(ctx context.Context, id string, employeeID string) error {
	t, err := s.targetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !t.HasEmployee(employeeID) {
		return nil
	}
	roster := t.WithoutEmployee(employeeID)
	return s.targetRepo.Update(ctx, id, target.UpdateTargetRequest{Roster: &roster})
}

func dedupeRoster(roster []target.RosterEntry) []target.RosterEntry {
	seen := make(map[string]struct{}, len(roster))
	out := make([]target.RosterEntry, 0, len(roster))
	for _, entry := range roster {
		if _, dup := seen[entry.EmployeeID]; dup {
			continue
		}
		seen[entry.EmployeeID] = struct{}{}
		if entry.Shift == "" {
			entry.Shift = employee.DefaultShift
		}
		out = append(out, entry)
	}
	return out
}

func toResponse(t target.Target) target.TargetResponse {
	roster := t.Roster
	if roster == nil {
		roster = []target.RosterEntry{}
	}
	return target.TargetResponse{
		ID:     t.ID,
		Name:   t.Name,
		Roster: roster,
	}
}
