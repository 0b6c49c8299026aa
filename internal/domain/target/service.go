package target

import "context"

type TargetService interface {
	List(ctx context.Context) ([]TargetResponse, error)
	Get(ctx context.Context, id string) (TargetResponse, error)
	Create(ctx context.Context, req CreateTargetRequest) (TargetResponse, error)
	Update(ctx context.Context, id string, req UpdateTargetRequest) error
	// Delete removes the target only; rostered employees are left intact.
	Delete(ctx context.Context, id string) error
	// AddToRoster appends an employee to the roster unless already present.
	AddToRoster(ctx context.Context, id string, employeeID string, shift string) error
	RemoveFromRoster(ctx context.Context, id string, employeeID string) error
}
