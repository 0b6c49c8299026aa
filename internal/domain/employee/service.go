package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// Delete removes the employee from the master list and strips it from
	// every target roster referencing it.
	Delete(ctx context.Context, id string, actorID string) error
	// Search returns up to limit employees whose code or name contains term,
	// case-insensitively. An empty term yields no results.
	Search(ctx context.Context, term string, field string, limit int) ([]EmployeeResponse, error)
}
