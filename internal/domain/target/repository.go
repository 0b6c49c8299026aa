package target

import "context"

type TargetRepository interface {
	GetAll(ctx context.Context) ([]Target, error)
	GetByID(ctx context.Context, id string) (Target, error)
	GetByName(ctx context.Context, name string) (Target, error)
	Create(ctx context.Context, newTarget Target) (Target, error)
	Update(ctx context.Context, id string, req UpdateTargetRequest) error
	Delete(ctx context.Context, id string) error
}
