package memory

import (
	"context"
	"sync"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
)

type TargetRepository struct {
	mu      sync.RWMutex
	targets map[string]target.Target
	order   []string
}

func NewTargetRepository() *TargetRepository {
	return &TargetRepository{targets: make(map[string]target.Target)}
}

// GetAll returns targets in insertion order; roster ordering depends on it.
func (r *TargetRepository) GetAll(ctx context.Context) ([]target.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]target.Target, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.targets[id]; ok {
			out = append(out, cloneTarget(t))
		}
	}
	return out, nil
}

func (r *TargetRepository) GetByID(ctx context.Context, id string) (target.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.targets[id]
	if !ok {
		return target.Target{}, target.ErrTargetNotFound
	}
	return cloneTarget(t), nil
}

func (r *TargetRepository) GetByName(ctx context.Context, name string) (target.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.targets {
		if t.Name == name {
			return cloneTarget(t), nil
		}
	}
	return target.Target{}, target.ErrTargetNotFound
}

func (r *TargetRepository) Create(ctx context.Context, newTarget target.Target) (target.Target, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.targets {
		if t.Name == newTarget.Name {
			return target.Target{}, target.ErrTargetNameExists
		}
	}
	now := time.Now()
	newTarget.CreatedAt = now
	newTarget.UpdatedAt = now
	r.targets[newTarget.ID] = cloneTarget(newTarget)
	r.order = append(r.order, newTarget.ID)
	return newTarget, nil
}

func (r *TargetRepository) Update(ctx context.Context, id string, req target.UpdateTargetRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.targets[id]
	if !ok {
		return target.ErrTargetNotFound
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Roster != nil {
		t.Roster = append([]target.RosterEntry{}, (*req.Roster)...)
	}
	t.UpdatedAt = time.Now()
	r.targets[id] = t
	return nil
}

func (r *TargetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.targets[id]; !ok {
		return target.ErrTargetNotFound
	}
	delete(r.targets, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneTarget(t target.Target) target.Target {
	t.Roster = append([]target.RosterEntry{}, t.Roster...)
	return t
}
