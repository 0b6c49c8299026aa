package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
)

// EmployeeRepository is a mutex-guarded map store used by tests and by the
// standalone demo wiring.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if strings.EqualFold(e.Code, code) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Code != nil {
		e.Code = *req.Code
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Shift != nil {
		e.Shift = *req.Shift
	}
	if req.Role != nil {
		e.Role = employee.Role(*req.Role)
	}
	// Password carries the already-hashed value by the time it reaches a
	// repository; hashing happens in the service layer.
	if req.Password != nil {
		e.PasswordHash = *req.Password
	}
	if req.DailyRate != nil {
		e.DailyRate = *req.DailyRate
	}
	if req.Bonus != nil {
		e.Bonus = *req.Bonus
	}
	if req.Penalty != nil {
		e.Penalty = *req.Penalty
	}
	if req.Advance != nil {
		e.Advance = *req.Advance
	}
	if req.Deduction != nil {
		e.Deduction = *req.Deduction
	}
	if req.Note != nil {
		e.Note = *req.Note
	}
	e.UpdatedAt = time.Now()
	r.employees[id] = e
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}
