package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
	"github.com/guardhq/timesheet-backend-go/internal/grid"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	targetRepo    target.TargetRepository
	timesheetRepo timesheet.TimesheetRepository
	logger        *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	targetRepo target.TargetRepository,
	timesheetRepo timesheet.TimesheetRepository,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:  employeeRepo,
		targetRepo:    targetRepo,
		timesheetRepo: timesheetRepo,
		logger:        logger,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toResponse(e))
	}
	return out, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// Create implements employee.EmployeeService. Code uniqueness is enforced
// here, at the explicit-add path; grid commits stay permissive.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := s.validateCreate(req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByCode(ctx, req.Code); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	role := employee.RoleStaff
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	passwordHash := ""
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		passwordHash = string(hash)
	}

	department := req.Department
	if department == "" {
		department = employee.DepartmentUnassigned
	}
	shift := req.Shift
	if shift == "" {
		shift = employee.DefaultShift
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		Department:   department,
		Shift:        shift,
		PasswordHash: passwordHash,
		Role:         role,
		DailyRate:    req.DailyRate,
		Bonus:        req.Bonus,
		Penalty:      req.Penalty,
		Advance:      req.Advance,
		Deduction:    req.Deduction,
		Note:         req.Note,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if req.Code != nil {
		if validator.IsEmpty(*req.Code) {
			return validator.ValidationErrors{{Field: "code", Message: "code must not be empty"}}
		}
		existing, err := s.employeeRepo.GetByCode(ctx, *req.Code)
		if err == nil && existing.ID != id {
			return employee.ErrEmployeeCodeExists
		}
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
	}
	if req.Name != nil && validator.IsEmpty(*req.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name must not be empty"}}
	}
	if req.Role != nil && *req.Role != string(employee.RoleAdmin) && *req.Role != string(employee.RoleStaff) {
		return employee.ErrInvalidRole
	}
	if req.Shift != nil && !validator.IsValidShift(*req.Shift) {
		return validator.ValidationErrors{{Field: "shift", Message: "shift must look like 08:00 - 17:00"}}
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	return s.employeeRepo.Update(ctx, id, req)
}

// Delete implements employee.EmployeeService. Removes the master record,
// strips the id from every target roster, and drops the employee's stored
// attendance. Roster and timesheet cleanup are best-effort.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, actorID string) error {
	if id == actorID {
		return employee.ErrCannotDeleteSelf
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	targets, err := s.targetRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("load targets for roster cleanup failed", slog.Any("error", err))
	} else {
		for _, t := range targets {
			if !t.HasEmployee(id) {
				continue
			}
			roster := t.WithoutEmployee(id)
			if err := s.targetRepo.Update(ctx, t.ID, target.UpdateTargetRequest{Roster: &roster}); err != nil {
				s.logger.Error("roster cleanup failed",
					slog.String("target_id", t.ID),
					slog.String("employee_id", id),
					slog.Any("error", err))
			}
		}
	}

	if err := s.timesheetRepo.DeleteEmployee(ctx, id); err != nil {
		s.logger.Error("timesheet cleanup failed",
			slog.String("employee_id", id),
			slog.Any("error", err))
	}
	return nil
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, term string, field string, limit int) ([]employee.EmployeeResponse, error) {
	master, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := grid.FieldCode
	if field == string(grid.FieldName) {
		f = grid.FieldName
	}
	matches := grid.SearchEmployees(master, term, f)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]employee.EmployeeResponse, 0, len(matches))
	for _, e := range matches {
		out = append(out, toResponse(e))
	}
	return out, nil
}

func (s *EmployeeServiceImpl) validateCreate(req employee.CreateEmployeeRequest) error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmployeeCode(req.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if req.Shift != "" && !validator.IsValidShift(req.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must look like 08:00 - 17:00"})
	}
	if req.Role != "" && req.Role != string(employee.RoleAdmin) && req.Role != string(employee.RoleStaff) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or staff"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Department: e.Department,
		Shift:      e.Shift,
		Role:       string(e.Role),
		DailyRate:  e.DailyRate,
		Bonus:      e.Bonus,
		Penalty:    e.Penalty,
		Advance:    e.Advance,
		Deduction:  e.Deduction,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
