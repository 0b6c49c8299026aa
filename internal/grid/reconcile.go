package grid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/domain/timesheet"
)

// Reconciler turns a committed grid snapshot into the consistent mutation
// set for the employee master list and the target rosters. Every persistence
// call is best-effort per entity: a failure is logged and the remaining diff
// entries are still processed.
type Reconciler struct {
	employees employee.EmployeeRepository
	targets   target.TargetRepository
	logger    *slog.Logger
}

func NewReconciler(employees employee.EmployeeRepository, targets target.TargetRepository, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		employees: employees,
		targets:   targets,
		logger:    logger,
	}
}

// Result summarizes what one reconciliation run did.
type Result struct {
	Added          []string
	Changed        []string
	Removed        []string
	CreatedTargets []string
}

type fieldChange struct {
	row     timesheet.Row
	oldDept string
	patch   employee.UpdateEmployeeRequest
}

// Reconcile diffs the new grid snapshot against the master list and the
// previous snapshot, then applies adds, field changes, roster sync, and
// removals in that order. Running it twice with the same (prev, next) pair
// is a no-op the second time: every insert checks existence first.
func (r *Reconciler) Reconcile(ctx context.Context, prev, next []timesheet.Row) (Result, error) {
	var res Result

	master, err := r.employees.GetAll(ctx)
	if err != nil {
		return res, err
	}
	masterByID := make(map[string]employee.Employee, len(master))
	for _, e := range master {
		masterByID[e.ID] = e
	}

	var added []timesheet.Row
	var changed []fieldChange
	for _, row := range next {
		current, exists := masterByID[row.ID]
		if !exists {
			added = append(added, row)
			continue
		}
		if current.Code == row.Code && current.Name == row.Name && current.Department == row.Department {
			continue
		}
		fc := fieldChange{row: row, oldDept: current.Department}
		if current.Code != row.Code {
			fc.patch.Code = &row.Code
		}
		if current.Name != row.Name {
			fc.patch.Name = &row.Name
		}
		if current.Department != row.Department {
			fc.patch.Department = &row.Department
		}
		changed = append(changed, fc)
	}

	nextIDs := make(map[string]struct{}, len(next))
	for _, row := range next {
		nextIDs[row.ID] = struct{}{}
	}
	var removed []string
	for _, row := range prev {
		if _, kept := nextIDs[row.ID]; !kept {
			removed = append(removed, row.ID)
		}
	}

	createdRows := make([]timesheet.Row, 0, len(added))
	for _, row := range added {
		created, err := r.createEmployee(ctx, row)
		if err != nil {
			r.logger.Error("reconcile: create employee failed",
				slog.String("employee_id", row.ID),
				slog.String("code", row.Code),
				slog.Any("error", err))
			continue
		}
		row.ID = created.ID
		createdRows = append(createdRows, row)
		res.Added = append(res.Added, created.ID)
	}

	for _, fc := range changed {
		if err := r.employees.Update(ctx, fc.row.ID, fc.patch); err != nil {
			r.logger.Error("reconcile: update employee failed",
				slog.String("employee_id", fc.row.ID),
				slog.Any("error", err))
			continue
		}
		res.Changed = append(res.Changed, fc.row.ID)
	}

	r.syncRosters(ctx, createdRows, changed, &res)

	for _, id := range removed {
		if err := r.employees.Delete(ctx, id); err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			r.logger.Error("reconcile: delete employee failed",
				slog.String("employee_id", id),
				slog.Any("error", err))
			continue
		}
		r.stripFromRosters(ctx, id)
		res.Removed = append(res.Removed, id)
	}

	return res, nil
}

func (r *Reconciler) createEmployee(ctx context.Context, row timesheet.Row) (employee.Employee, error) {
	id := row.ID
	if id == "" {
		id = uuid.NewString()
	}
	shift := row.Shift
	if shift == "" {
		shift = employee.DefaultShift
	}
	return r.employees.Create(ctx, employee.Employee{
		ID:         id,
		Code:       row.Code,
		Name:       row.Name,
		Department: row.Department,
		Shift:      shift,
		Role:       employee.RoleStaff,
	})
}

// syncRosters keeps target rosters in step with department edits. Changed
// employees move between existing targets; new employees with a real
// department get an existing target's roster entry or a freshly created
// target seeded with just them.
func (r *Reconciler) syncRosters(ctx context.Context, added []timesheet.Row, changed []fieldChange, res *Result) {
	targets, err := r.targets.GetAll(ctx)
	if err != nil {
		r.logger.Error("reconcile: load targets failed", slog.Any("error", err))
		return
	}
	byName := make(map[string]*target.Target, len(targets))
	for i := range targets {
		byName[targets[i].Name] = &targets[i]
	}

	for _, fc := range changed {
		if fc.patch.Department == nil {
			continue
		}
		newDept := *fc.patch.Department

		if old, ok := byName[fc.oldDept]; ok && old.HasEmployee(fc.row.ID) {
			roster := old.WithoutEmployee(fc.row.ID)
			if err := r.targets.Update(ctx, old.ID, target.UpdateTargetRequest{Roster: &roster}); err != nil {
				r.logger.Error("reconcile: remove from roster failed",
					slog.String("target_id", old.ID),
					slog.String("employee_id", fc.row.ID),
					slog.Any("error", err))
			} else {
				old.Roster = roster
			}
		}

		if dst, ok := byName[newDept]; ok && !dst.HasEmployee(fc.row.ID) {
			roster := append(append([]target.RosterEntry{}, dst.Roster...), target.RosterEntry{
				EmployeeID: fc.row.ID,
				Shift:      employee.DefaultShift,
			})
			if err := r.targets.Update(ctx, dst.ID, target.UpdateTargetRequest{Roster: &roster}); err != nil {
				r.logger.Error("reconcile: add to roster failed",
					slog.String("target_id", dst.ID),
					slog.String("employee_id", fc.row.ID),
					slog.Any("error", err))
			} else {
				dst.Roster = roster
			}
		}
	}

	for _, row := range added {
		if row.Department == "" || row.Department == employee.DepartmentUnassigned {
			continue
		}
		dst, ok := byName[row.Department]
		if !ok {
			created, err := r.targets.Create(ctx, target.Target{
				ID:   uuid.NewString(),
				Name: row.Department,
				Roster: []target.RosterEntry{
					{EmployeeID: row.ID, Shift: employee.DefaultShift},
				},
			})
			if err != nil {
				r.logger.Error("reconcile: auto-create target failed",
					slog.String("department", row.Department),
					slog.Any("error", err))
				continue
			}
			byName[created.Name] = &created
			res.CreatedTargets = append(res.CreatedTargets, created.ID)
			continue
		}
		if dst.HasEmployee(row.ID) {
			continue
		}
		roster := append(append([]target.RosterEntry{}, dst.Roster...), target.RosterEntry{
			EmployeeID: row.ID,
			Shift:      employee.DefaultShift,
		})
		if err := r.targets.Update(ctx, dst.ID, target.UpdateTargetRequest{Roster: &roster}); err != nil {
			r.logger.Error("reconcile: add to roster failed",
				slog.String("target_id", dst.ID),
				slog.String("employee_id", row.ID),
				slog.Any("error", err))
			continue
		}
		dst.Roster = roster
	}
}

// stripFromRosters removes a deleted employee from every target that lists
// it so no roster keeps a dangling id.
func (r *Reconciler) stripFromRosters(ctx context.Context, employeeID string) {
	targets, err := r.targets.GetAll(ctx)
	if err != nil {
		r.logger.Error("reconcile: load targets failed", slog.Any("error", err))
		return
	}
	for _, t := range targets {
		if !t.HasEmployee(employeeID) {
			continue
		}
		roster := t.WithoutEmployee(employeeID)
		if err := r.targets.Update(ctx, t.ID, target.UpdateTargetRequest{Roster: &roster}); err != nil {
			r.logger.Error("reconcile: strip roster failed",
				slog.String("target_id", t.ID),
				slog.String("employee_id", employeeID),
				slog.Any("error", err))
		}
	}
}
