package target

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/repository/memory"
)

type env struct {
	employeeRepo *memory.EmployeeRepository
	targetRepo   *memory.TargetRepository
	service      target.TargetService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	employeeRepo := memory.NewEmployeeRepository()
	targetRepo := memory.NewTargetRepository()
	return &env{
		employeeRepo: employeeRepo,
		targetRepo:   targetRepo,
		service:      NewTargetService(targetRepo, employeeRepo),
	}
}

func (e *env) addEmployee(t *testing.T, id, code string) {
	t.Helper()
	_, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:    id,
		Code:  code,
		Name:  "Employee " + code,
		Shift: employee.DefaultShift,
		Role:  employee.RoleStaff,
	})
	require.NoError(t, err)
}

func TestCreateTarget(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Riverside Mall"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Riverside Mall", created.Name)
	assert.Empty(t, created.Roster)
}

func TestCreateTargetRequiresName(t *testing.T) {
	e := newEnv(t)

	_, err := e.service.Create(context.Background(), target.CreateTargetRequest{})
	assert.Error(t, err)
}

func TestCreateTargetDuplicateName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Riverside Mall"})
	require.NoError(t, err)

	_, err = e.service.Create(ctx, target.CreateTargetRequest{Name: "Riverside Mall"})
	assert.ErrorIs(t, err, target.ErrTargetNameExists)
}

func TestCreateTargetDedupesRoster(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.addEmployee(t, "e1", "NV001")

	created, err := e.service.Create(ctx, target.CreateTargetRequest{
		Name: "Riverside Mall",
		Roster: []target.RosterEntry{
			{EmployeeID: "e1", Shift: "06:00 - 14:00"},
			{EmployeeID: "e1", Shift: "14:00 - 22:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Roster, 1)
	assert.Equal(t, "06:00 - 14:00", created.Roster[0].Shift)
}

func TestUpdateTargetRejectsTakenName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Site A"})
	require.NoError(t, err)
	_, err = e.service.Create(ctx, target.CreateTargetRequest{Name: "Site B"})
	require.NoError(t, err)

	name := "Site B"
	err = e.service.Update(ctx, a.ID, target.UpdateTargetRequest{Name: &name})
	assert.ErrorIs(t, err, target.ErrTargetNameExists)

	// Keeping its own name is not a conflict.
	own := "Site A"
	err = e.service.Update(ctx, a.ID, target.UpdateTargetRequest{Name: &own})
	assert.NoError(t, err)
}

func TestAddToRoster(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.addEmployee(t, "e1", "NV001")

	created, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Site A"})
	require.NoError(t, err)

	require.NoError(t, e.service.AddToRoster(ctx, created.ID, "e1", ""))

	got, err := e.service.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Roster, 1)
	assert.Equal(t, "e1", got.Roster[0].EmployeeID)
	assert.Equal(t, employee.DefaultShift, got.Roster[0].Shift)

	// Adding the same employee again is a no-op.
	require.NoError(t, e.service.AddToRoster(ctx, created.ID, "e1", "06:00 - 14:00"))
	got, err = e.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Roster, 1)
}

func TestAddToRosterUnknownEmployee(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Site A"})
	require.NoError(t, err)

	err = e.service.AddToRoster(ctx, created.ID, "ghost", "")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRemoveFromRoster(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.addEmployee(t, "e1", "NV001")
	e.addEmployee(t, "e2", "NV002")

	created, err := e.service.Create(ctx, target.CreateTargetRequest{
		Name: "Site A",
		Roster: []target.RosterEntry{
			{EmployeeID: "e1"},
			{EmployeeID: "e2"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, e.service.RemoveFromRoster(ctx, created.ID, "e1"))

	got, err := e.service.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Roster, 1)
	assert.Equal(t, "e2", got.Roster[0].EmployeeID)

	// Removing an absent employee succeeds silently.
	assert.NoError(t, e.service.RemoveFromRoster(ctx, created.ID, "e1"))
}

func TestDeleteTarget(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.service.Create(ctx, target.CreateTargetRequest{Name: "Site A"})
	require.NoError(t, err)

	require.NoError(t, e.service.Delete(ctx, created.ID))

	_, err = e.service.Get(ctx, created.ID)
	assert.ErrorIs(t, err, target.ErrTargetNotFound)
}
