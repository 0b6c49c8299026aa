package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/guardhq/timesheet-backend-go/internal/domain/target"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/database"
)

type targetRepositoryImpl struct {
	db *database.DB
}

func NewTargetRepository(db *database.DB) target.TargetRepository {
	return &targetRepositoryImpl{db: db}
}

func scanTarget(row pgx.Row) (target.Target, error) {
	var t target.Target
	var rosterJSON []byte
	if err := row.Scan(&t.ID, &t.Name, &rosterJSON, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return target.Target{}, err
	}
	if len(rosterJSON) > 0 {
		if err := json.Unmarshal(rosterJSON, &t.Roster); err != nil {
			return target.Target{}, fmt.Errorf("decode roster: %w", err)
		}
	}
	return t, nil
}

// GetAll implements target.TargetRepository. Targets come back in creation
// order; row ordering depends on it.
func (r *targetRepositoryImpl) GetAll(ctx context.Context) ([]target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, roster, created_at, updated_at
		FROM targets
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []target.Target
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

// GetByID implements target.TargetRepository.
func (r *targetRepositoryImpl) GetByID(ctx context.Context, id string) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, roster, created_at, updated_at FROM targets WHERE id = $1`

	t, err := scanTarget(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return target.Target{}, target.ErrTargetNotFound
		}
		return target.Target{}, err
	}
	return t, nil
}

// GetByName implements target.TargetRepository.
func (r *targetRepositoryImpl) GetByName(ctx context.Context, name string) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, roster, created_at, updated_at FROM targets WHERE name = $1`

	t, err := scanTarget(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return target.Target{}, target.ErrTargetNotFound
		}
		return target.Target{}, err
	}
	return t, nil
}

// Create implements target.TargetRepository.
func (r *targetRepositoryImpl) Create(ctx context.Context, newTarget target.Target) (target.Target, error) {
	q := GetQuerier(ctx, r.db)

	roster := newTarget.Roster
	if roster == nil {
		roster = []target.RosterEntry{}
	}
	rosterJSON, err := json.Marshal(roster)
	if err != nil {
		return target.Target{}, fmt.Errorf("encode roster: %w", err)
	}

	query := `
		INSERT INTO targets (id, name, roster)
		VALUES ($1, $2, $3)
		RETURNING id, name, roster, created_at, updated_at
	`

	created, err := scanTarget(q.QueryRow(ctx, query, newTarget.ID, newTarget.Name, rosterJSON))
	if err != nil {
		return target.Target{}, err
	}
	return created, nil
}

// Update implements target.TargetRepository.
func (r *targetRepositoryImpl) Update(ctx context.Context, id string, req target.UpdateTargetRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *req.Name)
		argPos++
	}
	if req.Roster != nil {
		rosterJSON, err := json.Marshal(*req.Roster)
		if err != nil {
			return fmt.Errorf("encode roster: %w", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("roster = $%d", argPos))
		args = append(args, rosterJSON)
		argPos++
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE targets
		SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(setClauses, ", "), argPos)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return target.ErrTargetNotFound
		}
		return fmt.Errorf("failed to update target %s: %w", id, err)
	}
	return nil
}

// Delete implements target.TargetRepository.
func (r *targetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM targets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return target.ErrTargetNotFound
	}
	return nil
}
