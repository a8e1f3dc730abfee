package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/jmoiron/sqlx"
)

const (
	GoalSortRecent   = "recent"
	GoalSortProgress = "progress"
	GoalSortName     = "name"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	// ErrGoalConflict means the goal changed between read and write.
	ErrGoalConflict = errors.New("goal was modified concurrently")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	ByID(ctx context.Context, goalID string) (*model.Goal, error)
	// ByIDForUpdate reads the goal and, on PostgreSQL, row-locks it until
	// the surrounding transaction ends.
	ByIDForUpdate(ctx context.Context, goalID string) (*model.Goal, error)
	Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error)
	All(ctx context.Context) ([]*model.Goal, error)
	UpdateDetails(ctx context.Context, goal *model.Goal) error
	// SaveProgress persists the balance fields when the stored version
	// still equals expectedVersion, and bumps it.
	SaveProgress(ctx context.Context, goal *model.Goal, expectedVersion int64) error
}

type goalRepository struct {
	db sqlx.ExtContext
}

func NewGoalRepository(db sqlx.ExtContext) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, name, category, target_amount, current_amount, target_date,
	              status, completed_at, contribution_count, version, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.Category,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Status,
		goal.CompletedAt,
		goal.ContributionCount,
		goal.Version,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(ctx context.Context, goalID string) (*model.Goal, error) {
	return r.get(ctx, `SELECT * FROM goals WHERE id = $1`, goalID)
}

func (r *goalRepository) ByIDForUpdate(ctx context.Context, goalID string) (*model.Goal, error) {
	query := `SELECT * FROM goals WHERE id = $1`
	// SQLite has no row locks; its write transactions are already
	// serialized by _txlock=immediate.
	if r.db.DriverName() == "pgx" {
		query += ` FOR UPDATE`
	}
	return r.get(ctx, query, goalID)
}

func (r *goalRepository) get(ctx context.Context, query string, args ...any) (*model.Goal, error) {
	goal := &model.Goal{}

	err := sqlx.GetContext(ctx, r.db, goal, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	// Validate and build ORDER BY clause
	var orderBy string
	switch sortBy {
	case GoalSortProgress:
		orderBy = "ORDER BY (current_amount * 1.0) / target_amount DESC, updated_at DESC"
	case GoalSortName:
		orderBy = "ORDER BY LOWER(name) ASC"
	default: // GoalSortRecent or empty
		orderBy = "ORDER BY updated_at DESC"
	}

	query := `SELECT * FROM goals WHERE user_id = $1 ` + orderBy

	err := sqlx.SelectContext(ctx, r.db, &goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) All(ctx context.Context) ([]*model.Goal, error) {
	goals := []*model.Goal{}

	err := sqlx.SelectContext(ctx, r.db, &goals, `SELECT * FROM goals ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) UpdateDetails(ctx context.Context, goal *model.Goal) error {
	goal.UpdatedAt = time.Now().UTC()
	query := `UPDATE goals
	          SET name = $1, category = $2, target_date = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		goal.Name,
		goal.Category,
		goal.TargetDate,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return err
	}

	return requireRow(result, ErrGoalNotFound)
}

func (r *goalRepository) SaveProgress(ctx context.Context, goal *model.Goal, expectedVersion int64) error {
	goal.UpdatedAt = time.Now().UTC()
	query := `UPDATE goals
	          SET current_amount = $1, status = $2, completed_at = $3, contribution_count = $4,
	              version = $5, updated_at = $6
	          WHERE id = $7 AND version = $8`

	result, err := r.db.ExecContext(ctx, query,
		goal.CurrentAmount,
		goal.Status,
		goal.CompletedAt,
		goal.ContributionCount,
		expectedVersion+1,
		goal.UpdatedAt,
		goal.ID,
		expectedVersion,
	)
	if err != nil {
		return err
	}

	err = requireRow(result, ErrGoalConflict)
	if err != nil {
		return err
	}

	goal.Version = expectedVersion + 1
	return nil
}

// requireRow maps "no rows affected" to notFound.
func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
