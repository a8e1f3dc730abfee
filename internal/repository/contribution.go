package repository

import (
	"context"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// LedgerTotal is the aggregate of one goal's ledger rows.
type LedgerTotal struct {
	GoalID string       `db:"goal_id"`
	Sum    money.Amount `db:"total"`
	Count  int          `db:"entries"`
}

// ContributionRepository is the append-only goal ledger. It trusts the
// caller to have validated the goal reference.
type ContributionRepository interface {
	Append(ctx context.Context, contribution *model.Contribution) error
	ByGoal(ctx context.Context, goalID string) ([]*model.Contribution, error)
	Totals(ctx context.Context) (map[string]LedgerTotal, error)
}

type contributionRepository struct {
	db sqlx.ExtContext
}

func NewContributionRepository(db sqlx.ExtContext) ContributionRepository {
	return &contributionRepository{db: db}
}

// Append inserts the row, assigning an id and, when the caller left it
// empty, the current time as contribution date.
func (r *contributionRepository) Append(ctx context.Context, c *model.Contribution) error {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.ContributionDate.IsZero() {
		c.ContributionDate = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}

	query := `INSERT INTO goal_contributions (id, goal_id, seq, amount, contribution_date, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.GoalID,
		c.Seq,
		c.Amount,
		c.ContributionDate,
		c.Notes,
		c.CreatedAt,
	)
	return err
}

// ByGoal returns the ledger in insertion order.
func (r *contributionRepository) ByGoal(ctx context.Context, goalID string) ([]*model.Contribution, error) {
	contributions := []*model.Contribution{}
	query := `SELECT * FROM goal_contributions WHERE goal_id = $1 ORDER BY seq ASC`

	err := sqlx.SelectContext(ctx, r.db, &contributions, query, goalID)
	if err != nil {
		return nil, err
	}

	return contributions, nil
}

func (r *contributionRepository) Totals(ctx context.Context) (map[string]LedgerTotal, error) {
	var rows []LedgerTotal
	query := `SELECT goal_id, CAST(SUM(amount) AS BIGINT) AS total, COUNT(*) AS entries
	          FROM goal_contributions GROUP BY goal_id`

	err := sqlx.SelectContext(ctx, r.db, &rows, query)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]LedgerTotal, len(rows))
	for _, row := range rows {
		totals[row.GoalID] = row
	}
	return totals, nil
}
