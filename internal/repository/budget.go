package repository

import (
	"context"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/jmoiron/sqlx"
)

type BudgetRepository interface {
	// Upsert creates the budget or replaces the limit of the existing one
	// for the same user, category and month.
	Upsert(ctx context.Context, budget *model.Budget) error
	ByMonth(ctx context.Context, userID, month string) ([]*model.Budget, error)
}

type budgetRepository struct {
	db sqlx.ExtContext
}

func NewBudgetRepository(db sqlx.ExtContext) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Upsert(ctx context.Context, b *model.Budget) error {
	query := `INSERT INTO budgets (id, user_id, category, month, limit_amount, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id, category, month)
	          DO UPDATE SET limit_amount = excluded.limit_amount, updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.UserID,
		b.Category,
		b.Month,
		b.Limit,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *budgetRepository) ByMonth(ctx context.Context, userID, month string) ([]*model.Budget, error) {
	budgets := []*model.Budget{}
	query := `SELECT * FROM budgets WHERE user_id = $1 AND month = $2 ORDER BY category ASC`

	err := sqlx.SelectContext(ctx, r.db, &budgets, query, userID, month)
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
