package repository

import (
	"context"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/jmoiron/sqlx"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	// Between returns the user's transactions with from <= occurred_on < to,
	// newest first.
	Between(ctx context.Context, userID string, from, to time.Time) ([]*model.Transaction, error)
}

type transactionRepository struct {
	db sqlx.ExtContext
}

func NewTransactionRepository(db sqlx.ExtContext) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	query := `INSERT INTO transactions (id, user_id, kind, amount, category, description, occurred_on, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Kind,
		t.Amount,
		t.Category,
		t.Description,
		t.OccurredOn,
		t.CreatedAt,
	)
	return err
}

func (r *transactionRepository) Between(ctx context.Context, userID string, from, to time.Time) ([]*model.Transaction, error) {
	transactions := []*model.Transaction{}
	query := `SELECT * FROM transactions
	          WHERE user_id = $1 AND occurred_on >= $2 AND occurred_on < $3
	          ORDER BY occurred_on DESC, created_at DESC`

	err := sqlx.SelectContext(ctx, r.db, &transactions, query, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
