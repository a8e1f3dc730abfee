package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repos groups repositories that share one executor, either the pool or
// an open transaction.
type Repos struct {
	Users         UserRepository
	Goals         GoalRepository
	Contributions ContributionRepository
	Transactions  TransactionRepository
	Budgets       BudgetRepository
}

// Transactor runs fn inside a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise, so
// every write made through the supplied Repos lands together or not at all.
type Transactor interface {
	InTx(ctx context.Context, fn func(Repos) error) error
}

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Repos returns repositories bound to the connection pool.
func (s *Store) Repos() Repos {
	return newRepos(s.db)
}

func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = fn(newRepos(tx))
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newRepos(db sqlx.ExtContext) Repos {
	return Repos{
		Users:         NewUserRepository(db),
		Goals:         NewGoalRepository(db),
		Contributions: NewContributionRepository(db),
		Transactions:  NewTransactionRepository(db),
		Budgets:       NewBudgetRepository(db),
	}
}
