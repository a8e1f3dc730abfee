package service

import (
	"context"
	"errors"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/analytics"
	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/google/uuid"
)

var ErrNonPositiveLimit = errors.New("budget limit must be greater than zero")

type SetBudgetInput struct {
	Category string
	Month    string
	Limit    money.Amount
}

type BudgetService struct {
	budgets      repository.BudgetRepository
	transactions repository.TransactionRepository
	now          func() time.Time
}

func NewBudgetService(budgets repository.BudgetRepository, transactions repository.TransactionRepository) *BudgetService {
	return &BudgetService{
		budgets:      budgets,
		transactions: transactions,
		now:          time.Now,
	}
}

// Set creates or replaces the limit for one category and month.
func (s *BudgetService) Set(ctx context.Context, userID string, in SetBudgetInput) (*model.Budget, error) {
	category, err := model.ParseCategory(in.Category)
	if err != nil {
		return nil, invalidArgument(err)
	}

	month, err := model.ParseMonth(in.Month)
	if err != nil {
		return nil, invalidArgument(err)
	}

	if !in.Limit.IsPositive() {
		return nil, invalidArgument(ErrNonPositiveLimit)
	}

	now := s.now().UTC()
	budget := &model.Budget{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  category,
		Month:     month.String(),
		Limit:     in.Limit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.budgets.Upsert(ctx, budget)
	if err != nil {
		return nil, storageError("save budget", err)
	}

	// A replaced row keeps its original id and creation time.
	stored, err := s.budgets.ByMonth(ctx, userID, budget.Month)
	if err != nil {
		return nil, storageError("list budgets", err)
	}
	for _, b := range stored {
		if b.Category == category {
			return b, nil
		}
	}

	return budget, nil
}

// Report compares the month's budgets with actual expenses.
func (s *BudgetService) Report(ctx context.Context, userID string, month model.Month) ([]analytics.BudgetLine, error) {
	budgets, err := s.budgets.ByMonth(ctx, userID, month.String())
	if err != nil {
		return nil, storageError("list budgets", err)
	}

	txs, err := s.transactions.Between(ctx, userID, month.Start(), month.End())
	if err != nil {
		return nil, storageError("list transactions", err)
	}

	lines, err := analytics.BudgetReport(budgets, txs)
	if err != nil {
		return nil, invalidArgument(err)
	}
	return lines, nil
}
