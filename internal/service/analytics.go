package service

import (
	"context"

	"github.com/SyedqaderEng/financeOS-sub001/internal/analytics"
	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"golang.org/x/sync/errgroup"
)

// trendMonths is how many months, including the current one, the dashboard
// trend covers.
const trendMonths = 6

type Dashboard struct {
	Month   string                  `json:"month"`
	Summary analytics.MonthSummary  `json:"summary"`
	Budgets []analytics.BudgetLine  `json:"budgets"`
	Trend   []analytics.MonthTotals `json:"trend"`
	Goals   analytics.GoalsOverview `json:"goals"`
}

type AnalyticsService struct {
	transactions repository.TransactionRepository
	budgets      repository.BudgetRepository
	goals        repository.GoalRepository
}

func NewAnalyticsService(
	transactions repository.TransactionRepository,
	budgets repository.BudgetRepository,
	goals repository.GoalRepository,
) *AnalyticsService {
	return &AnalyticsService{
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
	}
}

func (s *AnalyticsService) Dashboard(ctx context.Context, userID string, month model.Month) (*Dashboard, error) {
	trendStart := month.Start().AddDate(0, -(trendMonths - 1), 0)

	var (
		txs     []*model.Transaction
		budgets []*model.Budget
		goals   []*model.Goal
	)

	// The three reads are independent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.transactions.Between(gctx, userID, trendStart, month.End())
		if err != nil {
			return storageError("list transactions", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.ByMonth(gctx, userID, month.String())
		if err != nil {
			return storageError("list budgets", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.Goals(gctx, userID, repository.GoalSortRecent)
		if err != nil {
			return storageError("list goals", err)
		}
		return nil
	})
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	inMonth := make([]*model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if model.MonthOf(tx.OccurredOn) == month {
			inMonth = append(inMonth, tx)
		}
	}

	dashboard := &Dashboard{Month: month.String()}

	// Totals beyond the Amount range are reported rather than wrapped
	dashboard.Summary, err = analytics.SummarizeMonth(inMonth)
	if err != nil {
		return nil, invalidArgument(err)
	}
	dashboard.Budgets, err = analytics.BudgetReport(budgets, inMonth)
	if err != nil {
		return nil, invalidArgument(err)
	}
	dashboard.Trend, err = analytics.MonthlyTrend(txs)
	if err != nil {
		return nil, invalidArgument(err)
	}
	dashboard.Goals, err = analytics.SummarizeGoals(goals)
	if err != nil {
		return nil, invalidArgument(err)
	}

	return dashboard, nil
}
