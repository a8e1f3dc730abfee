package service

import (
	"context"
	"testing"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFinanceServices(env *testEnv) (*TransactionService, *BudgetService, *AnalyticsService) {
	transactions := NewTransactionService(env.repos.Transactions)
	transactions.now = func() time.Time { return fixedNow }
	budgets := NewBudgetService(env.repos.Budgets, env.repos.Transactions)
	budgets.now = func() time.Time { return fixedNow }
	analytics := NewAnalyticsService(env.repos.Transactions, env.repos.Budgets, env.repos.Goals)
	return transactions, budgets, analytics
}

func TestTransactionService_CreateAndMonth(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.user(t, "ada@example.com")
	svc, _, _ := newFinanceServices(env)

	created, err := svc.Create(ctx, user.ID, CreateTransactionInput{
		Kind:     model.TransactionKindExpense,
		Amount:   money.MustParse("12.30"),
		Category: "Groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Category("groceries"), created.Category)
	assert.True(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).Equal(created.OccurredOn))

	uncategorized, err := svc.Create(ctx, user.ID, CreateTransactionInput{
		Kind:       model.TransactionKindIncome,
		Amount:     money.MustParse("2000"),
		OccurredOn: "2025-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryUncategorized, uncategorized.Category)

	_, err = svc.Create(ctx, user.ID, CreateTransactionInput{
		Kind:       model.TransactionKindExpense,
		Amount:     money.MustParse("5"),
		Category:   "fuel",
		OccurredOn: "2025-05-31",
	})
	require.NoError(t, err)

	month, err := svc.CurrentMonth("")
	require.NoError(t, err)
	assert.Equal(t, "2025-06", month.String())

	june, err := svc.Month(ctx, user.ID, month)
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.Equal(t, created.ID, june[0].ID)
	assert.Equal(t, uncategorized.ID, june[1].ID)

	_, err = svc.CurrentMonth("June")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTransactionService_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.user(t, "ada@example.com")
	svc, _, _ := newFinanceServices(env)

	inputs := []CreateTransactionInput{
		{Kind: "transfer", Amount: 100},
		{Kind: model.TransactionKindExpense, Amount: 0},
		{Kind: model.TransactionKindExpense, Amount: 100, Category: "???"},
		{Kind: model.TransactionKindExpense, Amount: 100, OccurredOn: "yesterday"},
	}
	for _, in := range inputs {
		_, err := svc.Create(ctx, user.ID, in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %+v", in)
	}
}

func TestBudgetService_SetAndReport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.user(t, "ada@example.com")
	transactions, budgets, _ := newFinanceServices(env)

	first, err := budgets.Set(ctx, user.ID, SetBudgetInput{Category: "groceries", Month: "2025-06", Limit: money.MustParse("100")})
	require.NoError(t, err)

	replaced, err := budgets.Set(ctx, user.ID, SetBudgetInput{Category: "Groceries", Month: "2025-06", Limit: money.MustParse("150")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replaced.ID)
	assert.Equal(t, money.MustParse("150"), replaced.Limit)

	_, err = budgets.Set(ctx, user.ID, SetBudgetInput{Category: "groceries", Month: "06/2025", Limit: 100})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = budgets.Set(ctx, user.ID, SetBudgetInput{Category: "groceries", Month: "2025-06", Limit: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = transactions.Create(ctx, user.ID, CreateTransactionInput{
		Kind: model.TransactionKindExpense, Amount: money.MustParse("160"), Category: "groceries", OccurredOn: "2025-06-02",
	})
	require.NoError(t, err)

	report, err := budgets.Report(ctx, user.ID, model.Month{Year: 2025, Month: time.June})
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, money.MustParse("160"), report[0].Spent)
	assert.Equal(t, money.MustParse("-10"), report[0].Remaining)
	assert.True(t, report[0].OverBudget)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.user(t, "ada@example.com")
	transactions, budgets, analytics := newFinanceServices(env)

	add := func(kind, amount, category, day string) {
		_, err := transactions.Create(ctx, user.ID, CreateTransactionInput{
			Kind: kind, Amount: money.MustParse(amount), Category: category, OccurredOn: day,
		})
		require.NoError(t, err)
	}
	add(model.TransactionKindIncome, "3000", "salary", "2025-06-01")
	add(model.TransactionKindExpense, "200", "rent", "2025-06-03")
	add(model.TransactionKindIncome, "2900", "salary", "2025-05-01")
	add(model.TransactionKindExpense, "50", "rent", "2024-01-01")

	_, err := budgets.Set(ctx, user.ID, SetBudgetInput{Category: "rent", Month: "2025-06", Limit: money.MustParse("500")})
	require.NoError(t, err)

	env.goal(t, user.ID, "Vacation", "1000")

	dashboard, err := analytics.Dashboard(ctx, user.ID, model.Month{Year: 2025, Month: time.June})
	require.NoError(t, err)

	assert.Equal(t, "2025-06", dashboard.Month)
	assert.Equal(t, money.MustParse("3000"), dashboard.Summary.Income)
	assert.Equal(t, money.MustParse("200"), dashboard.Summary.Expenses)
	require.Len(t, dashboard.Budgets, 1)
	assert.False(t, dashboard.Budgets[0].OverBudget)

	require.Len(t, dashboard.Trend, 2, "transactions older than the trend window are ignored")
	assert.Equal(t, "2025-05", dashboard.Trend[0].Month)
	assert.Equal(t, "2025-06", dashboard.Trend[1].Month)

	assert.Equal(t, 1, dashboard.Goals.Active)
	assert.Equal(t, money.MustParse("1000"), dashboard.Goals.TotalTarget)
}

func TestLedgerAuditor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.user(t, "ada@example.com")
	healthy := env.goal(t, user.ID, "Healthy", "100")
	tampered := env.goal(t, user.ID, "Tampered", "100")

	contributions := newContributionService(env, nil)
	for _, id := range []string{healthy.ID, tampered.ID} {
		_, err := contributions.Contribute(ctx, id, user.ID, money.MustParse("40"), "")
		require.NoError(t, err)
	}

	auditor := NewLedgerAuditor(env.repos.Goals, env.repos.Contributions)
	mismatches, err := auditor.Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	_, err = env.db.ExecContext(ctx, `UPDATE goals SET current_amount = 9000 WHERE id = $1`, tampered.ID)
	require.NoError(t, err)

	mismatches, err = auditor.Audit(ctx)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, tampered.ID, mismatches[0].GoalID)
	assert.Equal(t, money.MustParse("90"), mismatches[0].CurrentAmount)
	assert.Equal(t, money.MustParse("40"), mismatches[0].LedgerSum)
	assert.Equal(t, "current amount differs from ledger sum", mismatches[0].Reason)
}

func TestAuditGoal(t *testing.T) {
	completedAt := fixedNow
	tests := []struct {
		name   string
		goal   model.Goal
		total  money.Amount
		count  int
		reason string
	}{
		{
			name:  "consistent active",
			goal:  model.Goal{TargetAmount: 100, CurrentAmount: 50, ContributionCount: 1, Status: model.GoalStatusActive},
			total: 50, count: 1,
		},
		{
			name:   "count drift",
			goal:   model.Goal{TargetAmount: 100, CurrentAmount: 50, ContributionCount: 2, Status: model.GoalStatusActive},
			total:  50, count: 1,
			reason: "contribution count differs from ledger rows",
		},
		{
			name:   "reached but active",
			goal:   model.Goal{TargetAmount: 100, CurrentAmount: 100, ContributionCount: 1, Status: model.GoalStatusActive},
			total:  100, count: 1,
			reason: "target reached but goal is not completed",
		},
		{
			name:   "completed without timestamp",
			goal:   model.Goal{TargetAmount: 100, CurrentAmount: 100, ContributionCount: 1, Status: model.GoalStatusCompleted},
			total:  100, count: 1,
			reason: "completed goal has no completion time",
		},
		{
			name:  "consistent completed",
			goal:  model.Goal{TargetAmount: 100, CurrentAmount: 120, ContributionCount: 2, Status: model.GoalStatusCompleted, CompletedAt: &completedAt},
			total: 120, count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := auditGoal(&tt.goal, repository.LedgerTotal{Sum: tt.total, Count: tt.count})
			assert.Equal(t, tt.reason, got)
		})
	}
}
