package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(kind string, amount string, category model.Category, day time.Time) *model.Transaction {
	return &model.Transaction{
		Kind:       kind,
		Amount:     money.MustParse(amount),
		Category:   category,
		OccurredOn: day,
	}
}

var (
	jan = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb = time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
)

func TestSummarizeMonth(t *testing.T) {
	summary, err := SummarizeMonth([]*model.Transaction{
		tx(model.TransactionKindIncome, "3000", "salary", feb),
		tx(model.TransactionKindExpense, "120.50", "groceries", feb),
		tx(model.TransactionKindExpense, "80", "eating-out", feb),
		tx(model.TransactionKindExpense, "40", "eating-out", feb),
		tx(model.TransactionKindExpense, "120.50", "fuel", feb),
	})
	require.NoError(t, err)

	assert.Equal(t, money.MustParse("3000"), summary.Income)
	assert.Equal(t, money.MustParse("361"), summary.Expenses)
	assert.Equal(t, money.MustParse("2639"), summary.Net)

	assert.Equal(t, []CategoryTotal{
		{Category: "fuel", Label: "Fuel", Total: money.MustParse("120.50")},
		{Category: "groceries", Label: "Groceries", Total: money.MustParse("120.50")},
		{Category: "eating-out", Label: "Eating Out", Total: money.MustParse("120.00")},
	}, summary.ByCategory)
}

func TestSummarizeMonth_Empty(t *testing.T) {
	summary, err := SummarizeMonth(nil)
	require.NoError(t, err)
	assert.Equal(t, money.Zero, summary.Net)
	assert.Empty(t, summary.ByCategory)
}

func TestBudgetReport(t *testing.T) {
	budgets := []*model.Budget{
		{Category: "groceries", Limit: money.MustParse("100")},
		{Category: "travel", Limit: money.MustParse("500")},
	}
	txs := []*model.Transaction{
		tx(model.TransactionKindExpense, "75", "groceries", feb),
		tx(model.TransactionKindExpense, "50", "groceries", feb),
		tx(model.TransactionKindIncome, "900", "travel", feb),
	}

	lines, err := BudgetReport(budgets, txs)
	require.NoError(t, err)

	assert.Equal(t, []BudgetLine{
		{
			Category: "groceries", Label: "Groceries",
			Limit: money.MustParse("100"), Spent: money.MustParse("125"),
			Remaining: money.MustParse("-25"), OverBudget: true,
		},
		{
			Category: "travel", Label: "Travel",
			Limit: money.MustParse("500"), Spent: money.Zero,
			Remaining: money.MustParse("500"), OverBudget: false,
		},
	}, lines)
}

func TestMonthlyTrend(t *testing.T) {
	trend, err := MonthlyTrend([]*model.Transaction{
		tx(model.TransactionKindExpense, "10", "fuel", feb),
		tx(model.TransactionKindIncome, "100", "salary", jan),
		tx(model.TransactionKindExpense, "5", "fuel", jan),
		tx(model.TransactionKindIncome, "200", "salary", feb),
	})
	require.NoError(t, err)

	assert.Equal(t, []MonthTotals{
		{Month: "2025-01", Income: money.MustParse("100"), Expenses: money.MustParse("5")},
		{Month: "2025-02", Income: money.MustParse("200"), Expenses: money.MustParse("10")},
	}, trend)
}

func TestSummarizeGoals(t *testing.T) {
	overview, err := SummarizeGoals([]*model.Goal{
		{Status: model.GoalStatusActive, CurrentAmount: money.MustParse("950"), TargetAmount: money.MustParse("1000")},
		{Status: model.GoalStatusCompleted, CurrentAmount: money.MustParse("1050"), TargetAmount: money.MustParse("1000")},
	})
	require.NoError(t, err)

	assert.Equal(t, GoalsOverview{
		Active:      1,
		Completed:   1,
		TotalSaved:  money.MustParse("2000"),
		TotalTarget: money.MustParse("2000"),
	}, overview)
}

func TestTotals_Overflow(t *testing.T) {
	huge := money.Amount(math.MaxInt64)
	expenses := []*model.Transaction{
		{Kind: model.TransactionKindExpense, Amount: huge, Category: "travel", OccurredOn: feb},
		{Kind: model.TransactionKindExpense, Amount: 1, Category: "travel", OccurredOn: feb},
	}

	_, err := SummarizeMonth(expenses)
	assert.ErrorIs(t, err, money.ErrAmountTooLarge)

	_, err = BudgetReport([]*model.Budget{{Category: "travel", Limit: huge}}, expenses)
	assert.ErrorIs(t, err, money.ErrAmountTooLarge)

	_, err = MonthlyTrend(expenses)
	assert.ErrorIs(t, err, money.ErrAmountTooLarge)

	_, err = SummarizeGoals([]*model.Goal{
		{Status: model.GoalStatusActive, CurrentAmount: 1, TargetAmount: huge},
		{Status: model.GoalStatusActive, CurrentAmount: 1, TargetAmount: huge},
	})
	assert.ErrorIs(t, err, money.ErrAmountTooLarge)
}
