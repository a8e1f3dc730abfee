// Package analytics derives read-only summaries from transactions, budgets
// and goals. Every function is pure; callers load the data.
package analytics

import (
	"cmp"
	"slices"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

// CategoryTotal is the spending in one category.
type CategoryTotal struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Total    money.Amount   `json:"total"`
}

type MonthSummary struct {
	Income     money.Amount    `json:"income"`
	Expenses   money.Amount    `json:"expenses"`
	Net        money.Amount    `json:"net"`
	ByCategory []CategoryTotal `json:"byCategory"`
}

// SummarizeMonth totals income and expenses. ByCategory holds expenses
// only, largest first, ties ordered by category.
func SummarizeMonth(txs []*model.Transaction) (MonthSummary, error) {
	var summary MonthSummary
	var err error

	for _, tx := range txs {
		if tx.IsExpense() {
			summary.Expenses, err = summary.Expenses.Add(tx.Amount)
		} else {
			summary.Income, err = summary.Income.Add(tx.Amount)
		}
		if err != nil {
			return MonthSummary{}, err
		}
	}
	summary.Net = summary.Income - summary.Expenses

	spent, err := expensesByCategory(txs)
	if err != nil {
		return MonthSummary{}, err
	}

	summary.ByCategory = make([]CategoryTotal, 0, len(spent))
	for category, total := range spent {
		summary.ByCategory = append(summary.ByCategory, CategoryTotal{
			Category: category,
			Label:    category.Label(),
			Total:    total,
		})
	}
	slices.SortFunc(summary.ByCategory, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return summary, nil
}

func expensesByCategory(txs []*model.Transaction) (map[model.Category]money.Amount, error) {
	spent := map[model.Category]money.Amount{}
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		total, err := spent[tx.Category].Add(tx.Amount)
		if err != nil {
			return nil, err
		}
		spent[tx.Category] = total
	}
	return spent, nil
}

type BudgetLine struct {
	Category   model.Category `json:"category"`
	Label      string         `json:"label"`
	Limit      money.Amount   `json:"limit"`
	Spent      money.Amount   `json:"spent"`
	Remaining  money.Amount   `json:"remaining"`
	OverBudget bool           `json:"overBudget"`
}

// BudgetReport compares each budget with the expenses in its category.
// Remaining is negative when the budget is exceeded. Lines follow the
// order of budgets.
func BudgetReport(budgets []*model.Budget, txs []*model.Transaction) ([]BudgetLine, error) {
	spent, err := expensesByCategory(txs)
	if err != nil {
		return nil, err
	}

	lines := make([]BudgetLine, 0, len(budgets))
	for _, b := range budgets {
		s := spent[b.Category]
		lines = append(lines, BudgetLine{
			Category:   b.Category,
			Label:      b.Category.Label(),
			Limit:      b.Limit,
			Spent:      s,
			Remaining:  b.Limit - s,
			OverBudget: s > b.Limit,
		})
	}
	return lines, nil
}

type MonthTotals struct {
	Month    string       `json:"month"`
	Income   money.Amount `json:"income"`
	Expenses money.Amount `json:"expenses"`
}

// MonthlyTrend buckets transactions by UTC calendar month, oldest first.
// Months without transactions are omitted.
func MonthlyTrend(txs []*model.Transaction) ([]MonthTotals, error) {
	byMonth := map[string]*MonthTotals{}
	for _, tx := range txs {
		key := model.MonthOf(tx.OccurredOn).String()
		totals, ok := byMonth[key]
		if !ok {
			totals = &MonthTotals{Month: key}
			byMonth[key] = totals
		}
		var err error
		if tx.IsExpense() {
			totals.Expenses, err = totals.Expenses.Add(tx.Amount)
		} else {
			totals.Income, err = totals.Income.Add(tx.Amount)
		}
		if err != nil {
			return nil, err
		}
	}

	trend := make([]MonthTotals, 0, len(byMonth))
	for _, totals := range byMonth {
		trend = append(trend, *totals)
	}
	slices.SortFunc(trend, func(a, b MonthTotals) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return trend, nil
}

type GoalsOverview struct {
	Active      int          `json:"active"`
	Completed   int          `json:"completed"`
	TotalSaved  money.Amount `json:"totalSaved"`
	TotalTarget money.Amount `json:"totalTarget"`
}

// SummarizeGoals fails with money.ErrAmountTooLarge when a total does not
// fit in an Amount.
func SummarizeGoals(goals []*model.Goal) (GoalsOverview, error) {
	var overview GoalsOverview
	saved := make([]money.Amount, 0, len(goals))
	targets := make([]money.Amount, 0, len(goals))
	for _, g := range goals {
		if g.IsCompleted() {
			overview.Completed++
		} else {
			overview.Active++
		}
		saved = append(saved, g.CurrentAmount)
		targets = append(targets, g.TargetAmount)
	}

	var err error
	overview.TotalSaved, err = money.Sum(saved...)
	if err != nil {
		return GoalsOverview{}, err
	}
	overview.TotalTarget, err = money.Sum(targets...)
	if err != nil {
		return GoalsOverview{}, err
	}
	return overview, nil
}
