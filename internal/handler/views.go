package handler

import (
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
	"github.com/SyedqaderEng/financeOS-sub001/internal/validation"
)

type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *model.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

type GoalView struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Category          model.Category `json:"category"`
	CategoryLabel     string         `json:"categoryLabel"`
	TargetAmount      money.Amount   `json:"targetAmount"`
	CurrentAmount     money.Amount   `json:"currentAmount"`
	Remaining         money.Amount   `json:"remaining"`
	ProgressPercent   int            `json:"progressPercent"`
	TargetDate        string         `json:"targetDate"`
	Status            string         `json:"status"`
	CompletedAt       *time.Time     `json:"completedAt,omitempty"`
	ContributionCount int            `json:"contributionCount"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func newGoalView(g *model.Goal) GoalView {
	return GoalView{
		ID:                g.ID,
		Name:              g.Name,
		Category:          g.Category,
		CategoryLabel:     g.Category.Label(),
		TargetAmount:      g.TargetAmount,
		CurrentAmount:     g.CurrentAmount,
		Remaining:         g.Remaining(),
		ProgressPercent:   g.ProgressPercent(),
		TargetDate:        g.TargetDate.UTC().Format(validation.DateLayout),
		Status:            g.Status,
		CompletedAt:       g.CompletedAt,
		ContributionCount: g.ContributionCount,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func newGoalViews(goals []*model.Goal) []GoalView {
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, newGoalView(g))
	}
	return views
}

type HistoryEntryView struct {
	ID               string       `json:"id"`
	Amount           money.Amount `json:"amount"`
	ContributionDate time.Time    `json:"contributionDate"`
	Notes            string       `json:"notes,omitempty"`
	RunningTotal     money.Amount `json:"runningTotal"`
}

func newHistoryViews(entries []model.HistoryEntry) []HistoryEntryView {
	views := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, HistoryEntryView{
			ID:               e.ID,
			Amount:           e.Amount,
			ContributionDate: e.ContributionDate,
			Notes:            e.Notes,
			RunningTotal:     e.RunningTotal,
		})
	}
	return views
}

type ContributionResponse struct {
	Goal          GoalView `json:"goal"`
	GoalCompleted bool     `json:"goalCompleted"`
	Message       string   `json:"message"`
}

type GoalExportView struct {
	Goal    GoalView           `json:"goal"`
	History []HistoryEntryView `json:"history"`
}

func newGoalExportViews(exports []service.GoalExport) []GoalExportView {
	views := make([]GoalExportView, 0, len(exports))
	for _, e := range exports {
		views = append(views, GoalExportView{Goal: newGoalView(e.Goal), History: newHistoryViews(e.History)})
	}
	return views
}

type TransactionView struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	Amount        money.Amount   `json:"amount"`
	Category      model.Category `json:"category"`
	CategoryLabel string         `json:"categoryLabel"`
	Description   string         `json:"description,omitempty"`
	OccurredOn    string         `json:"occurredOn"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func newTransactionView(t *model.Transaction) TransactionView {
	return TransactionView{
		ID:            t.ID,
		Kind:          t.Kind,
		Amount:        t.Amount,
		Category:      t.Category,
		CategoryLabel: t.Category.Label(),
		Description:   t.Description,
		OccurredOn:    t.OccurredOn.UTC().Format(validation.DateLayout),
		CreatedAt:     t.CreatedAt,
	}
}

type BudgetView struct {
	ID            string         `json:"id"`
	Category      model.Category `json:"category"`
	CategoryLabel string         `json:"categoryLabel"`
	Month         string         `json:"month"`
	Limit         money.Amount   `json:"limit"`
}

func newBudgetView(b *model.Budget) BudgetView {
	return BudgetView{
		ID:            b.ID,
		Category:      b.Category,
		CategoryLabel: b.Category.Label(),
		Month:         b.Month,
		Limit:         b.Limit,
	}
}
