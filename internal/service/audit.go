package service

import (
	"context"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
)

// LedgerMismatch describes a goal whose stored state disagrees with its
// ledger.
type LedgerMismatch struct {
	GoalID        string
	Name          string
	CurrentAmount money.Amount
	LedgerSum     money.Amount
	StoredCount   int
	LedgerCount   int
	Status        string
	Reason        string
}

// LedgerAuditor cross-checks every goal against its contribution ledger.
type LedgerAuditor struct {
	goals         repository.GoalRepository
	contributions repository.ContributionRepository
}

func NewLedgerAuditor(goals repository.GoalRepository, contributions repository.ContributionRepository) *LedgerAuditor {
	return &LedgerAuditor{goals: goals, contributions: contributions}
}

// Audit returns one entry per inconsistent goal; an empty result means the
// ledger and goal balances agree everywhere.
func (a *LedgerAuditor) Audit(ctx context.Context) ([]LedgerMismatch, error) {
	goals, err := a.goals.All(ctx)
	if err != nil {
		return nil, storageError("list goals", err)
	}

	totals, err := a.contributions.Totals(ctx)
	if err != nil {
		return nil, storageError("sum contributions", err)
	}

	var mismatches []LedgerMismatch
	for _, goal := range goals {
		total := totals[goal.ID]
		reason := auditGoal(goal, total)
		if reason == "" {
			continue
		}
		mismatches = append(mismatches, LedgerMismatch{
			GoalID:        goal.ID,
			Name:          goal.Name,
			CurrentAmount: goal.CurrentAmount,
			LedgerSum:     total.Sum,
			StoredCount:   goal.ContributionCount,
			LedgerCount:   total.Count,
			Status:        goal.Status,
			Reason:        reason,
		})
	}

	return mismatches, nil
}

func auditGoal(goal *model.Goal, total repository.LedgerTotal) string {
	reached := goal.CurrentAmount >= goal.TargetAmount
	switch {
	case goal.CurrentAmount != total.Sum:
		return "current amount differs from ledger sum"
	case goal.ContributionCount != total.Count:
		return "contribution count differs from ledger rows"
	case reached && !goal.IsCompleted():
		return "target reached but goal is not completed"
	case !reached && goal.IsCompleted():
		return "goal completed below target"
	case goal.IsCompleted() && goal.CompletedAt == nil:
		return "completed goal has no completion time"
	default:
		return ""
	}
}
