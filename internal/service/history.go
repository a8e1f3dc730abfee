package service

import (
	"context"
	"slices"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

// History returns the goal's contributions newest first, each carrying the
// cumulative total up to that point in chronological order.
func (s *ContributionService) History(ctx context.Context, goalID, requesterID string) ([]model.HistoryEntry, error) {
	goal, err := ownedGoal(ctx, s.repos.Goals, goalID, requesterID)
	if err != nil {
		return nil, err
	}

	contributions, err := s.repos.Contributions.ByGoal(ctx, goal.ID)
	if err != nil {
		return nil, storageError("load contributions", err)
	}

	return Project(contributions), nil
}

// Project orders contributions by date ascending (insertion order breaks
// ties), attaches running totals and returns the result newest first.
// The input slice is not modified.
func Project(contributions []*model.Contribution) []model.HistoryEntry {
	ordered := slices.Clone(contributions)
	slices.SortStableFunc(ordered, func(a, b *model.Contribution) int {
		return a.ContributionDate.Compare(b.ContributionDate)
	})

	entries := make([]model.HistoryEntry, len(ordered))
	var total money.Amount
	for i, c := range ordered {
		total += c.Amount
		entries[i] = model.HistoryEntry{Contribution: *c, RunningTotal: total}
	}

	slices.Reverse(entries)
	return entries
}
