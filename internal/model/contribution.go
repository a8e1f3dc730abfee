package model

import (
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

// Contribution is an immutable ledger row recording money added to a goal.
// Seq is the 1-based insertion position within the goal's ledger.
type Contribution struct {
	ID               string       `db:"id"`
	GoalID           string       `db:"goal_id"`
	Seq              int          `db:"seq"`
	Amount           money.Amount `db:"amount"`
	ContributionDate time.Time    `db:"contribution_date"`
	Notes            string       `db:"notes"`
	CreatedAt        time.Time    `db:"created_at"`
}

// HistoryEntry is a contribution annotated with the cumulative total of
// every contribution up to and including it in chronological order.
type HistoryEntry struct {
	Contribution
	RunningTotal money.Amount
}
