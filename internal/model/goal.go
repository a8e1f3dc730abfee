package model

import (
	"errors"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/shopspring/decimal"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// Goal is a savings target. CurrentAmount only ever changes through
// ApplyContribution, paired with a ledger append in the same transaction.
type Goal struct {
	ID                string       `db:"id"`
	UserID            string       `db:"user_id"`
	Name              string       `db:"name"`
	Category          Category     `db:"category"`
	TargetAmount      money.Amount `db:"target_amount"`
	CurrentAmount     money.Amount `db:"current_amount"`
	TargetDate        time.Time    `db:"target_date"`
	Status            string       `db:"status"`
	CompletedAt       *time.Time   `db:"completed_at"`
	ContributionCount int          `db:"contribution_count"`
	Version           int64        `db:"version"`
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at"`
}

func (g *Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// OwnedBy reports whether userID controls the goal.
func (g *Goal) OwnedBy(userID string) bool {
	return userID != "" && g.UserID == userID
}

// ApplyContribution adds amount to the running balance and performs the
// one-way active -> completed transition the first time the target is
// reached. The completion check uses the balance before the addition, so a
// goal that was already at or past its target never reports completion
// again.
func (g *Goal) ApplyContribution(amount money.Amount) (money.Amount, bool, error) {
	if !amount.IsPositive() {
		return g.CurrentAmount, false, ErrNonPositiveAmount
	}

	wasCompleted := g.CurrentAmount >= g.TargetAmount
	next, err := g.CurrentAmount.Add(amount)
	if err != nil {
		return g.CurrentAmount, false, err
	}
	g.CurrentAmount = next

	isCompleted := g.CurrentAmount >= g.TargetAmount
	becameCompleted := isCompleted && !wasCompleted
	if becameCompleted {
		g.Status = GoalStatusCompleted
	}

	return g.CurrentAmount, becameCompleted, nil
}

// Remaining is the amount still needed, never negative.
func (g *Goal) Remaining() money.Amount {
	if g.CurrentAmount >= g.TargetAmount {
		return money.Zero
	}
	return g.TargetAmount - g.CurrentAmount
}

var hundred = decimal.NewFromInt(100)

// ProgressPercent is the saved share of the target, capped at 100.
func (g *Goal) ProgressPercent() int {
	if g.TargetAmount <= 0 {
		return 0
	}
	if g.CurrentAmount >= g.TargetAmount {
		return 100
	}
	percent, _ := g.CurrentAmount.Decimal().Mul(hundred).QuoRem(g.TargetAmount.Decimal(), 0)
	return int(percent.IntPart())
}
