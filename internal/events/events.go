// Package events publishes domain events after ledger writes commit.
package events

import (
	"context"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

// Routing keys on the topic exchange.
const (
	ContributionRecorded = "contribution.recorded"
	GoalCompleted        = "goal.completed"
)

// Publisher delivers a JSON-encodable payload under a routing key.
// Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type ContributionRecordedEvent struct {
	ContributionID   string       `json:"contributionId"`
	GoalID           string       `json:"goalId"`
	UserID           string       `json:"userId"`
	Amount           money.Amount `json:"amount"`
	CurrentAmount    money.Amount `json:"currentAmount"`
	ContributionDate time.Time    `json:"contributionDate"`
}

type GoalCompletedEvent struct {
	GoalID       string       `json:"goalId"`
	UserID       string       `json:"userId"`
	Name         string       `json:"name"`
	TargetAmount money.Amount `json:"targetAmount"`
	FinalAmount  money.Amount `json:"finalAmount"`
	CompletedAt  time.Time    `json:"completedAt"`
}
