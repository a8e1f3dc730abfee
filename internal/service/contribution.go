package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SyedqaderEng/financeOS-sub001/internal/events"
	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
)

const maxNotesLen = 500

var ErrNotesTooLong = errors.New("notes must not exceed 500 characters")

// ContributionResult is the outcome of a committed contribution.
type ContributionResult struct {
	Goal          *model.Goal
	Contribution  *model.Contribution
	GoalCompleted bool
	Message       string
}

type ContributionService struct {
	repos        repository.Repos
	store        repository.Transactor
	publisher    events.Publisher
	emailService *EmailService
	now          func() time.Time
}

func NewContributionService(
	repos repository.Repos,
	store repository.Transactor,
	publisher events.Publisher,
	emailService *EmailService,
) *ContributionService {
	return &ContributionService{
		repos:        repos,
		store:        store,
		publisher:    publisher,
		emailService: emailService,
		now:          time.Now,
	}
}

// Contribute records amount against the goal and advances its balance in
// one transaction. Either the ledger row and the new balance both persist,
// or neither does.
func (s *ContributionService) Contribute(ctx context.Context, goalID, requesterID string, amount money.Amount, notes string) (*ContributionResult, error) {
	if !amount.IsPositive() {
		return nil, invalidArgument(model.ErrNonPositiveAmount)
	}

	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > maxNotesLen {
		return nil, invalidArgument(ErrNotesTooLong)
	}

	_, err := ownedGoal(ctx, s.repos.Goals, goalID, requesterID)
	if err != nil {
		return nil, err
	}

	var result *ContributionResult
	err = s.store.InTx(ctx, func(r repository.Repos) error {
		goal, err := r.Goals.ByIDForUpdate(ctx, goalID)
		if err != nil {
			return err
		}

		expectedVersion := goal.Version
		_, completed, err := goal.ApplyContribution(amount)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		if completed {
			goal.CompletedAt = &now
		}
		goal.ContributionCount++

		contribution := &model.Contribution{
			GoalID:           goal.ID,
			Seq:              goal.ContributionCount,
			Amount:           amount,
			ContributionDate: now,
			Notes:            notes,
			CreatedAt:        now,
		}
		err = r.Contributions.Append(ctx, contribution)
		if err != nil {
			return err
		}

		err = r.Goals.SaveProgress(ctx, goal, expectedVersion)
		if err != nil {
			return err
		}

		result = &ContributionResult{
			Goal:          goal,
			Contribution:  contribution,
			GoalCompleted: completed,
			Message:       contributionMessage(amount, goal.Name, completed),
		}
		return nil
	})
	if err != nil {
		return nil, contributeError(err)
	}

	slog.Info("contribution recorded",
		"goal_id", goalID,
		"user_id", requesterID,
		"amount", amount.String(),
		"goal_completed", result.GoalCompleted,
	)

	s.afterCommit(context.WithoutCancel(ctx), requesterID, result)
	return result, nil
}

func contributionMessage(amount money.Amount, goalName string, completed bool) string {
	msg := fmt.Sprintf("Added %s to %s", amount, goalName)
	if completed {
		msg += ". Goal reached!"
	}
	return msg
}

func contributeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrGoalNotFound):
		return fmt.Errorf("%w: goal", ErrNotFound)
	case errors.Is(err, money.ErrAmountTooLarge), errors.Is(err, model.ErrNonPositiveAmount):
		return invalidArgument(err)
	default:
		return storageError("record contribution", err)
	}
}

// afterCommit emits notifications for a committed contribution. Failures
// are logged and never reach the caller.
func (s *ContributionService) afterCommit(ctx context.Context, userID string, result *ContributionResult) {
	goal := result.Goal
	contribution := result.Contribution

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.ContributionRecorded, events.ContributionRecordedEvent{
			ContributionID:   contribution.ID,
			GoalID:           goal.ID,
			UserID:           userID,
			Amount:           contribution.Amount,
			CurrentAmount:    goal.CurrentAmount,
			ContributionDate: contribution.ContributionDate,
		})
		if err != nil {
			slog.Warn("failed to publish event", "routing_key", events.ContributionRecorded, "goal_id", goal.ID, "error", err)
		}
	}

	if !result.GoalCompleted {
		return
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, events.GoalCompleted, events.GoalCompletedEvent{
			GoalID:       goal.ID,
			UserID:       userID,
			Name:         goal.Name,
			TargetAmount: goal.TargetAmount,
			FinalAmount:  goal.CurrentAmount,
			CompletedAt:  *goal.CompletedAt,
		})
		if err != nil {
			slog.Warn("failed to publish event", "routing_key", events.GoalCompleted, "goal_id", goal.ID, "error", err)
		}
	}

	if s.emailService == nil {
		return
	}

	user, err := s.repos.Users.ByID(ctx, userID)
	if err != nil {
		slog.Warn("failed to load user for goal completed email", "user_id", userID, "error", err)
		return
	}

	err = s.emailService.SendGoalCompletedEmail(ctx, user.Email, user.Name, goal)
	if err != nil {
		slog.Warn("failed to send goal completed email", "user_id", userID, "goal_id", goal.ID, "error", err)
	}
}

// ownedGoal loads a goal for requesterID. A missing goal is reported before
// an ownership mismatch.
func ownedGoal(ctx context.Context, goals repository.GoalRepository, goalID, requesterID string) (*model.Goal, error) {
	goal, err := goals.ByID(ctx, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, fmt.Errorf("%w: goal", ErrNotFound)
	}
	if err != nil {
		return nil, storageError("load goal", err)
	}

	if !goal.OwnedBy(requesterID) {
		return nil, ErrPermissionDenied
	}

	return goal, nil
}
