package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/SyedqaderEng/financeOS-sub001/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrNonPositiveTarget = errors.New("target amount must be greater than zero")
	ErrInvalidGoalSort   = errors.New("sort must be recent, progress or name")
)

type CreateGoalInput struct {
	Name         string
	Category     string
	TargetAmount money.Amount
	TargetDate   string
}

// UpdateGoalInput changes goal metadata. Nil fields are left unchanged.
// The target amount is fixed at creation.
type UpdateGoalInput struct {
	Name       *string
	Category   *string
	TargetDate *string
}

// GoalExport is one goal together with its projected history.
type GoalExport struct {
	Goal    *model.Goal
	History []model.HistoryEntry
}

type GoalService struct {
	goals         repository.GoalRepository
	contributions repository.ContributionRepository
	now           func() time.Time
}

func NewGoalService(goals repository.GoalRepository, contributions repository.ContributionRepository) *GoalService {
	return &GoalService{
		goals:         goals,
		contributions: contributions,
		now:           time.Now,
	}
}

func (s *GoalService) Create(ctx context.Context, userID string, in CreateGoalInput) (*model.Goal, error) {
	err := validation.ValidateGoalName(in.Name)
	if err != nil {
		return nil, invalidArgument(err)
	}

	category, err := model.ParseCategory(in.Category)
	if err != nil {
		return nil, invalidArgument(err)
	}

	if !in.TargetAmount.IsPositive() {
		return nil, invalidArgument(ErrNonPositiveTarget)
	}

	now := s.now().UTC()
	targetDate, err := validation.ParseFutureDate(in.TargetDate, now)
	if err != nil {
		return nil, invalidArgument(err)
	}

	goal := &model.Goal{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Category:     category,
		TargetAmount: in.TargetAmount,
		TargetDate:   targetDate,
		Status:       model.GoalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.goals.Create(ctx, goal)
	if err != nil {
		return nil, storageError("create goal", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(ctx context.Context, userID, sortBy string) ([]*model.Goal, error) {
	switch sortBy {
	case "", repository.GoalSortRecent, repository.GoalSortProgress, repository.GoalSortName:
	default:
		return nil, invalidArgument(ErrInvalidGoalSort)
	}

	goals, err := s.goals.Goals(ctx, userID, sortBy)
	if err != nil {
		return nil, storageError("list goals", err)
	}
	return goals, nil
}

func (s *GoalService) Goal(ctx context.Context, goalID, requesterID string) (*model.Goal, error) {
	return ownedGoal(ctx, s.goals, goalID, requesterID)
}

func (s *GoalService) Update(ctx context.Context, goalID, requesterID string, in UpdateGoalInput) (*model.Goal, error) {
	goal, err := ownedGoal(ctx, s.goals, goalID, requesterID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		err = validation.ValidateGoalName(*in.Name)
		if err != nil {
			return nil, invalidArgument(err)
		}
		goal.Name = strings.TrimSpace(*in.Name)
	}

	if in.Category != nil {
		goal.Category, err = model.ParseCategory(*in.Category)
		if err != nil {
			return nil, invalidArgument(err)
		}
	}

	if in.TargetDate != nil {
		goal.TargetDate, err = validation.ParseFutureDate(*in.TargetDate, s.now())
		if err != nil {
			return nil, invalidArgument(err)
		}
	}

	err = s.goals.UpdateDetails(ctx, goal)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, fmt.Errorf("%w: goal", ErrNotFound)
	}
	if err != nil {
		return nil, storageError("update goal", err)
	}

	return goal, nil
}

// Export returns every goal owned by userID with its contribution history.
func (s *GoalService) Export(ctx context.Context, userID string) ([]GoalExport, error) {
	goals, err := s.goals.Goals(ctx, userID, repository.GoalSortName)
	if err != nil {
		return nil, storageError("list goals", err)
	}

	exports := make([]GoalExport, 0, len(goals))
	for _, goal := range goals {
		contributions, err := s.contributions.ByGoal(ctx, goal.ID)
		if err != nil {
			return nil, storageError("load contributions", err)
		}
		exports = append(exports, GoalExport{Goal: goal, History: Project(contributions)})
	}

	return exports, nil
}
