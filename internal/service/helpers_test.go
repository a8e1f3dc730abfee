package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/db/dbtest"
	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db    *sqlx.DB
	store *repository.Store
	repos repository.Repos
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := dbtest.New(t)
	store := repository.NewStore(database)
	return &testEnv{db: database, store: store, repos: store.Repos()}
}

func (e *testEnv) user(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, e.repos.Users.Create(context.Background(), user))
	return user
}

func (e *testEnv) goal(t *testing.T, userID, name, target string) *model.Goal {
	t.Helper()
	now := time.Now().UTC()
	goal := &model.Goal{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Category:     "travel",
		TargetAmount: money.MustParse(target),
		TargetDate:   now.AddDate(1, 0, 0).Truncate(24 * time.Hour),
		Status:       model.GoalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.repos.Goals.Create(context.Background(), goal))
	return goal
}

func (e *testEnv) reload(t *testing.T, goalID string) *model.Goal {
	t.Helper()
	goal, err := e.repos.Goals.ByID(context.Background(), goalID)
	require.NoError(t, err)
	return goal
}

func (e *testEnv) ledger(t *testing.T, goalID string) []*model.Contribution {
	t.Helper()
	contributions, err := e.repos.Contributions.ByGoal(context.Background(), goalID)
	require.NoError(t, err)
	return contributions
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) routingKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.routingKey)
	}
	return keys
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
