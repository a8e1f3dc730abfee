package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event := GoalCompletedEvent{
		GoalID:       "goal-1",
		UserID:       "user-1",
		Name:         "Vacation",
		TargetAmount: money.MustParse("1000"),
		FinalAmount:  money.MustParse("1050"),
		CompletedAt:  now,
	}

	msg, err := newPublishing(GoalCompleted, event, now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, GoalCompleted, msg.Type)
	assert.NotEmpty(t, msg.MessageId)
	assert.True(t, msg.Timestamp.Equal(now))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "goal-1", body["goalId"])
	assert.Equal(t, "1050.00", body["finalAmount"])
}

func TestNewPublishing_UnencodablePayload(t *testing.T) {
	_, err := newPublishing(ContributionRecorded, map[string]any{"bad": make(chan int)}, time.Now())
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := NewLogPublisher(logger)

	err := publisher.Publish(context.Background(), ContributionRecorded, ContributionRecordedEvent{
		ContributionID: "c-1",
		GoalID:         "goal-1",
		Amount:         money.MustParse("150"),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, ContributionRecorded, entry["routing_key"])
	assert.Contains(t, entry["body"], `"amount":"150.00"`)
}
