package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// LogPublisher writes events to the structured log instead of a broker.
// It is used when no AMQP_URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	p.logger.InfoContext(ctx, "event published (log mode)", "routing_key", routingKey, "body", string(body))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
