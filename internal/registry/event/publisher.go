package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Type identifies a stock lifecycle event.
type Type string

const (
	StockCreated     Type = "stock.created"
	StockUpdated     Type = "stock.updated"
	StockTransferred Type = "stock.transferred"
	StockDeleted     Type = "stock.deleted"
)

// StockEvent is published after a stock change has been committed.
type StockEvent struct {
	Type             Type      `json:"type"`
	StockID          uint      `json:"stock_id"`
	Name             string    `json:"name"`
	BearerID         uint      `json:"bearer_id"`
	PreviousBearerID uint      `json:"previous_bearer_id,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Publisher delivers stock events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt StockEvent) error
}

// NewRedisPublisher creates a Publisher appending events to a Redis stream.
func NewRedisPublisher(client *redis.Client, stream string, maxLen int64) Publisher {
	return &redisPublisher{client: client, stream: stream, maxLen: maxLen}
}

type redisPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// Publish appends evt to the stream as a JSON payload.
func (p *redisPublisher) Publish(ctx context.Context, evt StockEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal stock event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"type":    string(evt.Type),
			"payload": payload,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Type, err)
	}
	return nil
}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, StockEvent) error { return nil }
