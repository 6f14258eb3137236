package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	pub := NewRedisPublisher(client, "registry.stock.events", 100)
	err := pub.Publish(context.Background(), StockEvent{Type: StockCreated, StockID: 1, Name: "ACME", BearerID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish stock.created event")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NewNopPublisher().Publish(context.Background(), StockEvent{Type: StockDeleted}))
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	ctx := context.Background()

	require.NoError(t, rec.Publish(ctx, StockEvent{Type: StockCreated, StockID: 1}))
	require.NoError(t, rec.Publish(ctx, StockEvent{Type: StockTransferred, StockID: 1, PreviousBearerID: 2}))
	assert.Equal(t, []Type{StockCreated, StockTransferred}, rec.Types())

	rec.Err = errors.New("stream unavailable")
	require.Error(t, rec.Publish(ctx, StockEvent{Type: StockDeleted}))
	assert.Len(t, rec.Events(), 2)
}
