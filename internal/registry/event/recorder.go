package event

import (
	"context"
	"sync"
)

// Recorder is an in-memory Publisher that keeps every event.
type Recorder struct {
	mu     sync.Mutex
	events []StockEvent
	Err    error
}

// Publish records evt, or returns Err when set.
func (r *Recorder) Publish(_ context.Context, evt StockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, evt)
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []StockEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]StockEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in order.
func (r *Recorder) Types() []Type {
	events := r.Events()
	types := make([]Type, 0, len(events))
	for _, evt := range events {
		types = append(types, evt.Type)
	}
	return types
}
