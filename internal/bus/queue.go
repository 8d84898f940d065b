package bus

import "context"

// Queue carries inbound events from the transport to the router.
// Exactly one consumer drains it: each event is fully handled, including
// all outbound sends, before the next one is dequeued. That single-file
// processing is what keeps correlation-store updates race free.
type Queue struct {
	inbound chan *Event
}

// NewQueue creates a queue with a buffered inbound channel.
func NewQueue() *Queue {
	return &Queue{inbound: make(chan *Event, 64)}
}

// Publish enqueues an inbound event. Blocks when the buffer is full,
// applying backpressure to the transport rather than dropping events,
// and returns false when the context is cancelled before the event is
// accepted so a shutting-down transport never parks here forever.
func (q *Queue) Publish(ctx context.Context, ev *Event) bool {
	select {
	case <-ctx.Done():
		return false
	case q.inbound <- ev:
		return true
	}
}

// Next blocks until an event is available or the context is cancelled.
// Returns nil when the context is done.
func (q *Queue) Next(ctx context.Context) *Event {
	select {
	case <-ctx.Done():
		return nil
	case ev := <-q.inbound:
		return ev
	}
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.inbound)
}
