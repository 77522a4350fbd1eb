package events

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProgressStatus counts the events of one type: planned when seeded,
// processed when dispatched
type ProgressStatus struct {
	Planned   int
	Processed int
}

// Queue is an in-memory queue of events ordered by timestamp. Timestamps are
// unique: an event added at an occupied instant is pushed back one
// nanosecond at a time until it fits.
type Queue struct {
	events      []Event
	timestamps  map[int64]bool
	status      map[string]*ProgressStatus
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		events:      make([]Event, 0),
		timestamps:  make(map[int64]bool),
		status:      make(map[string]*ProgressStatus),
		subscribers: make(map[string][]EventHandler),
	}
}

// AddEvent inserts an event and returns the timestamp it was scheduled at
func (q *Queue) AddEvent(event Event) (time.Time, error) {
	if event == nil {
		return time.Time{}, fmt.Errorf("event cannot be nil")
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()

	at := event.Timestamp()
	for q.timestamps[at.UnixNano()] {
		at = at.Add(time.Nanosecond)
	}
	if !at.Equal(event.Timestamp()) {
		event = withTime(event, at)
	}
	q.timestamps[at.UnixNano()] = true

	i := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].Timestamp().After(at)
	})
	q.events = append(q.events, nil)
	copy(q.events[i+1:], q.events[i:])
	q.events[i] = event

	return at, nil
}

// PopEvent removes and returns the earliest event
func (q *Queue) PopEvent() (Event, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	event := q.events[0]
	q.events = q.events[1:]
	delete(q.timestamps, event.Timestamp().UnixNano())
	return event, true
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return len(q.events)
}

// Events returns the queued events in timestamp order
func (q *Queue) Events() []Event {
	q.mutex.RLock()
	defer q.mutex.RUnlock()

	result := make([]Event, len(q.events))
	copy(result, q.events)
	return result
}

// AddStatus sets the number of planned events of a type
func (q *Queue) AddStatus(eventType string, planned int) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	status := q.statusFor(eventType)
	status.Planned = planned
}

// UpdateStatus adds to the number of planned events of a type
func (q *Queue) UpdateStatus(eventType string, delta int) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	status := q.statusFor(eventType)
	status.Planned += delta
}

// Status returns the progress of an event type
func (q *Queue) Status(eventType string) ProgressStatus {
	q.mutex.RLock()
	defer q.mutex.RUnlock()

	if status, ok := q.status[eventType]; ok {
		return *status
	}
	return ProgressStatus{}
}

func (q *Queue) statusFor(eventType string) *ProgressStatus {
	status, ok := q.status[eventType]
	if !ok {
		status = &ProgressStatus{}
		q.status[eventType] = status
	}
	return status
}

// Subscribe registers a handler for event types
func (q *Queue) Subscribe(eventTypes []string, handler EventHandler) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	for _, eventType := range eventTypes {
		q.subscribers[eventType] = append(q.subscribers[eventType], handler)
	}
}

// Dispatch pops the events in timestamp order and hands each to the
// handlers of its type, until the queue is empty or a handler fails.
// It returns the number of events dispatched.
func (q *Queue) Dispatch(ctx context.Context) (int, error) {
	dispatched := 0
	for {
		if err := ctx.Err(); err != nil {
			return dispatched, err
		}

		event, ok := q.PopEvent()
		if !ok {
			return dispatched, nil
		}

		q.mutex.RLock()
		handlers := q.subscribers[event.Type()]
		q.mutex.RUnlock()

		for _, handler := range handlers {
			if !handler.CanHandle(event.Type()) {
				continue
			}
			if err := handler.Handle(event); err != nil {
				return dispatched, fmt.Errorf("failed to handle %s event %s: %w", event.Type(), event.ID(), err)
			}
		}

		q.mutex.Lock()
		q.statusFor(event.Type()).Processed++
		q.mutex.Unlock()
		dispatched++
	}
}
