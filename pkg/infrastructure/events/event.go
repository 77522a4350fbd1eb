package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	SnapshotEventType = "snapshot"
	RMEventType       = "rm"
)

type Event interface {
	ID() uuid.UUID
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
}

type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

type BaseEvent struct {
	EventID   uuid.UUID
	EventType string
	Stream    string
	EventData interface{}
	EventTime time.Time
}

func (e BaseEvent) ID() uuid.UUID {
	return e.EventID
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) StreamID() string {
	return e.Stream
}

func (e BaseEvent) Data() interface{} {
	return e.EventData
}

func (e BaseEvent) Timestamp() time.Time {
	return e.EventTime
}

// NewEvent creates an event scheduled at the given time. The stream is the
// airline the event is about.
func NewEvent(eventType, streamID string, data interface{}, at time.Time) Event {
	return BaseEvent{
		EventID:   uuid.New(),
		EventType: eventType,
		Stream:    streamID,
		EventData: data,
		EventTime: at,
	}
}

// withTime returns a copy of the event scheduled at another time
func withTime(e Event, at time.Time) Event {
	return BaseEvent{
		EventID:   e.ID(),
		EventType: e.Type(),
		Stream:    e.StreamID(),
		EventData: e.Data(),
		EventTime: at,
	}
}

// Snapshot asks for a picture of the inventories of an airline
type Snapshot struct {
	Airline string    `json:"airline"`
	Time    time.Time `json:"time"`
}

// OptimisationNotification asks revenue management to re-optimize a flight
// date at one of its data collection points
type OptimisationNotification struct {
	Airline       string    `json:"airline"`
	FlightDateKey string    `json:"flight_date_key"`
	DCP           int       `json:"dcp"`
	Time          time.Time `json:"time"`
}
