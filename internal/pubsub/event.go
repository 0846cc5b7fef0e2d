package pubsub

type EventType string

const CreatedEvent EventType = "created"

// Event represents an event in the lifecycle of T.
type Event[T any] struct {
	Type    EventType
	Payload T
}
