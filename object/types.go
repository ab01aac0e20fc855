package object

// EventType identifies an object lifecycle event.
type EventType uint8

const (
	EventAllocated EventType = iota
	EventAttached
	EventRetained
	EventReleased
	EventDetached
	EventFreed
)

// Event describes an object lifecycle transition.
type Event struct {
	Payload any
	ID      ID
	Class   string
	Type    EventType
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnObjectEvent(Event)
}

// Dropper is optionally implemented by script payloads that need cleanup
// when their object is torn down.
type Dropper interface {
	Drop()
}
