package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// InteractionEventKind identifies what happened between a player and an
// interactable.
type InteractionEventKind string

const (
	InteractionEngaged  InteractionEventKind = "engaged"
	InteractionReleased InteractionEventKind = "released"
	InteractionRejected InteractionEventKind = "rejected"
	InteractionStale    InteractionEventKind = "stale"
)

// InteractionEventType is the Event.Type used for InteractionEvent payloads.
const InteractionEventType = "interaction"

// InteractionEvent is emitted by the interaction manager.
type InteractionEvent struct {
	Kind   InteractionEventKind
	Player Entity
	Target Entity
	Name   string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
