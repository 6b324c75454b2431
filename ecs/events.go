package ecs

import "github.com/go-gl/mathgl/mgl64"

// EventType identifies an event payload.
type EventType string

const (
	// EventShotFired carries a ShotFired payload.
	EventShotFired EventType = "shot_fired"
	// EventCharacterSpawned carries the new character Entity.
	EventCharacterSpawned EventType = "character_spawned"
)

// ShotFired is raised for every shot that found a muzzle socket.
type ShotFired struct {
	Entity   Entity
	Muzzle   mgl64.Vec3
	End      mgl64.Vec3
	Resolved bool
}

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a FIFO of events raised during a frame. The world clears it
// at the end of every Update.
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

// Of returns the queued events of one type without consuming them.
func (q *EventQueue) Of(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
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
