package ecs

import "github.com/milk9111/shooter/ecs/component"

// World owns entities, component stores and the system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]store
	scheduler Scheduler
	events    EventQueue

	deltaSeconds float64
	frame        uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update runs every system once, then drops the events raised this frame.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
	w.frame++
}

// SetDeltaSeconds sets the frame time seen by systems during the next Update.
func (w *World) SetDeltaSeconds(dt float64) {
	if w == nil {
		return
	}
	w.deltaSeconds = dt
}

// DeltaSeconds is the duration of the current frame.
func (w *World) DeltaSeconds() float64 {
	if w == nil {
		return 0
	}
	return w.deltaSeconds
}

// Frame counts completed updates.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}
