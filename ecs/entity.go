package ecs

import "fmt"

// Entity is a generational handle: the slot id sits in the low 32 bits and
// the slot's generation in the high 32 bits. Destroying an entity bumps its
// slot generation, so old handles stop resolving once the slot is reused.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	entityIDBits = 32
	entityIDMask = 1<<entityIDBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint64(e) & entityIDMask) }

func (e Entity) generation() generation { return generation(uint64(e) >> entityIDBits) }

// String renders the handle as id#generation, e.g. 3#1.
func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

// Valid reports whether e was ever issued. Slot 0 is reserved so the zero
// Entity means "none".
func (e Entity) Valid() bool { return e.id() != 0 }
