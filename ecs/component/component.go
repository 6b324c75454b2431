package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key used by the ecs accessors.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

// NewComponentKind issues a fresh id for T. Declaring the same T twice
// yields two unrelated stores.
func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind, which no store is registered under.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// Name is the Go type name of T, used in error messages.
func (k ComponentKind[T]) Name() string {
	if k.name == "" {
		return "unregistered"
	}
	return k.name
}

// ComponentHandle is what each component file declares at package level,
// e.g. var CharacterComponent = NewComponent[Character]().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
