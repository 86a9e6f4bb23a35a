// Package component declares the data attached to entities. Each component
// type gets one package-level handle created with NewComponent; systems and
// builders reach storage through the handle's Kind.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a storage in the world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind ties a storage id to the Go type stored under it, so
// lookups are checked at compile time.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind issues a fresh id. Two kinds of the same type are
// distinct storages.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the exported, package-level name of a component kind.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
