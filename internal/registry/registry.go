// Package registry stores the simulation bodies of one game session.
// Bodies live in an index-based arena keyed by stable IDs and are always
// iterated in insertion order, which is the order collisions resolve in.
package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBody is returned when an ID is not in the registry.
	ErrUnknownBody = errors.New("registry: unknown body")

	// ErrStaticBody is returned when a wall or goal would change.
	ErrStaticBody = errors.New("registry: static body is immutable")
)

// Registry is a minimal store of simulation bodies.
// It is not safe for concurrent use; one game session owns it.
type Registry struct {
	bodies []Body
	index  map[ID]int
	nextID ID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		index:  make(map[ID]int),
		nextID: 1,
	}
}

// Insert adds a body and returns its assigned ID.
// Any ID already set on b is ignored.
func (r *Registry) Insert(b Body) ID {
	b.ID = r.nextID
	r.nextID++

	r.index[b.ID] = len(r.bodies)
	r.bodies = append(r.bodies, b)
	return b.ID
}

// Get returns the body with the given ID.
func (r *Registry) Get(id ID) (Body, bool) {
	i, ok := r.index[id]
	if !ok {
		return Body{}, false
	}
	return r.bodies[i], true
}

// Update replaces the stored position and velocity of a dynamic body.
// Role and extents are fixed at insertion.
func (r *Registry) Update(b Body) error {
	i, ok := r.index[b.ID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, b.ID)
	}
	stored := &r.bodies[i]
	if stored.Role.Static() {
		if b.Position != stored.Position || b.Velocity != stored.Velocity {
			return fmt.Errorf("%w: %s %d", ErrStaticBody, stored.Role, b.ID)
		}
		return nil
	}
	stored.Position = b.Position
	stored.Velocity = b.Velocity
	return nil
}

// ByRole returns all bodies of the given kind in registry order.
func (r *Registry) ByRole(k Kind) []Body {
	var result []Body
	for _, b := range r.bodies {
		if b.Role.Kind == k {
			result = append(result, b)
		}
	}
	return result
}

// Find returns the first body with exactly the given role.
func (r *Registry) Find(role Role) (Body, bool) {
	for _, b := range r.bodies {
		if b.Role.Kind != role.Kind {
			continue
		}
		if role.Kind == KindPaddle || role.Kind == KindGoal {
			if b.Role.Side != role.Side {
				continue
			}
		}
		return b, true
	}
	return Body{}, false
}

// Remove deletes a body. IDs are never reused.
// Returns false if the ID was not present.
func (r *Registry) Remove(id ID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.bodies = append(r.bodies[:i], r.bodies[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.bodies); j++ {
		r.index[r.bodies[j].ID] = j
	}
	return true
}

// All returns a copy of every body in registry order.
func (r *Registry) All() []Body {
	result := make([]Body, len(r.bodies))
	copy(result, r.bodies)
	return result
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	return len(r.bodies)
}
