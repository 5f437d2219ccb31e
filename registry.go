package vroom

import (
	"math/rand/v2"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 9
)

// Registry stores live entities keyed by id and remembers registration order,
// which the layer index preserves within each layer.
//
// Registry is not safe for concurrent use; it is owned by the loop.
type Registry struct {
	entities  map[ID]*Entity
	order     []ID
	maxLayers int

	// newID generates candidate ids. Replaced in tests to force collisions.
	newID func() ID
	// onChange is notified after a registration or deletion.
	onChange func(EventType, ID)
}

// NewRegistry creates an empty registry for entities in layers [1, maxLayers].
// A maxLayers below 1 uses DefaultMaxLayers.
func NewRegistry(maxLayers int) *Registry {
	if maxLayers < 1 {
		maxLayers = DefaultMaxLayers
	}
	return &Registry{
		entities:  make(map[ID]*Entity),
		maxLayers: maxLayers,
		newID:     randomID,
	}
}

// randomID returns "_" followed by nine random base-36 characters.
func randomID() ID {
	var b [idLength + 1]byte
	b[0] = '_'
	for i := 1; i < len(b); i++ {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return ID(b[:])
}

// generateID draws candidates until one is not held by a live entity.
func (r *Registry) generateID() ID {
	for {
		id := r.newID()
		if _, taken := r.entities[id]; !taken {
			return id
		}
	}
}

// MaxLayers returns the highest valid layer number.
func (r *Registry) MaxLayers() int {
	return r.maxLayers
}

// clampLayer maps out-of-range layers to 1.
func (r *Registry) clampLayer(layer int) int {
	if layer < 1 || layer > r.maxLayers {
		return 1
	}
	return layer
}

// Register assigns a fresh id to e, runs e.OnInit, normalizes the layer and
// stores the entity. A nil e registers an empty entity. Register never fails.
func (r *Registry) Register(e *Entity) ID {
	if e == nil {
		e = &Entity{}
	}
	id := r.generateID()
	e.ID = id

	// Init sees its own id through the argument only; the entity is not
	// reachable through the registry yet.
	if e.OnInit != nil {
		e.OnInit(e)
	}
	e.Layer = r.clampLayer(e.Layer)

	r.entities[id] = e
	r.order = append(r.order, id)
	if r.onChange != nil {
		r.onChange(EventRegistered, id)
	}
	return id
}

// Entity returns the live entity with the given id. The boolean is false for
// unknown or deleted ids; callers are expected to check it.
func (r *Registry) Entity(id ID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Delete removes the entity and frees its id. Deleting a missing id is a no-op.
func (r *Registry) Delete(id ID) {
	if _, ok := r.entities[id]; !ok {
		return
	}
	delete(r.entities, id)
	for i, oid := range r.order {
		if oid == id {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = ""
			r.order = r.order[:len(r.order)-1]
			break
		}
	}
	if r.onChange != nil {
		r.onChange(EventDeleted, id)
	}
}

// Replace overwrites the record stored under id with e, keeping the id and
// the registration slot. OnInit is not run again. Returns false (and stores
// nothing) if id is not live.
func (r *Registry) Replace(id ID, e *Entity) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	if e == nil {
		e = &Entity{}
	}
	e.ID = id
	e.Layer = r.clampLayer(e.Layer)
	r.entities[id] = e
	return true
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Each calls fn for every live entity in registration order. fn must not
// register or delete entities.
func (r *Registry) Each(fn func(e *Entity)) {
	for _, id := range r.order {
		if e, ok := r.entities[id]; ok {
			fn(e)
		}
	}
}
