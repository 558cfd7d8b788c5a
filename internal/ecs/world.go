package ecs

import "slices"

// World stores entities and their components for one level.
// Deletions are deferred: Delete marks an entity and Maintain removes it,
// so systems can delete while iterating a Query result.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	pending    []EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// Spawn creates an entity carrying the given components.
func (w *World) Spawn(comps ...Component) EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	for _, c := range comps {
		w.Add(id, c)
	}
	return id
}

// Delete schedules id for removal at the next Maintain.
func (w *World) Delete(id EntityID) {
	if w.alive[id] && !slices.Contains(w.pending, id) {
		w.pending = append(w.pending, id)
	}
}

// Maintain removes every entity passed to Delete since the last call and
// returns how many were removed.
func (w *World) Maintain() int {
	n := len(w.pending)
	for _, id := range w.pending {
		delete(w.alive, id)
		for _, store := range w.components {
			delete(store, id)
		}
	}
	w.pending = w.pending[:0]
	return n
}

// Alive reports whether the entity exists and has not been maintained away.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches or replaces a component on a live entity.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.components[t][id]
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.components[t][id]
	return ok
}

// Query returns, in ascending ID order, the live entities that have every
// listed component type.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
	for id := range w.components[types[0]] {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types[1:] {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
