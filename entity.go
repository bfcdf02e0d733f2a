package depot

import "slices"

// EntityID identifies a live entity. Ids of removed entities are handed out
// again by later CreateEntity calls.
type EntityID uint32

// Entity is a copyable snapshot of an entity: its id and the membership mask at
// the time the value was obtained. The manager never trusts the Mask of an
// Entity it is given and always re-reads the live one.
type Entity struct {
	ID   EntityID
	Mask Mask
}

type entityRegistry struct {
	nextID EntityID
	free   []EntityID
	live   []Entity
	index  map[EntityID]int
}

func newEntityRegistry(capacity int) entityRegistry {
	return entityRegistry{
		live:  make([]Entity, 0, capacity),
		index: make(map[EntityID]int, capacity),
	}
}

// create takes the oldest recycled id, or the next never-used one
func (r *entityRegistry) create() Entity {
	var id EntityID
	if len(r.free) > 0 {
		id = r.free[0]
		r.free = r.free[1:]
	} else {
		id = r.nextID
		r.nextID++
	}
	en := Entity{ID: id}
	r.index[id] = len(r.live)
	r.live = append(r.live, en)
	return en
}

// lookup returns the authoritative entity, or nil when id is not live.
// The pointer is invalidated by create and remove.
func (r *entityRegistry) lookup(id EntityID) *Entity {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return &r.live[i]
}

// remove drops id from the live set, keeping the order of the remaining
// entities, and queues the id for reuse.
func (r *entityRegistry) remove(id EntityID) (Entity, bool) {
	i, ok := r.index[id]
	if !ok {
		return Entity{}, false
	}
	removed := r.live[i]
	r.live = slices.Delete(r.live, i, i+1)
	delete(r.index, id)
	for j := i; j < len(r.live); j++ {
		r.index[r.live[j].ID] = j
	}
	r.free = append(r.free, id)
	return removed, true
}

func (r *entityRegistry) len() int {
	return len(r.live)
}

func (r *entityRegistry) snapshot() []Entity {
	return slices.Clone(r.live)
}
