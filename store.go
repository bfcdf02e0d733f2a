package depot

import "slices"

// store is the type-erased view of a componentStore the manager needs for
// cross-type cleanup
type store interface {
	has(EntityID) bool
	remove(EntityID) bool
	len() int
}

var _ store = &componentStore[struct{}]{}

// componentStore is a sparse set from entity id to component value. Values are
// kept densely; pointers handed out by get are invalidated when the dense
// slice grows or an entry is removed.
type componentStore[T any] struct {
	owners []EntityID
	values []T
	sparse []int32 // dense index + 1, zero when absent
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{}
}

func (s *componentStore[T]) has(id EntityID) bool {
	return int(id) < len(s.sparse) && s.sparse[id] != 0
}

func (s *componentStore[T]) get(id EntityID) *T {
	if !s.has(id) {
		return nil
	}
	return &s.values[s.sparse[id]-1]
}

// set stores value for id, reporting whether id was newly inserted
func (s *componentStore[T]) set(id EntityID, value T) bool {
	if s.has(id) {
		s.values[s.sparse[id]-1] = value
		return false
	}
	if int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, make([]int32, int(id)+1-len(s.sparse))...)
	}
	s.owners = append(s.owners, id)
	s.values = append(s.values, value)
	s.sparse[id] = int32(len(s.values))
	return true
}

// take removes and returns the value stored for id
func (s *componentStore[T]) take(id EntityID) (T, bool) {
	var zero T
	if !s.has(id) {
		return zero, false
	}
	idx := s.sparse[id] - 1
	value := s.values[idx]
	last := int32(len(s.values) - 1)
	if idx != last {
		moved := s.owners[last]
		s.owners[idx] = moved
		s.values[idx] = s.values[last]
		s.sparse[moved] = idx + 1
	}
	s.values[last] = zero
	s.owners = s.owners[:last]
	s.values = s.values[:last]
	s.sparse[id] = 0
	return value, true
}

func (s *componentStore[T]) remove(id EntityID) bool {
	_, ok := s.take(id)
	return ok
}

func (s *componentStore[T]) len() int {
	return len(s.values)
}

// registration is everything the manager keeps for one registered component type
type registration struct {
	component Component
	index     uint32
	store     store

	// ids of entities holding this type, in the order they received it
	candidates []EntityID
}

func (r *registration) bit() uint32 {
	return 1 << r.index
}

func (r *registration) dropCandidate(id EntityID) {
	if i := slices.Index(r.candidates, id); i >= 0 {
		r.candidates = slices.Delete(r.candidates, i, i+1)
	}
}
