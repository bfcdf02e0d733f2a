package depot

import "iter"

// Storage is the entity lifecycle surface of a Manager
type Storage interface {
	CreateEntity() Entity
	RemoveEntity(Entity) error
	EnqueueRemoveEntity(Entity) error
	Entity(id EntityID) (Entity, error)
	Alive(Entity) bool
	EntityCount() int
	RegisterComponentType(Component) error
	EntitiesWith(...Component) ([]Entity, error)
	Locked() bool
	Lock()
	Unlock() error
	AddLock(bit uint32) error
	RemoveLock(bit uint32) error
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(entity Entity, m *Manager) bool
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}

type Cache[K comparable, T any] interface {
	GetIndex(K) (int, bool)
	GetItem(int) *T
	Register(K, T) (int, error)
	Items() iter.Seq2[int, *T]
	Len() int
}

// Cursor iterates over a snapshot of the entities a query matched.
// The manager stays locked from the first Next until the cursor is exhausted
// or Reset.
type Cursor struct {
	query   QueryNode
	manager *Manager

	matched     []Entity
	entityIndex int

	initialized bool
	err         error
}

type SimpleCache[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
}
