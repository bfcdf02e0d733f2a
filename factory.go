package depot

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewManager(opts ...Option) *Manager {
	return newManager(opts...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, manager *Manager) *Cursor {
	return newCursor(query, manager)
}

// FactoryNewComponent builds the type tag for T
func FactoryNewComponent[T any]() ComponentType[T] {
	return ComponentType[T]{
		ElementType: table.FactoryNewElementType[T](),
		name:        componentTypeName[T](),
	}
}

func FactoryNewCache[K comparable, T any](cap int) Cache[K, T] {
	return &SimpleCache[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: cap,
	}
}

// RegisterComponentType builds the tag for T and registers it with m
func RegisterComponentType[T any](m *Manager) (ComponentType[T], error) {
	c := FactoryNewComponent[T]()
	if err := m.RegisterComponentType(c); err != nil {
		return ComponentType[T]{}, err
	}
	return c, nil
}
