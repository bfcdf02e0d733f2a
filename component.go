package depot

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

// Component identifies a component type. Values are built once per type with
// FactoryNewComponent and used as the type's tag at every later call site.
type Component interface {
	table.ElementType
	componentKey() any
	componentName() string
	newStore() store
}

type componentKey[T any] struct{}

var _ Component = ComponentType[struct{}]{}

// ComponentType is the typed tag for components of type T. It is not bound to a
// manager; the same tag may be registered with any number of managers.
type ComponentType[T any] struct {
	table.ElementType
	name string
}

func (c ComponentType[T]) componentKey() any {
	return componentKey[T]{}
}

func (c ComponentType[T]) componentName() string {
	return c.name
}

func (c ComponentType[T]) newStore() store {
	return newComponentStore[T]()
}

// Add stores value for entity, overwriting a value already present, and
// broadcasts ComponentAdded[T]
func (c ComponentType[T]) Add(m *Manager, entity Entity, value T) error {
	reg, err := m.registration(c)
	if err != nil {
		return err
	}
	live := m.entities.lookup(entity.ID)
	if live == nil {
		return EntityNotFoundError{ID: entity.ID}
	}
	sto := reg.store.(*componentStore[T])
	if sto.set(entity.ID, value) {
		reg.candidates = append(reg.candidates, entity.ID)
	}
	live.Mask.Set(reg.index)
	Broadcast(m.events, &ComponentAdded[T]{Entity: *live, Component: value})
	return nil
}

// Remove detaches T from entity and broadcasts ComponentRemoved[T] with the
// removed value. Removing a component the entity does not hold is a no-op.
func (c ComponentType[T]) Remove(m *Manager, entity Entity) error {
	reg, err := m.registration(c)
	if err != nil {
		return err
	}
	live := m.entities.lookup(entity.ID)
	if live == nil {
		return EntityNotFoundError{ID: entity.ID}
	}
	if !live.Mask.Contains(reg.index) {
		return nil
	}
	live.Mask.Clear(reg.index)
	reg.dropCandidate(entity.ID)
	removed, _ := reg.store.(*componentStore[T]).take(entity.ID)
	Broadcast(m.events, &ComponentRemoved[T]{Entity: *live, Component: removed})
	return nil
}

// Get returns a pointer into the store, or nil when the entity is not live or
// does not hold T. The pointer stays valid until the store for T next changes
// shape.
func (c ComponentType[T]) Get(m *Manager, entity Entity) (*T, error) {
	reg, err := m.registration(c)
	if err != nil {
		return nil, err
	}
	live := m.entities.lookup(entity.ID)
	if live == nil || !live.Mask.Contains(reg.index) {
		return nil, nil
	}
	return reg.store.(*componentStore[T]).get(entity.ID), nil
}

// Has reports whether Get would return a value. Unregistered types yield false.
func (c ComponentType[T]) Has(m *Manager, entity Entity) bool {
	value, err := c.Get(m, entity)
	return err == nil && value != nil
}

// EnqueueAdd adds the component now, or once the manager is unlocked
func (c ComponentType[T]) EnqueueAdd(m *Manager, entity Entity, value T) error {
	if !m.Locked() {
		return c.Add(m, entity, value)
	}
	m.opQueue.enqueueComponentOp(opAddComponent, entity, func() error {
		return c.Add(m, entity, value)
	})
	return nil
}

// EnqueueRemove removes the component now, or once the manager is unlocked
func (c ComponentType[T]) EnqueueRemove(m *Manager, entity Entity) error {
	if !m.Locked() {
		return c.Remove(m, entity)
	}
	m.opQueue.enqueueComponentOp(opRemoveComponent, entity, func() error {
		return c.Remove(m, entity)
	})
	return nil
}

func (c ComponentType[T]) String() string {
	return c.name
}

func componentTypeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
