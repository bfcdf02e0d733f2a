package depot

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

var _ Storage = &Manager{}

// Manager owns the entities, the registered component types with their stores,
// and the event bus announcing lifecycle changes. It is not safe for
// concurrent use.
type Manager struct {
	entities   entityRegistry
	components Cache[any, registration]
	events     *EventBus
	logger     zerolog.Logger

	locks       Mask
	cursorLocks int
	opQueue     opQueue
}

func newManager(opts ...Option) *Manager {
	o := Config.options()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		entities:   newEntityRegistry(o.entityCapacity),
		components: FactoryNewCache[any, registration](MaskWidth),
		events:     newEventBus(),
		logger:     o.logger,
		opQueue:    newOpQueue(),
	}
}

// Events returns the bus the manager broadcasts lifecycle events on
func (m *Manager) Events() *EventBus {
	return m.events
}

// Logger returns the logger the manager writes debug events to
func (m *Manager) Logger() *zerolog.Logger {
	return &m.logger
}

// RegisterComponentType assigns the next mask bit to c and creates its store.
// Registering an already registered type does nothing.
func (m *Manager) RegisterComponentType(c Component) error {
	if _, ok := m.components.GetIndex(c.componentKey()); ok {
		return nil
	}
	index, err := m.components.Register(c.componentKey(), registration{
		component: c,
		store:     c.newStore(),
	})
	if err != nil {
		return err
	}
	reg := m.components.GetItem(index)
	reg.index = uint32(index)
	m.logger.Debug().
		Str("component_name", c.componentName()).
		Uint32("component_bit", reg.bit()).
		Msg("component type registered")
	return nil
}

// Registered reports whether c was registered with this manager
func (m *Manager) Registered(c Component) bool {
	_, ok := m.components.GetIndex(c.componentKey())
	return ok
}

// Bit returns the mask bit assigned to c
func (m *Manager) Bit(c Component) (uint32, error) {
	reg, err := m.registration(c)
	if err != nil {
		return 0, err
	}
	return reg.bit(), nil
}

func (m *Manager) registration(c Component) (*registration, error) {
	index, ok := m.components.GetIndex(c.componentKey())
	if !ok {
		return nil, ComponentTypeNotRegisteredError{Name: c.componentName()}
	}
	return m.components.GetItem(index), nil
}

// CreateEntity returns a new entity with an empty mask and broadcasts
// EntityCreated
func (m *Manager) CreateEntity() Entity {
	en := m.entities.create()
	m.logger.Debug().Uint32("entity_id", uint32(en.ID)).Msg("entity created")
	Broadcast(m.events, &EntityCreated{Entity: en})
	return en
}

// RemoveEntity purges entity from every store and returns its id to the pool
func (m *Manager) RemoveEntity(entity Entity) error {
	removed, ok := m.entities.remove(entity.ID)
	if !ok {
		return EntityNotFoundError{ID: entity.ID}
	}
	for _, reg := range m.components.Items() {
		if reg.store.remove(entity.ID) {
			reg.dropCandidate(entity.ID)
		}
	}
	m.logger.Debug().Uint32("entity_id", uint32(entity.ID)).Msg("entity removed")
	Broadcast(m.events, &EntityRemoved{Entity: removed})
	return nil
}

// Entity returns the current snapshot of the live entity with id
func (m *Manager) Entity(id EntityID) (Entity, error) {
	live := m.entities.lookup(id)
	if live == nil {
		return Entity{}, EntityNotFoundError{ID: id}
	}
	return *live, nil
}

// Alive reports whether the id of entity is currently live
func (m *Manager) Alive(entity Entity) bool {
	return m.entities.lookup(entity.ID) != nil
}

// EntityCount returns the number of live entities
func (m *Manager) EntityCount() int {
	return m.entities.len()
}

// EnqueueRemoveEntity removes the entity now, or once the manager is unlocked
func (m *Manager) EnqueueRemoveEntity(entity Entity) error {
	if !m.Locked() {
		return m.RemoveEntity(entity)
	}
	m.opQueue.enqueueDestroy(entity)
	return nil
}

// Locked reports whether a cursor or a lock bit currently holds the manager
func (m *Manager) Locked() bool {
	return m.cursorLocks > 0 || !m.locks.IsEmpty()
}

// AddLock holds the manager locked under bit until RemoveLock(bit). Bits range
// over [0, MaxLockBits).
func (m *Manager) AddLock(bit uint32) error {
	if bit >= MaxLockBits {
		return LockBitRangeError{Bit: bit}
	}
	m.locks.Set(bit)
	return nil
}

// RemoveLock releases bit and applies queued operations once no lock remains
func (m *Manager) RemoveLock(bit uint32) error {
	if bit >= MaxLockBits {
		return LockBitRangeError{Bit: bit}
	}
	m.locks.Clear(bit)
	if m.Locked() {
		return nil
	}
	return m.processOperationQueue()
}

func (m *Manager) Lock() {
	m.cursorLocks++
}

// Unlock releases a lock taken with Lock. Queued operations are applied once
// no lock remains.
func (m *Manager) Unlock() error {
	if m.cursorLocks == 0 {
		return eris.New("unlock of unlocked manager")
	}
	m.cursorLocks--
	if m.Locked() {
		return nil
	}
	return m.processOperationQueue()
}
