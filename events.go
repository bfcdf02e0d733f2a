package depot

// EventBus dispatches events to handlers keyed by the event's concrete type.
// Each Manager owns one; there is no package-level bus.
//
// Handlers run synchronously on the caller's stack in subscription order and
// receive a pointer they must not retain past the call.
type EventBus struct {
	handlers map[any][]any
}

type eventKey[E any] struct{}

// EntityCreated is broadcast after CreateEntity adds a new entity to the live set
type EntityCreated struct {
	Entity Entity
}

// EntityRemoved is broadcast after RemoveEntity purged an entity from every store
type EntityRemoved struct {
	Entity Entity
}

// ComponentAdded is broadcast after a value of T was stored for an entity.
// Every instantiation is a distinct event type.
type ComponentAdded[T any] struct {
	Entity    Entity
	Component T
}

// ComponentRemoved carries the value an entity held immediately before removal
type ComponentRemoved[T any] struct {
	Entity    Entity
	Component T
}

func newEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[any][]any),
	}
}

// Subscribe appends handler to the list for events of type E
func Subscribe[E any](bus *EventBus, handler func(*E)) {
	if bus.handlers == nil {
		bus.handlers = make(map[any][]any)
	}
	key := eventKey[E]{}
	bus.handlers[key] = append(bus.handlers[key], handler)
}

// Broadcast invokes every handler subscribed to E. Handlers subscribed while
// the broadcast is running are not called for this event.
func Broadcast[E any](bus *EventBus, event *E) {
	handlers, ok := bus.handlers[eventKey[E]{}]
	if !ok {
		return
	}
	for _, h := range handlers {
		h.(func(*E))(event)
	}
}

// Subscribers returns how many handlers are registered for E
func Subscribers[E any](bus *EventBus) int {
	return len(bus.handlers[eventKey[E]{}])
}
