/*
Package depot provides an entity-component store for games and simulations.

Entities are small integer handles; components are typed values attached to
them through per-type stores. Every entity carries a membership mask with one
bit per registered component type, which is what queries test against.

Core Concepts:

  - Entity: An id plus a snapshot of its membership mask.
  - Component: A data container attached to entities, identified by a ComponentType tag.
  - Manager: Owns entities, component stores and the event bus.
  - Query: A way to find entities with specific component combinations.

Basic Usage:

	manager := depot.Factory.NewManager()

	// Define and register components
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	manager.RegisterComponentType(position)
	manager.RegisterComponentType(velocity)

	// Create entities and attach data
	e := manager.CreateEntity()
	position.Add(manager, e, Position{})
	velocity.Add(manager, e, Velocity{X: 1})

	// Query entities and process them
	entities, _ := manager.EntitiesWith(position, velocity)
	for _, en := range entities {
		pos, _ := position.Get(manager, en)
		vel, _ := velocity.Get(manager, en)
		pos.X += vel.X
		pos.Y += vel.Y
	}

At most 32 component types can be registered with a manager, one per mask
bit. Lifecycle changes are announced on the manager's EventBus as
EntityCreated, EntityRemoved, ComponentAdded[T] and ComponentRemoved[T].

A Manager is meant to be driven from a single goroutine.
*/
package depot
