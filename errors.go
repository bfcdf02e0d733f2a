package depot

import "fmt"

// ComponentTypeNotRegisteredError is returned whenever an operation references a
// component type that was never passed to RegisterComponentType
type ComponentTypeNotRegisteredError struct {
	Name string
}

func (e ComponentTypeNotRegisteredError) Error() string {
	return fmt.Sprintf("component type %s must be registered before being used", e.Name)
}

// EntityNotFoundError is returned when an operation needs a live entity
type EntityNotFoundError struct {
	ID EntityID
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d was not found", e.ID)
}

// CapacityExceededError is returned when registering past a registry's capacity,
// such as a 33rd component type
type CapacityExceededError struct {
	Capacity int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("registry at maximum capacity (%d)", e.Capacity)
}

// LockBitRangeError is returned for lock bits at or past MaxLockBits
type LockBitRangeError struct {
	Bit uint32
}

func (e LockBitRangeError) Error() string {
	return fmt.Sprintf("lock bit %d out of range [0, %d)", e.Bit, MaxLockBits)
}

type CursorPositionError struct{}

func (e CursorPositionError) Error() string {
	return "cursor is not positioned on an entity"
}
