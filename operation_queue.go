package depot

import (
	"errors"

	"github.com/rotisserie/eris"
)

type operation struct {
	typ    operationType
	entity Entity
	apply  func() error
}

type operationType int

const (
	opNoop operationType = iota - 1
	opDestroy
	opAddComponent
	opRemoveComponent
)

type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[EntityID]struct{}
	pendingMods    map[EntityID][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[EntityID]struct{}),
		pendingMods:    make(map[EntityID][]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) enqueueDestroy(entity Entity) {
	if _, exists := q.pendingDestroy[entity.ID]; exists {
		return
	}
	q.pendingDestroy[entity.ID] = struct{}{}

	// Component changes on an entity about to be destroyed are moot
	for _, idx := range q.pendingMods[entity.ID] {
		q.componentOps[idx].typ = opNoop
	}
	delete(q.pendingMods, entity.ID)

	q.destroyOps = append(q.destroyOps, operation{
		typ:    opDestroy,
		entity: entity,
	})
}

func (q *opQueue) enqueueComponentOp(typ operationType, entity Entity, apply func() error) {
	if _, isDestroyed := q.pendingDestroy[entity.ID]; isDestroyed {
		return
	}
	q.pendingMods[entity.ID] = append(q.pendingMods[entity.ID], len(q.componentOps))
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: entity,
		apply:  apply,
	})
}

// processOperationQueue applies component changes in the order they were
// queued, then removals. Every operation is attempted; the failures are
// returned together.
func (m *Manager) processOperationQueue() error {
	if m.opQueue.empty() {
		return nil
	}
	componentOps := m.opQueue.componentOps
	destroyOps := m.opQueue.destroyOps

	// Operations may enqueue more work if they lock the manager again
	m.opQueue = newOpQueue()

	var errs []error
	for _, op := range componentOps {
		if op.typ == opNoop {
			continue
		}
		if err := op.apply(); err != nil {
			errs = append(errs, eris.Wrapf(err, "failed to apply queued component change on entity %d", op.entity.ID))
		}
	}
	for _, op := range destroyOps {
		if err := m.RemoveEntity(op.entity); err != nil {
			errs = append(errs, eris.Wrapf(err, "failed to remove queued entity %d", op.entity.ID))
		}
	}
	if len(errs) > 0 {
		m.logger.Error().Int("failed", len(errs)).Msg("queued operations failed")
	}
	return errors.Join(errs...)
}
