package depot

import "iter"

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

// leafNode matches entities holding every one of its components. Cursors
// resolve it through EntitiesWith.
type leafNode struct {
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

func newLeafNode(components []Component) *leafNode {
	return &leafNode{components: components}
}

// nodeMask builds the mask of the registered components. Unregistered
// components are held by no entity, so they are reported separately.
func nodeMask(components []Component, m *Manager) (target Mask, unregistered bool) {
	for _, comp := range components {
		reg, err := m.registration(comp)
		if err != nil {
			unregistered = true
			continue
		}
		target.Set(reg.index)
	}
	return target, unregistered
}

func (n *compositeNode) Evaluate(entity Entity, m *Manager) bool {
	target, unregistered := nodeMask(n.components, m)

	switch n.op {
	case OpAnd:
		if unregistered || !entity.Mask.HasAll(target) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(entity, m) {
				return false
			}
		}
		return true

	case OpOr:
		if entity.Mask.HasAny(target) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(entity, m) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(entity, m) {
				return false
			}
		}
		return !entity.Mask.HasAny(target)
	}
	return false
}

func (n *leafNode) Evaluate(entity Entity, m *Manager) bool {
	target, unregistered := nodeMask(n.components, m)
	return !unregistered && entity.Mask.HasAll(target)
}

func (q *query) And(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpOr, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpNot, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(entity Entity, m *Manager) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(entity, m)
}

// EntitiesWith returns the live entities holding every one of components.
//
// With no components it returns every live entity in live order. Otherwise
// each component must be registered; the candidate list of the rarest
// requested type is scanned and the result follows that list's order.
func (m *Manager) EntitiesWith(components ...Component) ([]Entity, error) {
	if len(components) == 0 {
		return m.entities.snapshot(), nil
	}

	regs := make([]*registration, len(components))
	for i, comp := range components {
		reg, err := m.registration(comp)
		if err != nil {
			return nil, err
		}
		regs[i] = reg
	}

	var target Mask
	smallest := regs[0]
	for _, reg := range regs {
		target.Set(reg.index)
		if len(reg.candidates) < len(smallest.candidates) {
			smallest = reg
		}
	}

	matched := make([]Entity, 0, len(smallest.candidates))
	for _, id := range smallest.candidates {
		live := m.entities.lookup(id)
		if live != nil && live.Mask.HasAll(target) {
			matched = append(matched, *live)
		}
	}
	return matched, nil
}

// Query returns a cursor over the entities holding every one of components
func (m *Manager) Query(components ...Component) *Cursor {
	return newCursor(newLeafNode(components), m)
}

// scan yields the live entities node matches, in live order
func (m *Manager) scan(node QueryNode) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, en := range m.entities.live {
			if node.Evaluate(en, m) && !yield(en) {
				return
			}
		}
	}
}
