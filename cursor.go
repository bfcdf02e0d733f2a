package depot

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, manager *Manager) *Cursor {
	return &Cursor{
		query:   query,
		manager: manager,
	}
}

// Next advances to the next matched entity. The first call takes a snapshot
// of the matches and locks the manager; exhausting the cursor unlocks it.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.entityIndex < len(c.matched) {
		c.entityIndex++
		return true
	}
	c.Reset()
	return false
}

// Entities yields the matched entities; breaking out of the loop resets the cursor
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.initialize()
		for c.entityIndex < len(c.matched) {
			en := c.matched[c.entityIndex]
			c.entityIndex++
			if !yield(en) {
				break
			}
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.err = nil
	if leaf, ok := c.query.(*leafNode); ok {
		c.matched, c.err = c.manager.EntitiesWith(leaf.components...)
	} else {
		c.matched = iter_util.Collect(c.manager.scan(c.query))
	}
	c.entityIndex = 0
	c.manager.Lock()
	c.initialized = true
}

// Reset rewinds the cursor and releases its lock. The next iteration takes a
// fresh snapshot.
func (c *Cursor) Reset() {
	wasInitialized := c.initialized
	c.entityIndex = 0
	c.matched = nil
	c.initialized = false
	if !wasInitialized {
		return
	}
	if err := c.manager.Unlock(); err != nil {
		c.manager.logger.Error().Err(err).Msg("cursor released lock")
		if c.err == nil {
			c.err = err
		}
	}
}

// CurrentEntity returns the entity the last successful Next moved to
func (c *Cursor) CurrentEntity() (Entity, error) {
	if c.entityIndex == 0 || c.entityIndex > len(c.matched) {
		return Entity{}, CursorPositionError{}
	}
	return c.matched[c.entityIndex-1], nil
}

func (c *Cursor) RemainingMatched() int {
	return len(c.matched) - c.entityIndex
}

// TotalMatched counts the matches without consuming the cursor
func (c *Cursor) TotalMatched() int {
	if c.initialized {
		return len(c.matched)
	}
	c.initialize()
	total := len(c.matched)
	c.Reset()
	return total
}

// Err returns the error that made the last snapshot empty, such as an
// unregistered component
func (c *Cursor) Err() error {
	return c.err
}
