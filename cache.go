package depot

import "iter"

var _ Cache[string, any] = &SimpleCache[string, any]{}

func (c *SimpleCache[K, T]) GetIndex(key K) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *SimpleCache[K, T]) GetItem(index int) *T {
	return &c.items[index]
}

// Register appends item under key and returns its index. Indices are dense and
// start at zero; registering past maxCapacity fails.
func (c *SimpleCache[K, T]) Register(key K, item T) (int, error) {
	if len(c.items) >= c.maxCapacity {
		return -1, CapacityExceededError{Capacity: c.maxCapacity}
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

func (c *SimpleCache[K, T]) Len() int {
	return len(c.items)
}

// Items yields every registered item in registration order
func (c *SimpleCache[K, T]) Items() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range c.items {
			if !yield(i, &c.items[i]) {
				return
			}
		}
	}
}
