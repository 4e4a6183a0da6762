package gfx

// programCache keeps linked programs per color, most recently used first.
// Entries are few; lookup is a linear scan.
type programCache struct {
	capacity int
	entries  []*program
}

func newProgramCache(capacity int) *programCache {
	if capacity < 0 {
		capacity = 0
	}
	return &programCache{capacity: capacity, entries: make([]*program, 0, capacity)}
}

func (c *programCache) get(col Color) *program {
	for i, p := range c.entries {
		if p.color == col {
			c.moveToFront(i)
			return p
		}
	}
	return nil
}

// put records p as most recently used and returns the entries pushed out.
func (c *programCache) put(p *program) []*program {
	if c.capacity == 0 {
		return nil
	}
	for i, e := range c.entries {
		if e == p {
			c.moveToFront(i)
			return nil
		}
	}
	c.entries = append(c.entries, nil)
	copy(c.entries[1:], c.entries)
	c.entries[0] = p
	if len(c.entries) <= c.capacity {
		return nil
	}
	evicted := append([]*program(nil), c.entries[c.capacity:]...)
	clear(c.entries[c.capacity:])
	c.entries = c.entries[:c.capacity]
	return evicted
}

func (c *programCache) drain() []*program {
	out := c.entries
	c.entries = nil
	return out
}

func (c *programCache) len() int {
	return len(c.entries)
}

func (c *programCache) moveToFront(i int) {
	if i == 0 {
		return
	}
	p := c.entries[i]
	copy(c.entries[1:i+1], c.entries[:i])
	c.entries[0] = p
}
