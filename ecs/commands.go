package ecs

// Commands buffers structural changes so they can be applied at a known point:
// the Scheduler flushes a frame's buffer after each system, and loaders stage
// a whole level in one buffer and flush only when it parsed cleanly.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues fn to run after the structural changes of the same flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Reset discards everything queued.
func (c *Commands) Reset() {
	clear(c.spawns)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
}

// Flush applies deletes, then spawns in queue order, then deferred functions,
// and leaves the buffer empty.
func (c *Commands) Flush(storage *Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}
	for _, fn := range c.defers {
		fn()
	}
	c.Reset()
}
