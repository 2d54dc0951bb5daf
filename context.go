package granary

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Context owns one Registry and one Directory and gives the pair an explicit
// init/teardown lifecycle. It replaces ambient global state: systems receive
// the Context they operate on instead of reaching for a process-wide
// singleton, which keeps coupling visible and the core testable in isolation.
type Context struct {
	registry  *Registry
	directory *Directory
	log       *logrus.Entry
}

func newContext(cfg Config) *Context {
	capacity := cfg.MaxEntities
	if capacity == 0 {
		capacity = DefaultMaxEntities
	}
	logger := cfg.Log
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	ctx := &Context{
		registry:  newRegistry(capacity),
		directory: newDirectory(capacity),
		log:       logger.WithField("component", "granary"),
	}
	ctx.log.WithField("capacity", capacity).Debug("context initialized")
	return ctx
}

// Registry returns the identifier registry.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Directory returns the component directory.
func (c *Context) Directory() *Directory {
	return c.directory
}

// CreateEntity issues a fresh entity id with an empty signature.
func (c *Context) CreateEntity() EntityID {
	return c.registry.Create()
}

// DestroyEntity fans destruction out to every registered storage, then
// reclaims the id and resets its signature.
func (c *Context) DestroyEntity(id EntityID) {
	c.directory.NotifyEntityDestroyed(id)
	c.registry.Destroy(id)
}

// DestroyAll tears the whole scene down: every storage is cleared and the
// full id range returns to the free pool.
func (c *Context) DestroyAll() {
	c.directory.ClearAll()
	c.registry.DestroyAll()
	c.log.Debug("destroyed all entities")
}

// DestroyWhere destroys every active entity matching pred, storages included,
// and reports how many were destroyed. Matches are collected over a snapshot
// first and destroyed in a second pass.
func (c *Context) DestroyWhere(pred func(EntityID) bool) int {
	matched := c.registry.collect(pred)
	for _, id := range matched {
		c.DestroyEntity(id)
	}
	if len(matched) > 0 {
		c.log.WithField("count", len(matched)).Debug("bulk destroy")
	}
	return len(matched)
}

// Attach is the unified add: it inserts value in T's storage and marks the
// entity's signature bit in the same step.
func Attach[T any](c *Context, id EntityID, value T) {
	Add(c.directory, id, value)
	sig := c.registry.GetSignature(id)
	sig.Mark(TypeSlot[T](c.directory))
	c.registry.SetSignature(id, sig)
}

// Detach is the unified remove: it drops id's T value and clears the
// signature bit in the same step.
func Detach[T any](c *Context, id EntityID) {
	Remove[T](c.directory, id)
	sig := c.registry.GetSignature(id)
	sig.Unmark(TypeSlot[T](c.directory))
	c.registry.SetSignature(id, sig)
}

// HasComponent answers the "does this entity carry a T" query from the
// signature alone, without touching T's storage.
func HasComponent[T any](c *Context, id EntityID) bool {
	return c.registry.GetSignature(id).ContainsAll(SlotSignature(TypeSlot[T](c.directory)))
}
