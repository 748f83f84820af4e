package core

import (
	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/errors"
)

// Dispose tears the component down:
//
//  1. a non-bubbling "dispose" event fires on the element while all state
//     is still intact, driving observed-listener cleanup and scoped timer
//     cancellation;
//  2. children are disposed in reverse insertion order;
//  3. the child containers are cleared;
//  4. the component's remaining local listeners are dropped;
//  5. the element is detached from the platform tree and released.
//
// A disposed component absorbs straggler calls (RemoveChild, lookups) as
// no-ops, reporting each through the error handler so the lifecycle race
// stays observable; callers must not reuse it.
func (c *Base) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	if c.el != nil {
		c.el.Trigger(dom.NewEvent(dom.EventDispose))
	}

	for i := len(c.children) - 1; i >= 0; i-- {
		if child := c.children[i]; child != nil {
			child.Dispose()
		}
	}
	c.children = nil
	c.childByID = nil
	c.childByName = nil

	c.readyQueue = nil
	c.timerHooks = nil

	if c.el != nil {
		c.el.ClearListeners()
		if parent := c.el.Parent(); parent != nil {
			parent.RemoveChild(c.el)
		}
		c.el = nil
	}
	c.contentEl = nil
}

// reportDisposedUse surfaces an absorbed straggler call. The operation
// itself stays a no-op; only the handler chain hears about it.
func (c *Base) reportDisposedUse(op string) {
	errors.Report(errors.Errorf(op, errors.KindLifecycle,
		"use of disposed component").WithComponent(c.id))
}
