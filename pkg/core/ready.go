package core

// EventReady is emitted after the ready queue drains, for event-based
// listeners.
const EventReady = "ready"

// Ready registers fn to run once the component is ready. If readiness has
// already been reached, fn is still deferred to a later loop turn so caller
// code never depends on synchronous ordering. A callback whose component is
// disposed before it runs is absorbed, with the race reported through the
// error handler.
func (c *Base) Ready(fn func()) {
	if fn == nil {
		return
	}
	if c.disposed {
		c.reportDisposedUse("core.Ready")
		return
	}
	if c.ready == readyDone {
		c.loop.Post(func() {
			if c.disposed {
				c.reportDisposedUse("core.Ready")
				return
			}
			fn()
		})
		return
	}
	c.readyQueue = append(c.readyQueue, fn)
}

// TriggerReady transitions to the ready state. The queued callbacks drain
// asynchronously in enqueue order, followed — in the same turn — by the
// "ready" event. The transition is one-way; repeated calls are no-ops.
func (c *Base) TriggerReady() {
	if c.ready == readyDone {
		return
	}
	c.ready = readyDone

	c.loop.Post(func() {
		if c.disposed {
			c.reportDisposedUse("core.TriggerReady")
			return
		}
		queue := c.readyQueue
		c.readyQueue = nil
		for _, fn := range queue {
			fn()
		}
		c.TriggerType(EventReady)
	})
}

// IsReady reports whether readiness has been reached.
func (c *Base) IsReady() bool { return c.ready == readyDone }
