package core

import (
	"time"

	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/sched"
)

// SetTimeout schedules fn to run once after d on the component's loop. The
// timer is cancelled automatically if the component is disposed first;
// scheduling work through a platform timer instead would leak across
// disposal.
func (c *Base) SetTimeout(d time.Duration, fn func()) sched.TimerID {
	if fn == nil {
		return 0
	}
	if c.disposed {
		c.reportDisposedUse("core.SetTimeout")
		return 0
	}
	var id sched.TimerID
	id = c.loop.SetTimeout(d, func() {
		c.dropTimerHook(id)
		fn()
	})
	c.armTimerHook(id)
	return id
}

// ClearTimeout cancels a pending one-shot timer.
func (c *Base) ClearTimeout(id sched.TimerID) {
	c.loop.ClearTimer(id)
	c.dropTimerHook(id)
}

// SetInterval schedules fn to run every d on the component's loop until
// cleared or the component is disposed.
func (c *Base) SetInterval(d time.Duration, fn func()) sched.TimerID {
	if fn == nil {
		return 0
	}
	if c.disposed {
		c.reportDisposedUse("core.SetInterval")
		return 0
	}
	id := c.loop.SetInterval(d, fn)
	c.armTimerHook(id)
	return id
}

// ClearInterval cancels a running interval.
func (c *Base) ClearInterval(id sched.TimerID) {
	c.loop.ClearTimer(id)
	c.dropTimerHook(id)
}

// armTimerHook registers the dispose-triggered cancellation for id.
func (c *Base) armTimerHook(id sched.TimerID) {
	if c.el == nil {
		return
	}
	h := dom.NewHandler(func(*dom.Event) {
		c.loop.ClearTimer(id)
	})
	c.el.On(dom.EventDispose, h)
	if c.timerHooks == nil {
		c.timerHooks = make(map[sched.TimerID]*dom.Handler)
	}
	c.timerHooks[id] = h
}

// dropTimerHook removes the cancellation hook once a timer has fired or was
// cleared explicitly.
func (c *Base) dropTimerHook(id sched.TimerID) {
	h, ok := c.timerHooks[id]
	if !ok {
		return
	}
	delete(c.timerHooks, id)
	if c.el != nil {
		c.el.Off(dom.EventDispose, h)
	}
}
