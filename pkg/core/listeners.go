package core

import (
	"github.com/go-reel/reel/pkg/dom"
)

// On attaches fn to the component's own element for eventType and returns
// the registration handle used for removal.
func (c *Base) On(eventType string, fn dom.HandlerFunc) *dom.Handler {
	if c.el == nil {
		return nil
	}
	h := dom.NewHandler(fn)
	c.el.On(eventType, h)
	return h
}

// Off removes a local registration by identity token.
func (c *Base) Off(eventType string, h *dom.Handler) {
	if c.el == nil || h == nil {
		return
	}
	c.el.Off(eventType, h)
}

// One attaches fn locally for a single invocation.
func (c *Base) One(eventType string, fn dom.HandlerFunc) *dom.Handler {
	if c.el == nil {
		return nil
	}
	h := dom.NewHandler(fn)
	c.el.One(eventType, h)
	return h
}

// ListenTo attaches fn to another component's (or bare element's) events
// and wires disposal-driven cleanup on both sides, all registrations
// sharing one identity token:
//
//   - if this component is disposed first, the listener on the target is
//     removed;
//   - if the target is disposed first, this component's cleanup hook is
//     removed, so its own later disposal never touches the dead target.
//
// Disposal order between the two sides is therefore immaterial.
func (c *Base) ListenTo(target Target, eventType string, fn dom.HandlerFunc) *dom.Handler {
	if c.el == nil || target == nil {
		return nil
	}
	targetEl := target.El()
	if targetEl == nil {
		return nil
	}

	h := dom.NewHandler(fn)
	targetEl.On(eventType, h)

	removeFromTarget := h.WithToken(func(*dom.Event) {
		targetEl.Off(eventType, h)
	})
	c.el.On(dom.EventDispose, removeFromTarget)

	dropBookkeeping := h.WithToken(func(*dom.Event) {
		if c.el != nil {
			c.el.Off(dom.EventDispose, removeFromTarget)
		}
	})
	targetEl.On(dom.EventDispose, dropBookkeeping)

	return h
}

// ListenToOnce is ListenTo for a single invocation; the wrapper keeps the
// handler's token so disposal cleanup still matches after it self-removes.
func (c *Base) ListenToOnce(target Target, eventType string, fn dom.HandlerFunc) *dom.Handler {
	var h *dom.Handler
	h = c.ListenTo(target, eventType, func(ev *dom.Event) {
		c.StopListening(target, eventType, h)
		fn(ev)
	})
	return h
}

// StopListening removes an observed registration and both of its cleanup
// hooks.
func (c *Base) StopListening(target Target, eventType string, h *dom.Handler) {
	if target == nil || h == nil {
		return
	}
	if targetEl := target.El(); targetEl != nil {
		targetEl.Off(eventType, h)
		targetEl.Off(dom.EventDispose, h)
	}
	if c.el != nil {
		c.el.Off(dom.EventDispose, h)
	}
}

// Trigger dispatches ev on the component's own element.
func (c *Base) Trigger(ev *dom.Event) *dom.Event {
	if c.el == nil {
		return ev
	}
	return c.el.Trigger(ev)
}

// TriggerType dispatches a fresh non-bubbling event of the given type on
// the component's own element.
func (c *Base) TriggerType(eventType string) *dom.Event {
	if c.el == nil {
		return nil
	}
	return c.el.TriggerType(eventType)
}
