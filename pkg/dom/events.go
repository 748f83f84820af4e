package dom

import (
	"github.com/google/uuid"
)

// EventDispose is fired exactly once on an element when its owner tears it
// down. It never bubbles; observers use it to unhook cross-component state.
const EventDispose = "dispose"

// TouchPoint is one active contact point carried by a touch event.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// Event is a dispatched occurrence on an element.
type Event struct {
	// Type is the event type, e.g. "click", "tap", "touchstart".
	Type string
	// Target is the element the event was originally dispatched on.
	Target *Element
	// CurrentTarget is the element whose listeners are currently running.
	CurrentTarget *Element
	// Bubbles makes the event propagate to ancestors after the target.
	Bubbles bool
	// Touches holds the active contact points for touch events.
	Touches []TouchPoint
	// Detail carries event-specific payload.
	Detail any

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates a non-bubbling event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// NewBubblingEvent creates an event of the given type that bubbles.
func NewBubblingEvent(eventType string) *Event {
	return &Event{Type: eventType, Bubbles: true}
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from bubbling further.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// HandlerFunc handles one dispatched event.
type HandlerFunc func(*Event)

// Handler pairs a handler function with an identity token. Functions are not
// comparable in Go, so the token is what On/Off matching and cross-component
// disposal cleanup key on. Registrations that must be removed together are
// created with the same token via [Handler.WithToken].
type Handler struct {
	token string
	fn    HandlerFunc
}

// NewHandler wraps fn with a fresh identity token.
func NewHandler(fn HandlerFunc) *Handler {
	return &Handler{token: uuid.NewString(), fn: fn}
}

// Token returns the handler's identity token.
func (h *Handler) Token() string { return h.token }

// WithToken returns a new handler for fn sharing h's identity token.
func (h *Handler) WithToken(fn HandlerFunc) *Handler {
	return &Handler{token: h.token, fn: fn}
}

// Call invokes the wrapped function.
func (h *Handler) Call(e *Event) { h.fn(e) }

// On registers h for the given event type.
func (e *Element) On(eventType string, h *Handler) {
	if h == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Handler)
	}
	e.listeners[eventType] = append(e.listeners[eventType], h)
}

// Off removes every registration for eventType whose token matches h.
// A nil h removes all listeners for the type.
func (e *Element) Off(eventType string, h *Handler) {
	regs := e.listeners[eventType]
	if regs == nil {
		return
	}
	if h == nil {
		delete(e.listeners, eventType)
		return
	}
	kept := regs[:0]
	for _, reg := range regs {
		if reg.token != h.token {
			kept = append(kept, reg)
		}
	}
	if len(kept) == 0 {
		delete(e.listeners, eventType)
	} else {
		e.listeners[eventType] = kept
	}
}

// One registers h for eventType and removes it after its first invocation.
// The wrapper keeps h's token so token-matched cleanup still applies.
func (e *Element) One(eventType string, h *Handler) {
	if h == nil {
		return
	}
	var once *Handler
	once = h.WithToken(func(ev *Event) {
		e.Off(eventType, once)
		h.Call(ev)
	})
	e.On(eventType, once)
}

// Trigger dispatches ev with e as target, then walks ancestors while
// ev.Bubbles holds and propagation has not been stopped. It returns ev so
// callers can inspect DefaultPrevented.
func (e *Element) Trigger(ev *Event) *Event {
	if ev == nil {
		return nil
	}
	if ev.Target == nil {
		ev.Target = e
	}
	for node := e; node != nil; node = node.parent {
		ev.CurrentTarget = node
		node.dispatch(ev)
		if !ev.Bubbles || ev.propagationStopped {
			break
		}
	}
	return ev
}

// TriggerType dispatches a fresh non-bubbling event of the given type.
func (e *Element) TriggerType(eventType string) *Event {
	return e.Trigger(NewEvent(eventType))
}

// dispatch runs the listeners registered on this one node. The registration
// slice is snapshotted first so handlers may add or remove listeners freely.
func (e *Element) dispatch(ev *Event) {
	regs := e.listeners[ev.Type]
	if len(regs) == 0 {
		return
	}
	snapshot := make([]*Handler, len(regs))
	copy(snapshot, regs)
	for _, h := range snapshot {
		h.Call(ev)
	}
}
