// Package dom provides the retained platform element tree and the event
// delegation layer built on top of it.
//
// An [Element] is a lightweight stand-in for one platform UI node: a tag,
// an id, attributes, an ordered class list, and parent/child links. Elements
// do not render anything; higher layers decide what an element means
// visually. The package only guarantees structural invariants (a node has at
// most one parent, detaching is idempotent) and event bookkeeping.
//
// # Events
//
// Every element is an event target. Handlers are registered per event type
// and carry an identity token so the same logical handler can be matched for
// removal from either side of a cross-component registration:
//
//	h := dom.NewHandler(func(e *dom.Event) { ... })
//	el.On("click", h)
//	el.Off("click", h)
//
// [Element.Release] fires a final non-bubbling "dispose" event and then
// clears all listener state. Disposal-triggered cleanup between components
// is layered on this single primitive.
package dom
