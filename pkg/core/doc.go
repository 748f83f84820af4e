// Package core provides the component tree substrate: the generic
// [Component] contract, its [Base] implementation, and the process-wide
// component registry.
//
// A component pairs exactly one owned platform element with lifecycle,
// child-management, and event-delegation behavior. Trees are strict rooted
// trees: a parent owns its children, children are torn down before the
// parent releases its own element, and every node keeps a non-owning back
// reference to the tree's player.
//
// # Specializing Base
//
// Component types embed [Base] and register themselves through SetSelf so
// overridable hooks (CreateEl, BuildCSSClass, Dispose) dispatch to the
// outermost type:
//
//	type Badge struct {
//	    core.Base
//	}
//
//	func NewBadge(player core.Player, opts core.Options) (*Badge, error) {
//	    b := &Badge{}
//	    b.SetSelf(b)
//	    if err := b.Init(player, opts); err != nil {
//	        return nil, err
//	    }
//	    return b, nil
//	}
//
//	func (b *Badge) CreateEl() *dom.Element { ... }
//
// # Constructor Conventions
//
// Components are long-lived and mutable, so they use NewX() constructors
// returning pointers. Configuration is a plain [Options] value merged once
// at construction and treated as immutable afterwards.
//
// # Listeners and resource safety
//
// On/Off/One manage listeners on the component's own element. ListenTo
// observes another component (or a bare element) and wires disposal-driven
// cleanup on both sides, so whichever side is disposed first, neither leaks
// bookkeeping nor touches a dead target. SetTimeout/SetInterval are the only
// sanctioned way to schedule delayed work: each pending timer is cancelled
// automatically when the owning component is disposed.
package core
