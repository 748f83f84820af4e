package dom

import (
	"sort"
	"strings"
)

// Element is one retained platform UI node.
//
// Long-lived and mutable, so it follows the NewX constructor convention.
// An element belongs to at most one parent at a time; appending an element
// that already has a parent detaches it from the old parent first.
type Element struct {
	tag     string
	id      string
	attrs   map[string]string
	styles  map[string]string
	classes []string
	text    string

	parent   *Element
	children []*Element

	listeners map[string][]*Handler
}

// New creates a detached element with the given tag.
func New(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// ID returns the element id, or "" if none was set.
func (e *Element) ID() string { return e.id }

// SetID sets the element id.
func (e *Element) SetID(id string) { e.id = id }

// Text returns the element's own text content.
func (e *Element) Text() string { return e.text }

// SetText replaces the element's own text content.
func (e *Element) SetText(text string) { e.text = text }

// Attribute returns the named attribute and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets the named attribute.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute deletes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// AttributeNames returns the attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the named inline style property.
func (e *Element) Style(name string) string { return e.styles[name] }

// SetStyle sets an inline style property.
func (e *Element) SetStyle(name, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[name] = value
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list if not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ClassName returns the space-joined class list.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetClassName replaces the class list with the space-separated names.
func (e *Element) SetClassName(names string) {
	e.classes = e.classes[:0]
	for _, name := range strings.Fields(names) {
		e.AddClass(name)
	}
}

// Parent returns the element's parent, or nil if detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in insertion order.
// The returned slice is shared; callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// AppendChild adds child as the last child of e, detaching it from any
// previous parent first. Appending nil, the element itself, or one of the
// element's ancestors is a no-op; the tree stays strict.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.Contains(e) {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. It is a no-op when child's current
// parent is not exactly e; another collaborator may already have moved it.
func (e *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != e {
		return
	}
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Contains reports whether desc is e or a descendant of e.
func (e *Element) Contains(desc *Element) bool {
	for n := desc; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// ClearListeners drops all listener bookkeeping without dispatching
// anything. Owners that need observers notified fire "dispose" first, or
// use Release.
func (e *Element) ClearListeners() {
	e.listeners = nil
}

// Release fires a final non-bubbling "dispose" event on the element and then
// drops all listener bookkeeping accumulated so far. The element stays
// structurally usable so its owner can still detach it afterwards.
func (e *Element) Release() {
	e.Trigger(NewEvent(EventDispose))
	e.ClearListeners()
}
