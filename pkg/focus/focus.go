// Package focus provides the process-scoped keyboard dispatcher.
//
// Key events target the process, not an element, so instead of per-element
// key listeners there is a single [Manager] that tracks which node currently
// holds focus and forwards every key event to it. Only one node has focus at
// a time; a shared dispatcher is sufficient and cheaper than per-element
// bindings.
package focus

import "sync"

// Key codes understood by interactive components.
const (
	KeyEnter = 13
	KeySpace = 32
)

// KeyEvent represents one keyboard event.
type KeyEvent struct {
	// Code is the numeric key code.
	Code int

	defaultPrevented bool
}

// PreventDefault marks the platform default action as suppressed.
func (e *KeyEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.defaultPrevented }

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled.
	KeyEventIgnored KeyEventResult = iota

	// KeyEventHandled indicates the event was consumed.
	KeyEventHandled
)

// Node is a focusable participant. A node joins key dispatch while focused
// and leaves on blur.
type Node struct {
	// OnKeyEvent receives key events while the node holds focus.
	OnKeyEvent func(event *KeyEvent) KeyEventResult

	// OnFocusChange is notified when the node gains or loses focus.
	OnFocusChange func(hasFocus bool)
}

// Manager tracks the focused node and dispatches key events to it.
type Manager struct {
	mu      sync.Mutex
	focused *Node
}

// NewManager creates an empty focus manager.
func NewManager() *Manager {
	return &Manager{}
}

// Focus makes node the focus holder, blurring any previous holder.
func (m *Manager) Focus(node *Node) {
	if node == nil {
		return
	}
	m.mu.Lock()
	prev := m.focused
	if prev == node {
		m.mu.Unlock()
		return
	}
	m.focused = node
	m.mu.Unlock()

	if prev != nil && prev.OnFocusChange != nil {
		prev.OnFocusChange(false)
	}
	if node.OnFocusChange != nil {
		node.OnFocusChange(true)
	}
}

// Blur clears focus if node currently holds it. Blurring a node that is not
// focused is a no-op; another node may have taken focus already.
func (m *Manager) Blur(node *Node) {
	m.mu.Lock()
	if m.focused != node {
		m.mu.Unlock()
		return
	}
	m.focused = nil
	m.mu.Unlock()

	if node != nil && node.OnFocusChange != nil {
		node.OnFocusChange(false)
	}
}

// Focused reports whether node currently holds focus.
func (m *Manager) Focused(node *Node) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focused == node && node != nil
}

// DispatchKey forwards event to the focused node, if any.
func (m *Manager) DispatchKey(event *KeyEvent) KeyEventResult {
	m.mu.Lock()
	node := m.focused
	m.mu.Unlock()

	if node == nil || node.OnKeyEvent == nil || event == nil {
		return KeyEventIgnored
	}
	return node.OnKeyEvent(event)
}

var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

// Default returns the process-wide focus manager.
func Default() *Manager {
	defaultOnce.Do(func() { defaultManager = NewManager() })
	return defaultManager
}
