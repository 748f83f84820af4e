package widgets

import (
	"strings"

	"github.com/go-reel/reel/pkg/core"
	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/focus"
	"github.com/go-reel/reel/pkg/theme"
)

// controlTextFallback is what ControlText reports when no label was set.
// Shipping it to users is a bug in the embedding widget, which is why the
// text is deliberately conspicuous.
const controlTextFallback = "Need Text"

// Interactive is implemented by widgets layered on [Clickable]. The Handle
// methods are override points dispatched virtually through SetSelf.
type Interactive interface {
	core.Component

	// HandleClick receives every semantic activation: pointer click, tap,
	// and keyboard activation while focused.
	HandleClick(ev *dom.Event)
	// HandleFocus runs when the element gains focus. An override must call
	// the Clickable implementation or keyboard activation silently stops
	// working.
	HandleFocus()
	// HandleBlur runs when the element loses focus. Same contract as
	// HandleFocus.
	HandleBlur()
}

// Clickable is a component that responds to pointer clicks, taps, and
// keyboard activation with one semantic hook, HandleClick. It also carries
// the accessible labeling machinery (ControlText) and the enable/disable
// state shared by every interactive widget.
type Clickable struct {
	core.Base

	self          Interactive
	keys          *focus.Manager
	focusNode     *focus.Node
	controlText   string
	controlTextEl *dom.Element
	enabled       bool
}

// NewClickable constructs a standalone Clickable. Widgets embedding
// Clickable do not call this; they call SetSelf then Init on themselves.
func NewClickable(player core.Player, opts core.Options) (*Clickable, error) {
	c := &Clickable{}
	c.SetSelf(c)
	if err := c.Init(player, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// SetSelf registers the outermost value for virtual dispatch of both the
// core hooks and the Interactive hooks.
func (c *Clickable) SetSelf(self core.Component) {
	c.Base.SetSelf(self)
	c.self, _ = self.(Interactive)
}

// Init wires activation sources after the core initialization: tap
// synthesis over raw touch events, click listeners, and the focus node
// that joins keyboard dispatch while the element is focused.
func (c *Clickable) Init(player core.Player, opts core.Options, ready ...func()) error {
	if err := c.Base.Init(player, opts, ready...); err != nil {
		return err
	}

	c.keys = c.resolveFocusManager()
	c.focusNode = &focus.Node{
		OnKeyEvent: c.handleKey,
		OnFocusChange: func(hasFocus bool) {
			if el := c.El(); el != nil {
				if hasFocus {
					el.AddClass("reel-focused")
				} else {
					el.RemoveClass("reel-focused")
				}
			}
		},
	}

	c.EmitTapEvents()
	c.On("click", c.activate)
	c.On(core.EventTap, c.activate)
	c.On("focus", func(*dom.Event) { c.self.HandleFocus() })
	c.On("blur", func(*dom.Event) { c.self.HandleBlur() })
	c.On(dom.EventDispose, func(*dom.Event) { c.keys.Blur(c.focusNode) })

	if text := c.Options().String("controlText"); text != "" {
		c.SetControlText(text)
	}
	if c.Options().Bool("disabled", false) {
		c.applyDisabled()
	} else {
		c.enabled = true
	}
	return nil
}

func (c *Clickable) resolveFocusManager() *focus.Manager {
	if m, ok := c.Options()["focusManager"].(*focus.Manager); ok && m != nil {
		return m
	}
	return focus.Default()
}

// BuildCSSClass appends the clickable token to the parent contribution.
func (c *Clickable) BuildCSSClass() string {
	return strings.TrimSpace("reel-clickable " + c.Base.BuildCSSClass())
}

// CreateEl synthesizes an interactive div. Button narrows the tag.
func (c *Clickable) CreateEl() *dom.Element {
	return c.createInteractiveEl("div")
}

// createInteractiveEl builds the shared interactive element shape: button
// role, a zero tab index so the element is focusable, and a dedicated text
// sub-element for the accessible label. The label can change while
// displayed, hence the live-region hint.
func (c *Clickable) createInteractiveEl(tag string) *dom.Element {
	el := dom.New(tag)
	if class := c.self.BuildCSSClass(); class != "" {
		el.SetClassName(class)
	}
	el.SetAttribute("role", "button")
	el.SetAttribute("tabindex", "0")

	text := dom.New("span")
	text.AddClass("reel-control-text")
	text.SetAttribute("aria-live", "polite")
	el.AppendChild(text)
	c.controlTextEl = text

	c.applySkin(el)
	return el
}

// applySkin styles el from the configured palette, when one is present.
// The palette arrives either directly or through propagated playerOptions.
func (c *Clickable) applySkin(el *dom.Element) {
	palette, ok := c.palette()
	if !ok {
		return
	}
	slots := theme.DefaultButtonTheme()
	if css := palette.CSS(slots.Background); css != "" {
		el.SetStyle("background-color", css)
	}
	if css := palette.CSS(slots.Foreground); css != "" {
		el.SetStyle("color", css)
	}
}

func (c *Clickable) palette() (theme.Palette, bool) {
	if p, ok := c.Options()["skin"].(theme.Palette); ok {
		return p, true
	}
	if po, ok := c.Options().Sub("playerOptions"); ok {
		if p, ok := po["skin"].(theme.Palette); ok {
			return p, true
		}
	}
	return nil, false
}

// ControlText returns the accessible label, localized, or the conspicuous
// fallback when no label was ever set.
func (c *Clickable) ControlText() string {
	if c.controlText == "" {
		return controlTextFallback
	}
	return c.controlText
}

// SetControlText localizes text and renders it into the label sub-element
// and the element's advisory title.
func (c *Clickable) SetControlText(text string) {
	localized := c.Localize(text)
	c.controlText = localized
	if c.controlTextEl != nil {
		c.controlTextEl.SetText(localized)
	}
	if el := c.El(); el != nil {
		el.SetAttribute("title", localized)
	}
}

// Enabled reports whether the widget currently responds to activation.
func (c *Clickable) Enabled() bool { return c.enabled }

// Enable makes the widget respond to activation again.
func (c *Clickable) Enable() {
	if c.enabled {
		return
	}
	c.enabled = true
	if el := c.El(); el != nil {
		el.RemoveClass("reel-disabled")
		el.RemoveAttribute("aria-disabled")
		el.SetAttribute("tabindex", "0")
	}
}

// Disable stops the widget from responding to activation and removes it
// from the tab order. A focused widget is blurred first.
func (c *Clickable) Disable() {
	if !c.enabled {
		return
	}
	c.applyDisabled()
}

func (c *Clickable) applyDisabled() {
	c.enabled = false
	c.keys.Blur(c.focusNode)
	if el := c.El(); el != nil {
		el.AddClass("reel-disabled")
		el.SetAttribute("aria-disabled", "true")
		el.RemoveAttribute("tabindex")
	}
}

// activate routes one semantic activation through the HandleClick hook.
func (c *Clickable) activate(ev *dom.Event) {
	if !c.enabled || c.Disposed() {
		return
	}
	c.self.HandleClick(ev)
}

// HandleClick is the activation override point. The default implementation
// invokes the configured clickHandler, if any.
func (c *Clickable) HandleClick(ev *dom.Event) {
	switch fn := c.Options()["clickHandler"].(type) {
	case func(*dom.Event):
		fn(ev)
	case func():
		fn()
	}
}

// HandleFocus attaches the widget to keyboard dispatch.
func (c *Clickable) HandleFocus() {
	c.keys.Focus(c.focusNode)
}

// HandleBlur detaches the widget from keyboard dispatch.
func (c *Clickable) HandleBlur() {
	c.keys.Blur(c.focusNode)
}

// handleKey translates Enter and Space into activation while focused.
func (c *Clickable) handleKey(ev *focus.KeyEvent) focus.KeyEventResult {
	if ev.Code != focus.KeyEnter && ev.Code != focus.KeySpace {
		return focus.KeyEventIgnored
	}
	ev.PreventDefault()
	c.activate(dom.NewEvent("click"))
	return focus.KeyEventHandled
}

func init() {
	core.RegisterComponent("ClickableComponent", func(player core.Player, opts core.Options) (core.Component, error) {
		return NewClickable(player, opts)
	})
}
