package widgets

import (
	"strings"

	"github.com/go-reel/reel/pkg/core"
	"github.com/go-reel/reel/pkg/dom"
)

// Button is the standard interactive widget: a native button element with
// the Clickable activation and labeling behavior. Visual variants embed
// Button and extend BuildCSSClass and HandleClick.
type Button struct {
	Clickable
}

// NewButton constructs a Button for the given player.
func NewButton(player core.Player, opts core.Options) (*Button, error) {
	b := &Button{}
	b.SetSelf(b)
	if err := b.Init(player, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// BuildCSSClass appends the button token to the Clickable contribution.
func (b *Button) BuildCSSClass() string {
	return strings.TrimSpace("reel-button " + b.Clickable.BuildCSSClass())
}

// CreateEl synthesizes a native button element. The explicit type attribute
// keeps the button from submitting enclosing forms.
func (b *Button) CreateEl() *dom.Element {
	el := b.createInteractiveEl("button")
	el.SetAttribute("type", "button")
	return el
}

func init() {
	core.RegisterComponent("Button", func(player core.Player, opts core.Options) (core.Component, error) {
		return NewButton(player, opts)
	})
}
