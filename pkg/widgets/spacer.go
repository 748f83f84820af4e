package widgets

import (
	"strings"

	"github.com/go-reel/reel/pkg/core"
)

// Spacer is a passive filler that pushes its control-bar siblings apart.
// It has no behavior of its own; layout comes entirely from its CSS class.
type Spacer struct {
	core.Base
}

// NewSpacer constructs a Spacer for the given player.
func NewSpacer(player core.Player, opts core.Options) (*Spacer, error) {
	s := &Spacer{}
	s.SetSelf(s)
	if err := s.Init(player, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildCSSClass appends the spacer token to the parent contribution.
func (s *Spacer) BuildCSSClass() string {
	return strings.TrimSpace("reel-spacer " + s.Base.BuildCSSClass())
}

func init() {
	core.RegisterComponent("Spacer", func(player core.Player, opts core.Options) (core.Component, error) {
		return NewSpacer(player, opts)
	})
}
