package core

import (
	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/sched"
)

// Player is the non-owning handle every component keeps to the root of its
// tree. Only identity is required; everything else is an optional capability
// discovered by type assertion, so tests can hand a component a minimal
// stub and standalone components can act as their own player.
type Player interface {
	ID() string
}

// ActivityReporter is implemented by players that track user activity.
// Components with touch reporting enabled feed it edge-triggered and
// periodic notifications while a touch is held.
type ActivityReporter interface {
	ReportUserActivity()
}

// LanguageProvider is implemented by players that carry localization
// dictionaries. Languages maps a language code to a source-string →
// translation dictionary.
type LanguageProvider interface {
	Language() string
	Languages() map[string]map[string]string
}

// LoopProvider is implemented by players that own an event loop. Components
// schedule ready callbacks and timers on their player's loop so the whole
// tree shares one time domain.
type LoopProvider interface {
	Loop() *sched.Loop
}

// ElementTarget adapts a bare element into a [Target] for ListenTo, for the
// occasional listener on a platform node that no component owns.
type ElementTarget struct {
	Element *dom.Element
}

// El returns the adapted element.
func (t ElementTarget) El() *dom.Element { return t.Element }
