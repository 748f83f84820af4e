// Package reeltest provides test doubles for component tests: a
// controllable clock, a stub player, and touch-sequence simulation.
//
// A typical test builds an Env, constructs components against its player,
// and advances fake time between pumps:
//
//	func TestMyWidget(t *testing.T) {
//	    env := reeltest.NewEnv()
//	    c, err := widgets.NewButton(env.Player, env.Options(nil))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    reeltest.Tap(env, c.El())
//	    env.Loop.Pump()
//	}
package reeltest

import (
	"sync"
	"time"

	"github.com/go-reel/reel/pkg/core"
	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/sched"
)

// FakeClock provides controllable time for deterministic lifecycle and
// gesture tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StubPlayer implements the player handle plus every optional capability
// components probe for, recording what they report back.
type StubPlayer struct {
	// PlayerID is returned by ID. Defaults to "player_1".
	PlayerID string
	// Lang and Dictionaries back the language capability.
	Lang         string
	Dictionaries map[string]map[string]string
	// EventLoop backs the loop capability.
	EventLoop *sched.Loop

	// ActivityReports counts ReportUserActivity calls.
	ActivityReports int
}

// ID returns the stub's player id.
func (p *StubPlayer) ID() string { return p.PlayerID }

// ReportUserActivity records one activity report.
func (p *StubPlayer) ReportUserActivity() { p.ActivityReports++ }

// Language returns the configured language code.
func (p *StubPlayer) Language() string { return p.Lang }

// Languages returns the configured dictionaries.
func (p *StubPlayer) Languages() map[string]map[string]string { return p.Dictionaries }

// Loop returns the loop components constructed against this player use.
func (p *StubPlayer) Loop() *sched.Loop { return p.EventLoop }

// Env bundles a fake clock, a loop driven by it, and a stub player wired
// to that loop.
type Env struct {
	Clock  *FakeClock
	Loop   *sched.Loop
	Player *StubPlayer
}

// NewEnv builds a fresh environment for one test.
func NewEnv() *Env {
	clock := NewFakeClock()
	loop := sched.NewWithClock(clock)
	return &Env{
		Clock: clock,
		Loop:  loop,
		Player: &StubPlayer{
			PlayerID:  "player_1",
			EventLoop: loop,
		},
	}
}

// Options returns opts extended with the env's loop, so components built
// outside the player tree still schedule deterministically. A nil opts is
// allowed.
func (e *Env) Options(opts core.Options) core.Options {
	merged := core.Options{"loop": e.Loop}
	return core.Merge(merged, opts)
}

// Advance moves fake time forward and fires everything that came due.
func (e *Env) Advance(d time.Duration) {
	e.Clock.Advance(d)
	e.Loop.Tick()
}

// Touch dispatches one touch event of the given type on el, with one
// contact point per coordinate pair.
func Touch(el *dom.Element, eventType string, points ...dom.TouchPoint) *dom.Event {
	ev := dom.NewEvent(eventType)
	ev.Touches = points
	return el.Trigger(ev)
}

// Tap plays a qualifying tap sequence on el: touchstart and a touchend
// within the recognizer's tolerances. Returns the touchend event so tests
// can inspect DefaultPrevented.
func Tap(env *Env, el *dom.Element) *dom.Event {
	Touch(el, "touchstart", dom.TouchPoint{ID: 1, X: 10, Y: 10})
	env.Clock.Advance(50 * time.Millisecond)
	return Touch(el, "touchend")
}

// FindByClass walks the element tree under root and returns the first
// element carrying the CSS class, or nil.
func FindByClass(root *dom.Element, class string) *dom.Element {
	if root == nil {
		return nil
	}
	if root.HasClass(class) {
		return root
	}
	for _, child := range root.Children() {
		if found := FindByClass(child, class); found != nil {
			return found
		}
	}
	return nil
}
