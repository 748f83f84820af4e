package core

import (
	"testing"
	"time"

	"github.com/go-reel/reel/pkg/dom"
)

// touch fabricates a touch event with the given contact points.
func touch(eventType string, points ...dom.TouchPoint) *dom.Event {
	ev := dom.NewEvent(eventType)
	ev.Touches = points
	return ev
}

func TestTapSynthesizedForQuickStillTouch(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	c.EmitTapEvents()

	taps := 0
	c.On(EventTap, func(*dom.Event) { taps++ })

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 50, Y: 50}))
	c.Trigger(touch("touchmove", dom.TouchPoint{ID: 1, X: 53, Y: 54}))
	env.clock.Advance(150 * time.Millisecond)
	end := c.Trigger(touch("touchend"))

	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
	if !end.DefaultPrevented() {
		t.Error("touchend default (synthetic click) should be suppressed")
	}
}

func TestNoTapForSlowTouch(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	c.EmitTapEvents()

	taps := 0
	c.On(EventTap, func(*dom.Event) { taps++ })

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 50, Y: 50}))
	env.clock.Advance(300 * time.Millisecond)
	end := c.Trigger(touch("touchend"))

	if taps != 0 {
		t.Errorf("taps = %d, want 0", taps)
	}
	if end.DefaultPrevented() {
		t.Error("non-tap touchend must not suppress the click")
	}
}

func TestNoTapForMultiTouch(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	c.EmitTapEvents()

	taps := 0
	c.On(EventTap, func(*dom.Event) { taps++ })

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 50, Y: 50}))
	c.Trigger(touch("touchmove",
		dom.TouchPoint{ID: 1, X: 50, Y: 50},
		dom.TouchPoint{ID: 2, X: 80, Y: 80}))
	env.clock.Advance(100 * time.Millisecond)
	c.Trigger(touch("touchend"))

	if taps != 0 {
		t.Errorf("taps = %d, want 0", taps)
	}
}

func TestNoTapAfterTouchCancel(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	c.EmitTapEvents()

	taps := 0
	c.On(EventTap, func(*dom.Event) { taps++ })

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 50, Y: 50}))
	c.Trigger(touch("touchcancel"))
	c.Trigger(touch("touchend"))

	if taps != 0 {
		t.Errorf("taps = %d, want 0", taps)
	}
}

func TestTouchActivityReportedWhileHeld(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	_ = c

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 10, Y: 10}))
	if env.player.activity != 1 {
		t.Fatalf("activity after touchstart = %d, want 1", env.player.activity)
	}

	// Holding still: the periodic reporter keeps the player awake.
	for i := 0; i < 3; i++ {
		env.clock.Advance(250 * time.Millisecond)
		env.loop.Tick()
	}
	if env.player.activity != 4 {
		t.Errorf("activity while held = %d, want 4", env.player.activity)
	}

	c.Trigger(touch("touchend"))
	if env.player.activity != 5 {
		t.Errorf("activity after touchend = %d, want 5", env.player.activity)
	}

	// The hold interval stops with the touch.
	env.clock.Advance(time.Second)
	env.loop.Tick()
	if env.player.activity != 5 {
		t.Errorf("activity after release = %d, want 5", env.player.activity)
	}
}

func TestTouchActivityDisabledByOption(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, Options{"reportTouchActivity": false})

	c.Trigger(touch("touchstart", dom.TouchPoint{ID: 1, X: 10, Y: 10}))
	if env.player.activity != 0 {
		t.Errorf("activity = %d, want 0 with reporting disabled", env.player.activity)
	}
}
