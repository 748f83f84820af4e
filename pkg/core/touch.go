package core

import (
	"time"

	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/gestures"
	"github.com/go-reel/reel/pkg/sched"
)

// EventTap is the synthesized semantic event unifying short, low-movement
// single-touch gestures with conventional click activation.
const EventTap = "tap"

// touchActivityInterval is how often a held touch reports user activity.
const touchActivityInterval = 250 * time.Millisecond

// EmitTapEvents layers a tap recognizer over the component's raw touch
// events. A qualifying touch sequence suppresses the trailing synthetic
// click (via PreventDefault on the touchend) and dispatches exactly one
// "tap" on the component.
func (c *Base) EmitTapEvents() {
	if c.el == nil {
		return
	}
	recognizer := &gestures.TapRecognizer{Clock: c.loop}

	c.On("touchstart", func(ev *dom.Event) {
		recognizer.TouchStart(touchPoints(ev))
	})
	c.On("touchmove", func(ev *dom.Event) {
		recognizer.TouchMove(touchPoints(ev))
	})
	cancel := func(*dom.Event) {
		recognizer.Cancel()
	}
	c.On("touchleave", cancel)
	c.On("touchcancel", cancel)
	c.On("touchend", func(ev *dom.Event) {
		if recognizer.TouchEnd() {
			ev.PreventDefault()
			c.TriggerType(EventTap)
		}
	})
}

// enableTouchActivity forwards touch interaction to the player's activity
// tracking: an edge report on every transition plus a periodic report while
// the touch is held, since no intermediate events fire under a resting
// finger.
func (c *Base) enableTouchActivity() {
	reporter, ok := c.player.(ActivityReporter)
	if !ok || c.el == nil {
		return
	}
	report := reporter.ReportUserActivity

	var holding sched.TimerID
	c.On("touchstart", func(*dom.Event) {
		report()
		c.ClearInterval(holding)
		holding = c.SetInterval(touchActivityInterval, report)
	})
	c.On("touchmove", func(*dom.Event) {
		report()
	})
	touchEnd := func(*dom.Event) {
		report()
		c.ClearInterval(holding)
	}
	c.On("touchend", touchEnd)
	c.On("touchcancel", touchEnd)
}

// touchPoints converts an event's touch list to recognizer points.
func touchPoints(ev *dom.Event) []gestures.Point {
	if len(ev.Touches) == 0 {
		return nil
	}
	points := make([]gestures.Point, len(ev.Touches))
	for i, t := range ev.Touches {
		points[i] = gestures.Point{X: t.X, Y: t.Y}
	}
	return points
}
