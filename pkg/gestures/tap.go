// Package gestures provides touch gesture recognizers for the component
// substrate. Recognizers are fed raw touch transitions and synthesize
// semantic gestures; they know nothing about elements or components.
package gestures

import (
	"math"
	"time"
)

// Defaults for tap qualification. Displacement is in device-independent
// pixels.
const (
	DefaultTapMoveTolerance = 10.0
	DefaultTapMaxDuration   = 200 * time.Millisecond
)

// Clock abstracts time so tests can drive the recognizer deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Point is a touch position in device-independent pixels.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TapRecognizer recognizes a short, low-displacement single-touch tap.
//
// Feed it the raw touch transitions of one element; when a touch sequence
// ends within MaxDuration of its start without exceeding MoveTolerance and
// without ever gaining a second contact point, TouchEnd reports a tap.
// Mobile platforms emit synthetic clicks unreliably after touch, which is
// why tap is recognized independently of click.
type TapRecognizer struct {
	// MoveTolerance is the maximum displacement before the candidate is
	// cancelled. Zero means DefaultTapMoveTolerance.
	MoveTolerance float64
	// MaxDuration is the maximum press duration for a tap. Zero means
	// DefaultTapMaxDuration.
	MaxDuration time.Duration
	// Clock supplies time; nil means the system clock.
	Clock Clock

	couldBeTap bool
	start      Point
	startTime  time.Time
}

func (r *TapRecognizer) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now()
	}
	return systemClock{}.Now()
}

func (r *TapRecognizer) moveTolerance() float64 {
	if r.MoveTolerance > 0 {
		return r.MoveTolerance
	}
	return DefaultTapMoveTolerance
}

func (r *TapRecognizer) maxDuration() time.Duration {
	if r.MaxDuration > 0 {
		return r.MaxDuration
	}
	return DefaultTapMaxDuration
}

// TouchStart begins a tap candidate. More than one contact point, or a
// start while a candidate is already tracked, cancels recognition for the
// rest of the sequence.
func (r *TapRecognizer) TouchStart(points []Point) {
	if len(points) != 1 {
		r.couldBeTap = false
		return
	}
	r.couldBeTap = true
	r.start = points[0]
	r.startTime = r.now()
}

// TouchMove updates the candidate with the current contact points.
func (r *TapRecognizer) TouchMove(points []Point) {
	if !r.couldBeTap {
		return
	}
	if len(points) != 1 {
		r.couldBeTap = false
		return
	}
	if points[0].Distance(r.start) > r.moveTolerance() {
		r.couldBeTap = false
	}
}

// Cancel unconditionally drops the current candidate. Fed from touchleave
// and touchcancel.
func (r *TapRecognizer) Cancel() {
	r.couldBeTap = false
}

// TouchEnd finishes the sequence and reports whether it qualified as a tap.
func (r *TapRecognizer) TouchEnd() bool {
	if !r.couldBeTap {
		return false
	}
	r.couldBeTap = false
	return r.now().Sub(r.startTime) < r.maxDuration()
}
