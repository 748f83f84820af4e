// Package sched provides the single-threaded event loop that drives the
// component substrate: a task queue plus one-shot and periodic timers, all
// executed on whichever goroutine pumps the loop.
//
// Components never touch platform timers directly; they go through a [Loop]
// so pending work can be cancelled when the owning component is torn down.
// Tests install a fake clock and pump the loop manually for deterministic
// ordering; [Loop.Run] drives it against real time.
package sched

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time for the loop. The zero configuration uses real time;
// tests substitute a controllable implementation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TimerID addresses a pending timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	interval time.Duration // zero for one-shot timers
	fn       func()
}

// Loop is a cooperatively pumped task queue with timers.
//
// Posting is safe from any goroutine; execution happens only inside Pump,
// Tick, or Run, which the owner is expected to call from a single goroutine.
type Loop struct {
	mu     sync.Mutex
	clock  Clock
	tasks  []func()
	timers map[TimerID]*timer
	nextID TimerID
	wake   chan struct{}
}

// New creates a loop driven by real time.
func New() *Loop {
	return NewWithClock(systemClock{})
}

// NewWithClock creates a loop using the given clock.
func NewWithClock(clock Clock) *Loop {
	return &Loop{
		clock:  clock,
		timers: make(map[TimerID]*timer),
		wake:   make(chan struct{}, 1),
	}
}

// Now returns the loop clock's current time.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clock.Now()
}

// Post enqueues fn to run on the next pump.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.wakeUp()
}

// SetTimeout schedules fn to run once after d and returns its id.
func (l *Loop) SetTimeout(d time.Duration, fn func()) TimerID {
	return l.addTimer(d, 0, fn)
}

// SetInterval schedules fn to run every d until cleared and returns its id.
func (l *Loop) SetInterval(d time.Duration, fn func()) TimerID {
	return l.addTimer(d, d, fn)
}

func (l *Loop) addTimer(d, interval time.Duration, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.timers[id] = &timer{
		id:       id,
		deadline: l.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
	}
	l.mu.Unlock()
	l.wakeUp()
	return id
}

// ClearTimer cancels a pending timer. Unknown ids are ignored, so clearing
// an already-fired one-shot timer is harmless.
func (l *Loop) ClearTimer(id TimerID) {
	l.mu.Lock()
	delete(l.timers, id)
	l.mu.Unlock()
}

// HasTimer reports whether id is still pending.
func (l *Loop) HasTimer(id TimerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.timers[id]
	return ok
}

// Pump drains the task queue, including tasks enqueued by tasks it runs.
func (l *Loop) Pump() {
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.tasks
		l.tasks = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}

// Tick fires every timer whose deadline has passed according to the loop
// clock, re-arming intervals, then drains the task queue. Due timers fire in
// deadline order; an interval fires at most once per tick even if the clock
// jumped past several periods.
func (l *Loop) Tick() {
	now := l.clock.Now()
	for {
		t := l.popDue(now)
		if t == nil {
			break
		}
		t.fn()
	}
	l.Pump()
}

// popDue removes and returns the earliest due timer, re-arming intervals.
func (l *Loop) popDue(now time.Time) *timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	var earliest *timer
	for _, t := range l.timers {
		if t.deadline.After(now) {
			continue
		}
		if earliest == nil || t.deadline.Before(earliest.deadline) ||
			(t.deadline.Equal(earliest.deadline) && t.id < earliest.id) {
			earliest = t
		}
	}
	if earliest == nil {
		return nil
	}
	if earliest.interval > 0 {
		earliest.deadline = now.Add(earliest.interval)
	} else {
		delete(l.timers, earliest.id)
	}
	return earliest
}

// nextDeadline returns the earliest pending deadline, or ok=false when no
// timers are pending.
func (l *Loop) nextDeadline() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var earliest time.Time
	found := false
	for _, t := range l.timers {
		if !found || t.deadline.Before(earliest) {
			earliest = t.deadline
			found = true
		}
	}
	return earliest, found
}

func (l *Loop) wakeUp() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run pumps the loop against real time until ctx is cancelled. It sleeps
// between work, waking for newly posted tasks and due timers.
func (l *Loop) Run(ctx context.Context) {
	for {
		l.Tick()

		var sleep <-chan time.Time
		var pending *time.Timer
		if deadline, ok := l.nextDeadline(); ok {
			d := time.Until(deadline)
			if d < 0 {
				d = 0
			}
			pending = time.NewTimer(d)
			sleep = pending.C
		}

		select {
		case <-ctx.Done():
			if pending != nil {
				pending.Stop()
			}
			return
		case <-l.wake:
		case <-sleep:
		}
		if pending != nil {
			pending.Stop()
		}
	}
}

var (
	defaultLoop *Loop
	defaultOnce sync.Once
)

// Default returns the process-wide loop, creating it on first use.
// Standalone components fall back to it when no player supplies one.
func Default() *Loop {
	defaultOnce.Do(func() { defaultLoop = New() })
	return defaultLoop
}
