package dom

import "testing"

func TestOnOffByToken(t *testing.T) {
	e := New("div")
	calls := 0
	h := NewHandler(func(*Event) { calls++ })

	e.On("click", h)
	e.TriggerType("click")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// A distinct handler wrapping the same token removes the original.
	e.Off("click", h.WithToken(func(*Event) {}))
	e.TriggerType("click")
	if calls != 1 {
		t.Errorf("calls after Off = %d, want 1", calls)
	}
}

func TestOffAllOfType(t *testing.T) {
	e := New("div")
	calls := 0
	e.On("play", NewHandler(func(*Event) { calls++ }))
	e.On("play", NewHandler(func(*Event) { calls++ }))

	e.Off("play", nil)
	e.TriggerType("play")
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestOneFiresOnce(t *testing.T) {
	e := New("div")
	calls := 0
	e.One("ready", NewHandler(func(*Event) { calls++ }))

	e.TriggerType("ready")
	e.TriggerType("ready")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestOneRemovableByTokenBeforeFiring(t *testing.T) {
	e := New("div")
	calls := 0
	h := NewHandler(func(*Event) { calls++ })
	e.One("ready", h)

	e.Off("ready", h)
	e.TriggerType("ready")
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestBubbling(t *testing.T) {
	parent := New("div")
	child := New("div")
	parent.AppendChild(child)

	var order []string
	child.On("tap", NewHandler(func(ev *Event) {
		order = append(order, "child")
		if ev.Target != child || ev.CurrentTarget != child {
			t.Errorf("child saw target=%v current=%v", ev.Target, ev.CurrentTarget)
		}
	}))
	parent.On("tap", NewHandler(func(ev *Event) {
		order = append(order, "parent")
		if ev.Target != child || ev.CurrentTarget != parent {
			t.Errorf("parent saw target=%v current=%v", ev.Target, ev.CurrentTarget)
		}
	}))

	child.Trigger(NewBubblingEvent("tap"))
	if len(order) != 2 || order[0] != "child" || order[1] != "parent" {
		t.Errorf("order = %v", order)
	}
}

func TestStopPropagation(t *testing.T) {
	parent := New("div")
	child := New("div")
	parent.AppendChild(child)

	parentCalls := 0
	child.On("tap", NewHandler(func(ev *Event) { ev.StopPropagation() }))
	parent.On("tap", NewHandler(func(*Event) { parentCalls++ }))

	child.Trigger(NewBubblingEvent("tap"))
	if parentCalls != 0 {
		t.Errorf("parentCalls = %d, want 0", parentCalls)
	}
}

func TestNonBubblingStaysLocal(t *testing.T) {
	parent := New("div")
	child := New("div")
	parent.AppendChild(child)

	parentCalls := 0
	parent.On(EventDispose, NewHandler(func(*Event) { parentCalls++ }))

	child.TriggerType(EventDispose)
	if parentCalls != 0 {
		t.Errorf("parentCalls = %d, want 0", parentCalls)
	}
}

func TestReleaseFiresDisposeThenGoesSilent(t *testing.T) {
	e := New("div")
	disposed := 0
	e.On(EventDispose, NewHandler(func(*Event) { disposed++ }))

	e.Release()
	if disposed != 1 {
		t.Fatalf("disposed = %d, want 1", disposed)
	}

	clicks := 0
	e.On("click", NewHandler(func(*Event) { clicks++ }))
	e.TriggerType("click")
	if clicks != 1 {
		// Listeners added after Release still work; Release only clears
		// prior bookkeeping. The element itself was not destroyed.
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestHandlersMayMutateRegistrationsDuringDispatch(t *testing.T) {
	e := New("div")
	var second *Handler
	secondCalls := 0
	second = NewHandler(func(*Event) { secondCalls++ })

	first := NewHandler(func(*Event) { e.Off("click", second) })
	e.On("click", first)
	e.On("click", second)

	// The dispatch snapshot means removal takes effect on the next trigger.
	e.TriggerType("click")
	if secondCalls != 1 {
		t.Fatalf("secondCalls = %d, want 1", secondCalls)
	}
	e.TriggerType("click")
	if secondCalls != 1 {
		t.Errorf("secondCalls after removal = %d, want 1", secondCalls)
	}
}
