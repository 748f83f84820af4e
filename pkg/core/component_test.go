package core

import (
	"sync"
	"testing"
	"time"

	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/sched"
)

// fakeClock drives the test loop deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// stubPlayer is a minimal duck-typed player exposing every optional
// capability the substrate probes for.
type stubPlayer struct {
	id        string
	loop      *sched.Loop
	language  string
	languages map[string]map[string]string
	activity  int
}

func (p *stubPlayer) ID() string        { return p.id }
func (p *stubPlayer) Loop() *sched.Loop { return p.loop }
func (p *stubPlayer) Language() string  { return p.language }
func (p *stubPlayer) Languages() map[string]map[string]string {
	return p.languages
}
func (p *stubPlayer) ReportUserActivity() { p.activity++ }

// testEnv bundles the clock, loop, and player most tests need.
type testEnv struct {
	clock  *fakeClock
	loop   *sched.Loop
	player *stubPlayer
}

func newTestEnv() *testEnv {
	clock := newFakeClock()
	loop := sched.NewWithClock(clock)
	return &testEnv{
		clock:  clock,
		loop:   loop,
		player: &stubPlayer{id: "player_1", loop: loop},
	}
}

func mustNew(t *testing.T, player Player, opts Options) *Base {
	t.Helper()
	c, err := New(player, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestConstructionCreatesElement(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)

	if c.El() == nil {
		t.Fatal("expected a synthesized element")
	}
	if c.ContentEl() != c.El() {
		t.Error("content element should default to the element")
	}
	if c.El().ID() != c.ID() {
		t.Errorf("element id %q != component id %q", c.El().ID(), c.ID())
	}
}

func TestConstructionWithCreateElDisabled(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, Options{"createEl": false})
	if c.El() != nil {
		t.Error("expected no element with createEl disabled")
	}
}

func TestConstructionWithInjectedElement(t *testing.T) {
	env := newTestEnv()
	el := dom.New("section")
	el.SetID("bespoke")
	c := mustNew(t, env.player, Options{"el": el})

	if c.El() != el {
		t.Error("injected element not used verbatim")
	}
	if c.ID() != "bespoke" {
		t.Errorf("id = %q, want element id", c.ID())
	}
}

func TestExplicitIDWins(t *testing.T) {
	env := newTestEnv()
	el := dom.New("div")
	el.SetID("element_id")
	c := mustNew(t, env.player, Options{"id": "explicit", "el": el})
	if c.ID() != "explicit" {
		t.Errorf("id = %q", c.ID())
	}
}

func TestGeneratedIDScopedToPlayer(t *testing.T) {
	env := newTestEnv()
	a := mustNew(t, env.player, nil)
	b := mustNew(t, env.player, nil)

	if a.ID() == b.ID() {
		t.Error("generated ids must be unique")
	}
	for _, c := range []*Base{a, b} {
		if want := "player_1_component_"; len(c.ID()) <= len(want) || c.ID()[:len(want)] != want {
			t.Errorf("id = %q, want prefix %q", c.ID(), want)
		}
	}
}

func TestStandaloneIsItsOwnPlayer(t *testing.T) {
	c, err := NewStandalone(Options{"loop": sched.NewWithClock(newFakeClock())})
	if err != nil {
		t.Fatalf("NewStandalone: %v", err)
	}
	if c.Player() != Player(c) {
		t.Error("standalone component should be its own player")
	}
}

func TestDefaultOptionsMergedUnderOverrides(t *testing.T) {
	env := newTestEnv()
	c := &defaultedComponent{}
	c.SetSelf(c)
	if err := c.Init(env.player, Options{"flavor": "sour"}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if c.Options().String("flavor") != "sour" {
		t.Errorf("flavor = %q, want override to win", c.Options().String("flavor"))
	}
	if c.Options().String("size") != "medium" {
		t.Errorf("size = %q, want class default kept", c.Options().String("size"))
	}
}

// defaultedComponent carries class-level default options.
type defaultedComponent struct {
	Base
}

func (c *defaultedComponent) DefaultOptions() Options {
	return Options{"flavor": "sweet", "size": "medium"}
}

func TestLocalizeFallbackChain(t *testing.T) {
	env := newTestEnv()
	env.player.language = "pt-BR"
	env.player.languages = map[string]map[string]string{
		"pt-BR": {"Play": "Reproduzir"},
		"pt":    {"Play": "Tocar", "Pause": "Pausa"},
	}
	c := mustNew(t, env.player, nil)

	if got := c.Localize("Play"); got != "Reproduzir" {
		t.Errorf("exact code: %q", got)
	}
	if got := c.Localize("Pause"); got != "Pausa" {
		t.Errorf("primary subtag: %q", got)
	}
	if got := c.Localize("Fullscreen"); got != "Fullscreen" {
		t.Errorf("untranslated: %q", got)
	}
}

func TestLocalizeWithoutDictionaries(t *testing.T) {
	loop := sched.NewWithClock(newFakeClock())
	c := mustNew(t, &stubPlayer{id: "p", loop: loop}, nil)
	if got := c.Localize("Play"); got != "Play" {
		t.Errorf("Localize = %q", got)
	}
}

func TestSetContentElOnlyBeforeChildren(t *testing.T) {
	env := newTestEnv()
	c := mustNew(t, env.player, nil)
	body := dom.New("div")
	c.El().AppendChild(body)

	c.SetContentEl(body)
	if c.ContentEl() != body {
		t.Fatal("content element not redirected")
	}

	// A second call is absorbed.
	other := dom.New("div")
	c.SetContentEl(other)
	if c.ContentEl() != body {
		t.Error("content element must be settable at most once")
	}
}
