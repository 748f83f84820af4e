package core

import (
	"strings"

	"github.com/go-reel/reel/pkg/dom"
	"github.com/go-reel/reel/pkg/errors"
	"github.com/go-reel/reel/pkg/sched"
)

// Component is one node in a component tree. Concrete types embed [Base];
// the interface exists so trees, the registry, and observed listeners can
// hold any component polymorphically.
type Component interface {
	// ID returns the component id, unique within its player's tree.
	ID() string
	// Name returns the stable key used by the parent's by-name lookup,
	// or "" for unnamed components.
	Name() string
	// El returns the owned platform element, nil after disposal or when
	// element creation was disabled.
	El() *dom.Element
	// ContentEl returns the element children are inserted under.
	ContentEl() *dom.Element
	// Player returns the non-owning back reference to the tree root.
	Player() Player
	// Options returns the merged construction-time configuration.
	// Callers must treat it as read-only.
	Options() Options

	// CreateEl synthesizes the component's element. Override point.
	CreateEl() *dom.Element
	// BuildCSSClass assembles the element's class list contribution.
	// Subtypes append their own tokens and must include the parent's.
	BuildCSSClass() string
	// DefaultOptions returns the class-level option defaults merged
	// under the caller-supplied options at construction.
	DefaultOptions() Options

	AddChild(child Component) Component
	AddNamedChild(name string, opts Options) (Component, error)
	RemoveChild(child Component)
	RemoveChildByName(name string)
	Children() []Component
	GetChild(name string) Component
	GetChildByID(id string) Component

	// Ready registers fn to run once the component is ready. Callbacks
	// always run asynchronously, even when registered after readiness.
	Ready(fn func())
	// TriggerReady transitions to the ready state. One-way.
	TriggerReady()
	// Dispose tears the component down: dispose event, children in
	// reverse insertion order, listeners, element.
	Dispose()

	base() *Base
}

// Target is anything an observed listener can attach to: a component, or a
// bare element wrapped in [ElementTarget].
type Target interface {
	El() *dom.Element
}

type readyState uint8

const (
	readyPending readyState = iota
	readyDone
)

// Base is the canonical Component implementation. It is usable directly as
// a generic container and is the embedding point for every specialization.
type Base struct {
	self   Component
	player Player
	opts   Options
	loop   *sched.Loop

	id   string
	name string

	el        *dom.Element
	contentEl *dom.Element

	children    []Component
	childByID   map[string]Component
	childByName map[string]Component

	ready      readyState
	readyQueue []func()

	timerHooks map[sched.TimerID]*dom.Handler

	disposed bool
}

// New constructs a generic component owned by player.
func New(player Player, opts Options, ready ...func()) (*Base, error) {
	c := &Base{}
	c.SetSelf(c)
	if err := c.Init(player, opts, ready...); err != nil {
		return nil, err
	}
	return c, nil
}

// NewStandalone constructs a root component that acts as its own player,
// for trees mounted without a true player.
func NewStandalone(opts Options, ready ...func()) (*Base, error) {
	c := &Base{}
	c.SetSelf(c)
	if err := c.Init(c, opts, ready...); err != nil {
		return nil, err
	}
	return c, nil
}

// SetSelf registers the outermost value so overridable hooks dispatch
// virtually. Specializations call it before Init.
func (c *Base) SetSelf(self Component) { c.self = self }

// Init resolves configuration, identity, and the element, then instantiates
// declared children. It must run exactly once, after SetSelf. Construction
// never triggers readiness.
func (c *Base) Init(player Player, opts Options, ready ...func()) error {
	c.player = player
	c.opts = Merge(c.self.DefaultOptions(), opts)
	c.name = c.opts.String("name")
	c.loop = c.resolveLoop()

	injected, _ := c.opts["el"].(*dom.Element)
	c.resolveID(injected)

	if injected != nil {
		c.el = injected
	} else if c.opts.Bool("createEl", true) {
		c.el = c.self.CreateEl()
	}
	if c.el != nil && c.el.ID() == "" {
		c.el.SetID(c.id)
	}
	c.contentEl = c.el

	if c.opts.Bool("initChildren", true) {
		if err := c.initChildren(); err != nil {
			return err
		}
	}

	for _, fn := range ready {
		c.Ready(fn)
	}

	if c.opts.Bool("reportTouchActivity", true) {
		c.enableTouchActivity()
	}
	return nil
}

// resolveID picks the id: explicit option, injected element id, or a
// generated id scoped to the player.
func (c *Base) resolveID(injected *dom.Element) {
	if id := c.opts.String("id"); id != "" {
		c.id = id
		return
	}
	if injected != nil && injected.ID() != "" {
		c.id = injected.ID()
		return
	}
	playerID := ""
	if c.player != nil && !c.isOwnPlayer() {
		playerID = c.player.ID()
	}
	c.id = newComponentID(playerID)
}

// isOwnPlayer reports whether the component is its own player, in which
// case its id cannot be derived from the player's.
func (c *Base) isOwnPlayer() bool {
	self, ok := c.self.(Player)
	return ok && Player(self) == c.player
}

// resolveLoop finds the event loop: injected option, player capability,
// then the process default.
func (c *Base) resolveLoop() *sched.Loop {
	if l, ok := c.opts["loop"].(*sched.Loop); ok && l != nil {
		return l
	}
	if p, ok := c.player.(LoopProvider); ok {
		if l := p.Loop(); l != nil {
			return l
		}
	}
	return sched.Default()
}

// ID returns the component id.
func (c *Base) ID() string { return c.id }

// Name returns the component's construction-time name.
func (c *Base) Name() string { return c.name }

// El returns the owned element.
func (c *Base) El() *dom.Element { return c.el }

// ContentEl returns the element children are inserted under. Defaults to
// the component's own element.
func (c *Base) ContentEl() *dom.Element { return c.contentEl }

// SetContentEl redirects child insertion to a descendant of the element,
// e.g. a scrollable body. It may be used at most once, before any children
// are added; later calls are absorbed with a misuse warning.
func (c *Base) SetContentEl(el *dom.Element) {
	if el == nil || c.contentEl != c.el || len(c.children) > 0 {
		errors.Report(errors.Errorf("core.SetContentEl", errors.KindMisuse,
			"content element may only be set once, before children are added").WithComponent(c.id))
		return
	}
	c.contentEl = el
}

// Player returns the owning player handle.
func (c *Base) Player() Player { return c.player }

// Options returns the merged configuration. Read-only by contract.
func (c *Base) Options() Options { return c.opts }

// Loop returns the event loop the component schedules on. It also satisfies
// [LoopProvider], so a standalone root hands its loop to its children.
func (c *Base) Loop() *sched.Loop { return c.loop }

// Disposed reports whether Dispose has run.
func (c *Base) Disposed() bool { return c.disposed }

// CreateEl synthesizes the default element. Specializations override this
// to pick tags, classes, and attributes.
func (c *Base) CreateEl() *dom.Element {
	el := dom.New("div")
	if class := c.self.BuildCSSClass(); class != "" {
		el.SetClassName(class)
	}
	return el
}

// BuildCSSClass returns the base class contribution. Empty for Base;
// specializations append their tokens to their parent type's result.
func (c *Base) BuildCSSClass() string { return "" }

// DefaultOptions returns the class-level defaults. Base has none.
func (c *Base) DefaultOptions() Options { return nil }

// Localize translates text through the player's language dictionaries:
// exact language code first, then its primary subtag, then the source
// string unchanged.
func (c *Base) Localize(text string) string {
	lp, ok := c.player.(LanguageProvider)
	if !ok {
		return text
	}
	code := lp.Language()
	languages := lp.Languages()
	if dict := languages[code]; dict != nil {
		if translated, ok := dict[text]; ok {
			return translated
		}
	}
	if primary, _, found := strings.Cut(code, "-"); found {
		if dict := languages[primary]; dict != nil {
			if translated, ok := dict[text]; ok {
				return translated
			}
		}
	}
	return text
}

func (c *Base) base() *Base { return c }
