package core

import (
	"sort"

	"github.com/go-reel/reel/pkg/errors"
)

// AddChild appends an already-constructed component to the tree: the child
// joins the ordered child list, the id/name indexes, and — when both sides
// have elements — the content element. Returns the child.
func (c *Base) AddChild(child Component) Component {
	if child == nil {
		return nil
	}
	if c.disposed {
		c.reportDisposedUse("core.AddChild")
		return child
	}
	c.children = append(c.children, child)

	if id := child.ID(); id != "" {
		if c.childByID == nil {
			c.childByID = make(map[string]Component)
		}
		c.childByID[id] = child
	}
	if name := child.Name(); name != "" {
		if c.childByName == nil {
			c.childByName = make(map[string]Component)
		}
		c.childByName[name] = child
	}

	if el := child.El(); el != nil && c.contentEl != nil {
		c.contentEl.AppendChild(el)
	}
	return child
}

// AddNamedChild resolves name to a registered component type, constructs it
// owned by this component's player (or this component itself when it is the
// root), and adds it. Options declared for the name in this component's own
// configuration shadow the supplied ones. An unknown type name is a
// programmer error and returned as a fatal *errors.Error.
func (c *Base) AddNamedChild(name string, opts Options) (Component, error) {
	if c.disposed {
		c.reportDisposedUse("core.AddNamedChild")
		return nil, nil
	}
	// Stored configuration stays immutable; work on a copy.
	opts = opts.Dup()
	if declared, ok := c.opts[name]; ok {
		if declared == false {
			// Soft-disable: the parent's configuration switched this
			// child off entirely.
			return nil, nil
		}
		if sub, ok := asOptions(declared); ok {
			opts = Merge(opts, sub)
		}
	}

	typeName := opts.String("componentClass")
	if typeName == "" {
		typeName = titleCase(name)
	}
	factory := GetComponent(typeName)
	if factory == nil {
		return nil, errors.Errorf("core.AddNamedChild", errors.KindConfig,
			"no component type registered for %q", typeName).WithComponent(c.id)
	}

	if opts == nil {
		opts = Options{}
	}
	opts["name"] = name

	owner := c.player
	if owner == nil {
		owner, _ = c.self.(Player)
	}
	child, err := factory(owner, opts)
	if err != nil {
		return nil, err
	}
	return c.AddChild(child), nil
}

// RemoveChild detaches child from the tree: the child list, both indexes,
// and the content element — the latter only if the child's element is still
// parented exactly there. No-op on a disposed tree or an unknown child; the
// disposed case is reported through the error handler.
func (c *Base) RemoveChild(child Component) {
	if child == nil {
		return
	}
	if c.disposed {
		c.reportDisposedUse("core.RemoveChild")
		return
	}
	if c.children == nil {
		return
	}
	found := false
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}

	delete(c.childByID, child.ID())
	if name := child.Name(); name != "" {
		delete(c.childByName, name)
	}

	if el := child.El(); el != nil && c.contentEl != nil && el.Parent() == c.contentEl {
		c.contentEl.RemoveChild(el)
	}
}

// RemoveChildByName resolves name and removes the match. An unknown name
// stays a no-op but is reported as a lookup miss, since removing a child
// that was never added usually means a wiring bug.
func (c *Base) RemoveChildByName(name string) {
	if c.disposed {
		c.reportDisposedUse("core.RemoveChildByName")
		return
	}
	child := c.GetChild(name)
	if child == nil {
		errors.Report(errors.Errorf("core.RemoveChildByName", errors.KindLookup,
			"no child named %q", name).WithComponent(c.id))
		return
	}
	c.RemoveChild(child)
}

// Children returns the ordered child components. The slice is shared;
// callers must not mutate it.
func (c *Base) Children() []Component { return c.children }

// GetChild returns the child registered under name, or nil.
func (c *Base) GetChild(name string) Component {
	return c.childByName[name]
}

// GetChildByID returns the child with the given id, or nil.
func (c *Base) GetChildByID(id string) Component {
	return c.childByID[id]
}

// childDecl is one resolved entry of the "children" option.
type childDecl struct {
	name string
	opts Options
	skip bool
}

// initChildren instantiates the children declared in configuration. The
// declaration may be an ordered sequence of names or {name, ...options}
// records, or a name → options mapping; the mapping form is added in sorted
// key order so event wiring stays deterministic. Each child's options gain
// the propagated playerOptions key.
func (c *Base) initChildren() error {
	decls, err := c.childDecls()
	if err != nil {
		return err
	}

	playerOpts := c.opts["playerOptions"]
	for _, decl := range decls {
		if decl.skip {
			continue
		}
		opts := decl.opts.Dup()
		if playerOpts != nil {
			if opts == nil {
				opts = Options{}
			}
			opts["playerOptions"] = playerOpts
		}
		if _, err := c.AddNamedChild(decl.name, opts); err != nil {
			return err
		}
	}
	return nil
}

// childDecls normalizes the "children" option into an ordered declaration
// list.
func (c *Base) childDecls() ([]childDecl, error) {
	raw, ok := c.opts["children"]
	if !ok {
		return nil, nil
	}

	switch v := raw.(type) {
	case []any:
		decls := make([]childDecl, 0, len(v))
		for _, entry := range v {
			switch e := entry.(type) {
			case string:
				decls = append(decls, childDecl{name: e})
			default:
				if opts, ok := asOptions(e); ok {
					name := opts.String("name")
					if name == "" {
						return nil, errors.Errorf("core.initChildren", errors.KindConfig,
							"child record missing name").WithComponent(c.id)
					}
					rest := opts.Dup()
					delete(rest, "name")
					decls = append(decls, childDecl{name: name, opts: rest})
					continue
				}
				return nil, errors.Errorf("core.initChildren", errors.KindConfig,
					"unsupported child entry %T", entry).WithComponent(c.id)
			}
		}
		return decls, nil
	case []string:
		decls := make([]childDecl, 0, len(v))
		for _, name := range v {
			decls = append(decls, childDecl{name: name})
		}
		return decls, nil
	default:
		if mapping, ok := asOptions(raw); ok {
			names := make([]string, 0, len(mapping))
			for name := range mapping {
				names = append(names, name)
			}
			sort.Strings(names)
			decls := make([]childDecl, 0, len(names))
			for _, name := range names {
				value := mapping[name]
				if value == false {
					decls = append(decls, childDecl{name: name, skip: true})
					continue
				}
				opts := coerceChildOptions("core.initChildren", c.id, value)
				decls = append(decls, childDecl{name: name, opts: opts})
			}
			return decls, nil
		}
		return nil, errors.Errorf("core.initChildren", errors.KindConfig,
			"unsupported children declaration %T", raw).WithComponent(c.id)
	}
}

// coerceChildOptions tolerates deprecated scalar shapes in place of an
// options object: true means "defaults", anything else non-object is
// coerced to defaults with a misuse warning.
func coerceChildOptions(op, componentID string, value any) Options {
	switch v := value.(type) {
	case nil:
		return nil
	case Options:
		return v
	case map[string]any:
		return Options(v)
	case bool:
		// true → defaults; false is handled by the callers as a skip.
		return Options{}
	default:
		errors.Report(errors.Errorf(op, errors.KindMisuse,
			"expected options object, got %T; using defaults", v).WithComponent(componentID))
		return Options{}
	}
}

// titleCase upper-cases the first byte, mapping a config-style name like
// "controlBar" onto its registry key "ControlBar".
func titleCase(name string) string {
	if name == "" {
		return name
	}
	if name[0] >= 'a' && name[0] <= 'z' {
		return string(name[0]-'a'+'A') + name[1:]
	}
	return name
}
