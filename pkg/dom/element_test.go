package dom

import "testing"

func TestAppendChildDetachesFromPreviousParent(t *testing.T) {
	a := New("div")
	b := New("div")
	child := New("span")

	a.AppendChild(child)
	if child.Parent() != a {
		t.Fatalf("expected parent a, got %v", child.Parent())
	}

	b.AppendChild(child)
	if child.Parent() != b {
		t.Fatalf("expected parent b, got %v", child.Parent())
	}
	if len(a.Children()) != 0 {
		t.Errorf("expected a to have no children, got %d", len(a.Children()))
	}
}

func TestRemoveChildOnlyWhenCurrentParent(t *testing.T) {
	a := New("div")
	b := New("div")
	child := New("span")

	a.AppendChild(child)
	// b is not the current parent; removal must be a no-op.
	b.RemoveChild(child)
	if child.Parent() != a {
		t.Fatalf("expected parent a after foreign RemoveChild, got %v", child.Parent())
	}

	a.RemoveChild(child)
	if child.Parent() != nil {
		t.Fatalf("expected detached child, got parent %v", child.Parent())
	}
	// Removing again is harmless.
	a.RemoveChild(child)
}

func TestAppendChildRejectsCycles(t *testing.T) {
	root := New("div")
	mid := New("div")
	leaf := New("span")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	// An element under itself, and an ancestor under its own descendant.
	root.AppendChild(root)
	leaf.AppendChild(root)
	leaf.AppendChild(mid)

	if root.Parent() != nil {
		t.Fatalf("expected root to stay detached, got parent %v", root.Parent())
	}
	if mid.Parent() != root {
		t.Fatalf("expected mid to stay under root, got parent %v", mid.Parent())
	}
	if len(leaf.Children()) != 0 {
		t.Errorf("expected leaf to have no children, got %d", len(leaf.Children()))
	}
}

func TestContains(t *testing.T) {
	root := New("div")
	mid := New("div")
	leaf := New("span")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	if !root.Contains(leaf) {
		t.Error("expected root to contain leaf")
	}
	if !root.Contains(root) {
		t.Error("expected root to contain itself")
	}
	if leaf.Contains(root) {
		t.Error("did not expect leaf to contain root")
	}
}

func TestClassList(t *testing.T) {
	e := New("button")
	e.AddClass("reel-button")
	e.AddClass("reel-control")
	e.AddClass("reel-button") // duplicate is ignored

	if got := e.ClassName(); got != "reel-button reel-control" {
		t.Errorf("ClassName = %q", got)
	}

	e.RemoveClass("reel-button")
	if e.HasClass("reel-button") {
		t.Error("expected reel-button removed")
	}
	if !e.HasClass("reel-control") {
		t.Error("expected reel-control kept")
	}

	e.SetClassName("a b a")
	if got := e.ClassName(); got != "a b" {
		t.Errorf("ClassName after SetClassName = %q", got)
	}
}

func TestAttributes(t *testing.T) {
	e := New("button")
	e.SetAttribute("role", "button")
	e.SetAttribute("aria-live", "polite")

	if v, ok := e.Attribute("role"); !ok || v != "button" {
		t.Errorf("Attribute(role) = %q, %v", v, ok)
	}

	e.RemoveAttribute("role")
	if _, ok := e.Attribute("role"); ok {
		t.Error("expected role removed")
	}

	names := e.AttributeNames()
	if len(names) != 1 || names[0] != "aria-live" {
		t.Errorf("AttributeNames = %v", names)
	}
}
