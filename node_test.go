package navstack

import "testing"

func TestAddChildSetsParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewPanel("child", 10, 10)

	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewPanel("child", 10, 10)

	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Error("child should belong to b")
	}
	if a.NumChildren() != 0 {
		t.Error("child should have been removed from a")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddNilChildPanics(t *testing.T) {
	a := NewContainer("a")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	a.AddChild(nil)
}

func TestRemoveChildOfOtherParentPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewPanel("child", 10, 10)
	a.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic removing from wrong parent")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveChildrenDoesNotDispose(t *testing.T) {
	parent := NewContainer("parent")
	c1 := NewPanel("c1", 10, 10)
	c2 := NewPanel("c2", 10, 10)
	parent.AddChild(c1)
	parent.AddChild(c2)

	parent.RemoveChildren()
	if parent.NumChildren() != 0 {
		t.Error("children not removed")
	}
	if c1.IsDisposed() || c2.IsDisposed() {
		t.Error("RemoveChildren must not dispose")
	}
	if c1.Parent != nil || c2.Parent != nil {
		t.Error("parents not cleared")
	}
}

func TestDisposeRecursesAndDetaches(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewPanel("leaf", 10, 10)
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()

	if root.NumChildren() != 0 {
		t.Error("disposed node still attached")
	}
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("dispose should recurse")
	}
	if leaf.Parent != nil {
		t.Error("disposed descendants keep no parent link")
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	n := NewPanel("n", 10, 10)
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("node should stay disposed")
	}
}

func TestDisposeClearsUserData(t *testing.T) {
	n := NewPanel("n", 10, 10)
	n.UserData = "controller"
	n.Dispose()
	if n.UserData != nil {
		t.Error("UserData should be released on dispose")
	}
}

func TestNodeDefaults(t *testing.T) {
	n := NewPanel("n", 32, 24)
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Error("default scale should be 1")
	}
	if n.Alpha != 1 || !n.Visible {
		t.Error("node should start fully visible")
	}
	if n.Color != ColorWhite {
		t.Error("default color should be white")
	}
	if n.Type != NodeTypePanel || n.Width != 32 || n.Height != 24 {
		t.Error("panel constructor fields wrong")
	}
	if NewContainer("c").Type != NodeTypeContainer {
		t.Error("container constructor type wrong")
	}
}
