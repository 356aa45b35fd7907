package navstack

import "testing"

func TestWaitForMeasureFiresOnceWithSize(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)

	var fired int
	var gotW, gotH float64
	stage.WaitForMeasure(panel, func(n *Node, w, h float64) {
		fired++
		gotW, gotH = w, h
	})

	for i := 0; i < 3; i++ {
		stage.Step(0.1)
	}
	if fired != 1 {
		t.Fatalf("gate fired %d times, want 1", fired)
	}
	if gotW != 100 || gotH != 50 {
		t.Errorf("measured %fx%f, want 100x50", gotW, gotH)
	}
}

func TestWaitForMeasureHoldsOnDegenerateSize(t *testing.T) {
	stage := NewStage()
	empty := NewContainer("empty")
	stage.Root().AddChild(empty)

	var fired int
	stage.WaitForMeasure(empty, func(*Node, float64, float64) { fired++ })

	stage.Step(0.1)
	stage.Step(0.1)
	if fired != 0 {
		t.Fatal("gate fired for a zero-size node")
	}
	if len(stage.gates) != 1 {
		t.Fatal("unfired gate should stay pending")
	}

	// The gate fires as soon as a layout pass sees a size.
	empty.AddChild(NewPanel("content", 20, 20))
	stage.Step(0.1)
	if fired != 1 {
		t.Fatal("gate should fire once the node measures")
	}
}

func TestWaitForMeasureDropsDetachedNode(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)

	var fired int
	stage.WaitForMeasure(panel, func(*Node, float64, float64) { fired++ })

	stage.Step(0.1)
	if fired != 0 {
		t.Fatal("gate fired for a detached node")
	}
	if len(stage.gates) != 0 {
		t.Fatal("gate for a detached node should be dropped, not retried")
	}
}

func TestWaitForMeasureDropsDisposedNode(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)

	var fired int
	stage.WaitForMeasure(panel, func(*Node, float64, float64) { fired++ })
	panel.Dispose()

	stage.Step(0.1)
	if fired != 0 || len(stage.gates) != 0 {
		t.Fatal("gate for a disposed node should be dropped silently")
	}
}

func TestWaitForMeasureNilNodePanics(t *testing.T) {
	stage := NewStage()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil node")
		}
	}()
	stage.WaitForMeasure(nil, func(*Node, float64, float64) {})
}

func TestMeasureNodeExplicitSize(t *testing.T) {
	panel := NewPanel("panel", 100, 50)
	if w, h := measureNode(panel); w != 100 || h != 50 {
		t.Errorf("measured %fx%f, want 100x50", w, h)
	}
}

func TestMeasureNodeChildrenExtent(t *testing.T) {
	container := NewContainer("container")
	a := NewPanel("a", 100, 50)
	a.SetPosition(10, 0)
	b := NewPanel("b", 20, 20)
	b.SetPosition(0, 90)
	container.AddChild(a)
	container.AddChild(b)

	if w, h := measureNode(container); w != 110 || h != 110 {
		t.Errorf("measured %fx%f, want 110x110", w, h)
	}
}

func TestMeasureNodeScaledChild(t *testing.T) {
	container := NewContainer("container")
	child := NewPanel("child", 50, 50)
	child.SetScale(2, 2)
	container.AddChild(child)

	if w, h := measureNode(container); w != 100 || h != 100 {
		t.Errorf("measured %fx%f, want 100x100", w, h)
	}
}

func TestMeasureNodeIgnoresInvisibleChildren(t *testing.T) {
	container := NewContainer("container")
	child := NewPanel("child", 50, 50)
	child.Visible = false
	container.AddChild(child)

	if w, h := measureNode(container); w != 0 || h != 0 {
		t.Errorf("invisible child measured into %fx%f", w, h)
	}
}
