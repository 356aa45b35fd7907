package navstack

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestStepPumpsGatesBeforeAnimations(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)

	// An animation started inside a measure gate gets its first update in
	// the same frame.
	stage.WaitForMeasure(panel, func(n *Node, w, h float64) {
		stage.Run(NewAnimation(TweenAlphaFromTo(n, 1, 0, 0.3, ease.Linear)))
	})

	stage.Step(0.1)
	if panel.Alpha >= 1 {
		t.Fatalf("alpha = %f, animation should have advanced this frame", panel.Alpha)
	}
}

func TestRunNilAnimationIsNoop(t *testing.T) {
	stage := NewStage()
	stage.Run(nil)
	stage.Step(0.1) // must not panic
}

func TestAnimationCompletionFiresOnce(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)

	a := NewAnimation(TweenAlphaFromTo(panel, 1, 0, 0.2, ease.Linear))
	var completions int
	a.onComplete = func() { completions++ }
	stage.Run(a)

	for i := 0; i < 5; i++ {
		stage.Step(0.1)
	}
	if completions != 1 {
		t.Fatalf("onComplete ran %d times, want 1", completions)
	}
	if len(stage.anims) != 0 {
		t.Fatal("finished animation still scheduled")
	}
}

func TestCompletionMayChainAnimations(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)

	second := NewAnimation(TweenAlphaFromTo(panel, 0, 1, 0.1, ease.Linear))
	first := NewAnimation(TweenAlphaFromTo(panel, 1, 0, 0.1, ease.Linear))
	first.onComplete = func() { stage.Run(second) }
	stage.Run(first)

	for i := 0; i < 6; i++ {
		stage.Step(0.1)
	}
	if !second.Done() {
		t.Fatal("chained animation never ran to completion")
	}
	if !approxEq(panel.Alpha, 1) {
		t.Fatalf("alpha = %f, want 1 after the chained fade-in", panel.Alpha)
	}
}

func TestStepRefreshesWorldTransforms(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)
	panel.SetPosition(30, 40)

	stage.Step(0.1)

	x, y := transformPoint(panel.worldTransform, 0, 0)
	if !approxEq(x, 30) || !approxEq(y, 40) {
		t.Errorf("world origin = (%f, %f), want (30, 40)", x, y)
	}
}

func TestUpdateAdvancesAtTickRate(t *testing.T) {
	stage := NewStage()
	panel := NewPanel("panel", 100, 50)
	stage.Root().AddChild(panel)
	stage.Run(NewAnimation(TweenAlphaFromTo(panel, 1, 0, 0.05, ease.Linear)))

	// 0.05s at the default 60 TPS is at most 4 frames.
	for i := 0; i < 10; i++ {
		stage.Update()
	}
	if !approxEq(panel.Alpha, 0) {
		t.Fatalf("alpha = %f, want 0", panel.Alpha)
	}
}
