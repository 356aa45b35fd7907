package navstack

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTransitionDuration is the length of the default traversal
// animation, in seconds.
const DefaultTransitionDuration float32 = 0.3

// Animator produces the transition animation for a traversal. The stack
// resolves a screen's own TransitionAuthor capability first and only falls
// back to its Animator when the capability is absent or returns nil.
type Animator interface {
	Animate(from, to *Node, direction Direction) *Animation
}

// TransitionAuthor is the capability probe for per-screen custom
// transitions. A screen controller attached to its view's UserData may
// implement it; returning nil falls back to the stack's default animator.
type TransitionAuthor interface {
	CreateTransition(from *Node) *Animation
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha and their FromTo variants) and call Update(dt) each frame. The
// group auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
//
// There is no global animation manager — the Stage pumps the groups of every
// Animation it runs, and users driving a group directly call Update
// themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the node dirty. If the target node has been disposed,
// Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY
// from their current values to the given targets.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenScaleFromTo(node, node.ScaleX, node.ScaleY, toSX, toSY, duration, fn)
}

// TweenScaleFromTo creates a TweenGroup that animates node.ScaleX and
// node.ScaleY between explicit start and end values.
func TweenScaleFromTo(node *Node, fromSX, fromSY, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(fromSX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(fromSY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha from its current
// value to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenAlphaFromTo(node, node.Alpha, to, duration, fn)
}

// TweenAlphaFromTo creates a TweenGroup that animates node.Alpha between
// explicit start and end values.
func TweenAlphaFromTo(node *Node, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// Animation is one transition unit: a set of tween groups advancing
// concurrently, with a one-shot completion callback. The Stage pumps it each
// frame; completion of the unit signals completion of the whole traversal.
type Animation struct {
	groups     []*TweenGroup
	onComplete func()
	finished   bool
}

// NewAnimation bundles tween groups into a single animation unit.
func NewAnimation(groups ...*TweenGroup) *Animation {
	return &Animation{groups: groups}
}

// Update advances every group by dt seconds.
func (a *Animation) Update(dt float32) {
	for _, g := range a.groups {
		g.Update(dt)
	}
}

// Done reports whether every group has finished.
func (a *Animation) Done() bool {
	for _, g := range a.groups {
		if !g.Done {
			return false
		}
	}
	return true
}

// finish invokes the completion callback exactly once.
func (a *Animation) finish() {
	if a.finished {
		return
	}
	a.finished = true
	if a.onComplete != nil {
		a.onComplete()
	}
}

// defaultAnimator implements the stock traversal transition: the outgoing
// view fades out while scaling to 0.9x (forward) or 1.1x (back), the
// incoming view fades from half opacity to full while scaling from the
// mirrored factor back to 1.0, both with an overshoot ease over
// DefaultTransitionDuration.
type defaultAnimator struct{}

func (defaultAnimator) Animate(from, to *Node, direction Direction) *Animation {
	centerPivot(from)
	centerPivot(to)

	fromScale, toScale := 0.9, 1.1
	if direction == DirectionBack {
		fromScale, toScale = 1.1, 0.9
	}

	d := DefaultTransitionDuration
	return NewAnimation(
		TweenAlpha(from, 0, d, ease.OutBack),
		TweenScale(from, fromScale, fromScale, d, ease.OutBack),
		TweenAlphaFromTo(to, 0.5, 1.0, d, ease.OutBack),
		TweenScaleFromTo(to, toScale, toScale, 1.0, 1.0, d, ease.OutBack),
	)
}

// centerPivot moves an unpivoted node's pivot to its measured center,
// compensating X/Y so the node keeps its position, so that the scale tweens
// read as a zoom about the view's center rather than its top-left corner.
func centerPivot(n *Node) {
	if n.PivotX != 0 || n.PivotY != 0 {
		return
	}
	w, h := measureNode(n)
	if w <= 0 && h <= 0 {
		return
	}
	n.PivotX = w / 2
	n.PivotY = h / 2
	n.X += w / 2
	n.Y += h / 2
	n.transformDirty = true
}
