package navstack

import (
	"fmt"
	"os"
)

// MeasuredFunc is invoked exactly once when a node's first layout pass
// completes with a non-degenerate size.
type MeasuredFunc func(n *Node, width, height float64)

// measureGate is a pending WaitForMeasure registration.
type measureGate struct {
	node *Node
	fn   MeasuredFunc
}

// WaitForMeasure registers fn to run after the next layout pass in which n
// is attached under the stage root and measures with width > 0 or
// height > 0. The callback fires at most once. If n is detached or disposed
// before it measures, the registration is dropped without firing.
//
// Transition animations reference the incoming view's measured geometry;
// animating before layout has committed a size produces a visually broken
// jump, so every traversal is gated through here.
func (s *Stage) WaitForMeasure(n *Node, fn MeasuredFunc) {
	if n == nil {
		panic("navstack: WaitForMeasure on nil node")
	}
	s.gates = append(s.gates, measureGate{node: n, fn: fn})
}

// fireMeasureGates runs one measurement pass over the pending registrations.
// Callbacks may register new gates or start animations; those take effect on
// the next pass.
func (s *Stage) fireMeasureGates() {
	if len(s.gates) == 0 {
		return
	}
	pending := s.gates
	s.gates = nil
	for _, g := range pending {
		if g.node.IsDisposed() || !attachedTo(g.node, s.root) {
			if s.debug {
				fmt.Fprintf(os.Stderr, "[navstack] measure gate dropped: node %q detached before layout\n", g.node.Name)
			}
			continue
		}
		w, h := measureNode(g.node)
		if w > 0 || h > 0 {
			g.fn(g.node, w, h)
			continue
		}
		s.gates = append(s.gates, g)
	}
}

// measureNode returns the node's committed layout size. Panels and sized
// containers report their explicit Width/Height; an unsized container
// measures as the extent of its children's scaled bounds.
func measureNode(n *Node) (w, h float64) {
	if n.Width > 0 || n.Height > 0 {
		return n.Width, n.Height
	}
	for _, c := range n.children {
		if !c.Visible {
			continue
		}
		cw, ch := measureNode(c)
		if right := c.X - c.PivotX*c.ScaleX + cw*c.ScaleX; right > w {
			w = right
		}
		if bottom := c.Y - c.PivotY*c.ScaleY + ch*c.ScaleY; bottom > h {
			h = bottom
		}
	}
	return w, h
}

// attachedTo reports whether n is root or a descendant of root.
func attachedTo(n, root *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
