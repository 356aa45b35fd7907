package navstack

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage owns the container tree and the per-frame passes that the stack's
// measure-then-animate protocol relies on. Everything is confined to the
// thread that calls Update/Step and Draw — the same thread that owns the
// view tree. No internal locking.
type Stage struct {
	root  *Node
	gates []measureGate
	anims []*Animation
	debug bool
}

// NewStage creates a stage with a pre-created root container.
func NewStage() *Stage {
	return &Stage{root: NewContainer("root")}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// SetDebugMode enables or disables debug mode. When enabled, dropped measure
// gates and finished animations are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances the stage by one frame at the current tick rate.
// Call it from your ebiten.Game's Update.
func (s *Stage) Update() {
	s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances the stage by a fixed dt in seconds: layout pass, then
// pending measure gates, then running animations. Useful for headless
// pumping and deterministic tests.
func (s *Stage) Step(dt float32) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.fireMeasureGates()
	s.advanceAnimations(dt)
}

// Run starts pumping the animation each frame until it is done, then
// invokes its completion callback once.
func (s *Stage) Run(a *Animation) {
	if a == nil {
		return
	}
	s.anims = append(s.anims, a)
}

// advanceAnimations updates every running animation and finishes the ones
// that completed this frame. Completion callbacks may start new animations
// or register measure gates; those take effect on the next frame.
func (s *Stage) advanceAnimations(dt float32) {
	if len(s.anims) == 0 {
		return
	}
	running := s.anims
	s.anims = nil
	for _, a := range running {
		a.Update(dt)
		if !a.Done() {
			s.anims = append(s.anims, a)
			continue
		}
		if s.debug {
			fmt.Fprintf(os.Stderr, "[navstack] animation finished (%d groups)\n", len(a.groups))
		}
		a.finish()
	}
}
