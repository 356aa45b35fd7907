package navstack

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Materializer turns a screen id into a live view mounted under container.
// It is invoked lazily, and must be idempotent per entry: repeated calls
// after a view has been reclaimed produce an equivalent view. The owning
// stack is passed explicitly so screen controllers can navigate without any
// global lookup.
type Materializer func(stack *Stack, screen ScreenID, container *Node) *Node

// BackHandler is the capability probe for back-press interception. A screen
// controller attached to its view's UserData may implement it to consume
// back navigation (confirm-discard dialogs and the like) before the stack
// turns the press into a pop.
type BackHandler interface {
	OnBackPressed() bool
}

// ScreenSpec is one slot of a ReplaceStack request, ordered bottom to top.
// Params may be PreserveExisting to carry over the parameters of a
// positionally matching pre-existing entry.
type ScreenSpec struct {
	Screen ScreenID
	Params cty.Value
}

// StackOptions configures New.
type StackOptions struct {
	// SavedState is a blob previously produced by SaveState. When set, the
	// stack is rebuilt from it and the restored top view is mounted.
	SavedState []byte

	// Animator overrides the default traversal animation. Per-screen
	// TransitionAuthor capabilities still take precedence.
	Animator Animator
}

// Stack manages an ordered stack of screens mounted into a single container
// node, and the transition animations between them. All methods must be
// called from the thread that owns the stage.
type Stack struct {
	stage       *Stage
	container   *Node
	materialize Materializer
	animator    Animator

	entries    []*entry // index 0 = top
	traversing TraversingState
	result     cty.Value

	listeners      []traversalListener
	nextListenerID int
}

type traversalListener struct {
	id int
	fn TraversalListener
}

// New creates a stack that manages container, which must be attached under
// the stage's root. If opts.SavedState is set, the entry list is rebuilt
// from it and the top view is mounted; all other views stay unmaterialized
// until first access.
func New(stage *Stage, container *Node, materialize Materializer, opts *StackOptions) (*Stack, error) {
	if stage == nil || container == nil {
		panic("navstack: nil stage or container")
	}
	if materialize == nil {
		panic("navstack: nil materializer")
	}
	if opts == nil {
		opts = &StackOptions{}
	}
	animator := opts.Animator
	if animator == nil {
		animator = defaultAnimator{}
	}
	s := &Stack{
		stage:       stage,
		container:   container,
		materialize: materialize,
		animator:    animator,
		result:      NoParams,
	}
	if len(opts.SavedState) > 0 {
		entries, err := decodeState(opts.SavedState)
		if err != nil {
			return nil, fmt.Errorf("navstack: restore: %w", err)
		}
		s.entries = entries
		if len(s.entries) > 0 {
			s.container.AddChild(s.viewOf(s.entries[0]))
		}
	}
	return s, nil
}

// --- Accessors ---

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// TraversingState returns the stack's current state.
func (s *Stack) TraversingState() TraversingState {
	return s.traversing
}

// TopScreen returns the top entry's screen id.
// Panics if the stack is empty.
func (s *Stack) TopScreen() ScreenID {
	if len(s.entries) == 0 {
		panic("navstack: TopScreen on empty stack")
	}
	return s.entries[0].screen
}

// TopView returns the top entry's view, materializing it if needed.
// Returns nil if the stack is empty.
func (s *Stack) TopView() *Node {
	if len(s.entries) == 0 {
		return nil
	}
	return s.viewOf(s.entries[0])
}

// Result returns the result (if any) recorded by the last pop, and clears
// it. A second call returns NoParams: the hand-off is single-consumer.
func (s *Stack) Result() cty.Value {
	r := s.result
	s.result = NoParams
	return r
}

// GetParameters returns the start parameters of the entry whose live view is
// view, scanning top to bottom. Returns NoParams if no entry owns the view.
func (s *Stack) GetParameters(view *Node) cty.Value {
	for _, e := range s.entries {
		if e.liveView() == view {
			return e.params
		}
	}
	return NoParams
}

// SetParameters overwrites the start parameters of the entry whose live view
// is view. No-op if no entry owns the view.
func (s *Stack) SetParameters(view *Node, params cty.Value) {
	for _, e := range s.entries {
		if e.liveView() == view {
			e.setParams(params)
			return
		}
	}
}

// AddTraversalListener registers a listener for traversing-state changes and
// returns a function that removes it.
func (s *Stack) AddTraversalListener(fn TraversalListener) (remove func()) {
	s.nextListenerID++
	id := s.nextListenerID
	s.listeners = append(s.listeners, traversalListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// --- Mutations ---

// StartWith bootstraps the stack with the given screen: the view is mounted
// without an animation and the stack returns to idle once it measures. If
// the stack is non-empty the call is ignored, so hosts may call it
// unconditionally on startup.
func (s *Stack) StartWith(screen ScreenID, params cty.Value) {
	if len(s.entries) == 0 {
		s.push(screen, params)
	}
}

// Push creates a new top entry, mounts its view alongside the current top,
// and runs a forward transition. The outgoing view stays mounted until the
// animation completes.
//
// Panics with ErrEmptyStack when the stack is empty (use StartWith) and with
// ErrTraversing when another traversal is in flight.
func (s *Stack) Push(screen ScreenID, params cty.Value) {
	if len(s.entries) == 0 {
		panic(ErrEmptyStack)
	}
	s.push(screen, params)
}

func (s *Stack) push(screen ScreenID, params cty.Value) {
	s.setTraversing(TraversingPushing)
	e := newEntry(screen, params)
	view := s.viewOf(e)

	if len(s.entries) == 0 {
		s.entries = append([]*entry{e}, s.entries...)
		s.container.AddChild(view)
		s.stage.WaitForMeasure(view, func(*Node, float64, float64) {
			s.setTraversing(TraversingIdle)
		})
		return
	}

	from := s.viewOf(s.entries[0])
	s.entries = append([]*entry{e}, s.entries...)
	s.container.AddChild(view)
	s.stage.WaitForMeasure(view, func(*Node, float64, float64) {
		s.runAnimation(from, view, DirectionForward)
	})
}

// Pop removes the top entry with no result. Equivalent to
// PopWithResult(1, NoParams).
func (s *Stack) Pop() bool {
	return s.PopWithResult(1, NoParams)
}

// PopCount removes the top count entries with no result.
func (s *Stack) PopCount(count int) bool {
	return s.PopWithResult(count, NoParams)
}

// PopTopWithResult removes the top entry, recording result for the screen
// beneath it.
func (s *Stack) PopTopWithResult(result cty.Value) bool {
	return s.PopWithResult(1, result)
}

// PopWithResult removes the top count entries, records result for pickup via
// Result, mounts the newly exposed top view, and runs a backward transition.
// Returns false with no state change when the pop would reach or pass the
// bottom of the stack: pops are never partially applied.
func (s *Stack) PopWithResult(count int, result cty.Value) bool {
	if count < 1 {
		count = 1
	}
	if len(s.entries) <= count {
		return false
	}
	s.setTraversing(TraversingPopping)
	s.result = normalizeParams(result)

	from := s.viewOf(s.entries[0])
	s.entries = s.entries[1:]
	for n := count; n > 1; n-- {
		s.evict(s.entries[0])
		s.entries = s.entries[1:]
	}

	to := s.viewOf(s.entries[0])
	s.container.AddChild(to)
	s.stage.WaitForMeasure(to, func(*Node, float64, float64) {
		s.runAnimation(from, to, DirectionBack)
	})
	return true
}

// PopBackToWithResult pops entries until the first entry with the given
// screen id (scanning from the top) is on top, recording result. Returns
// false without side effects if no entry has that id. If the target is
// already on top, one entry is still popped.
func (s *Stack) PopBackToWithResult(screen ScreenID, result cty.Value) bool {
	for depth, e := range s.entries {
		if e.screen == screen {
			return s.PopWithResult(depth, result)
		}
	}
	return false
}

// Replace swaps the top entry for a new one: the new view is mounted, a
// forward transition runs, and the previous top entry is removed once the
// new view has measured. The stack size is unchanged.
//
// Panics with ErrEmptyStack when the stack is empty and with ErrTraversing
// when another traversal is in flight.
func (s *Stack) Replace(screen ScreenID, params cty.Value) {
	if len(s.entries) == 0 {
		panic(ErrEmptyStack)
	}
	s.setTraversing(TraversingReplacing)

	e := newEntry(screen, params)
	view := s.viewOf(e)
	prev := s.entries[0]
	from := s.viewOf(prev)

	s.entries = append([]*entry{e}, s.entries...)
	s.container.AddChild(view)
	s.stage.WaitForMeasure(view, func(*Node, float64, float64) {
		s.runAnimation(from, view, DirectionForward)
		s.removeEntry(prev)
	})
}

// ReplaceStack replaces the whole stack with the given specs, ordered bottom
// to top. A spec whose Params is PreserveExisting carries over the
// parameters of the pre-existing entry at the same position from the bottom
// when its screen id matches; the first positional mismatch abandons
// matching for the rest of the call, so later sentinels resolve to no
// parameters.
//
// The previous top entry is kept as the animation anchor: if the new top has
// the same screen id no transition is possible and the container is remounted
// directly, otherwise a forward transition runs from the anchor to the new
// top and the anchor is removed when the new view has measured.
//
// Panics with ErrEmptyStack when the stack is empty and with ErrTraversing
// when another traversal is in flight.
func (s *Stack) ReplaceStack(specs []ScreenSpec) {
	if len(s.entries) == 0 {
		panic(ErrEmptyStack)
	}
	s.setTraversing(TraversingReplacing)

	fromEntry := s.entries[0]
	snapshot := append([]*entry(nil), s.entries...)

	s.entries = []*entry{fromEntry}

	// Positional preservation scan: pos walks the snapshot from the bottom
	// and only advances while resolving sentinels; it stops matching
	// permanently on the first screen-id mismatch.
	pos := len(snapshot) - 1
	matching := true
	for _, spec := range specs {
		params := spec.Params
		if isPreserve(params) {
			params = NoParams
			if matching && pos >= 0 {
				prev := snapshot[pos]
				pos--
				if prev.screen == spec.Screen {
					params = prev.params
				} else {
					matching = false
				}
			}
		}
		s.entries = append([]*entry{newEntry(spec.Screen, params)}, s.entries...)
	}

	toEntry := s.entries[0]
	toView := s.viewOf(toEntry)

	if fromEntry.screen == toEntry.screen {
		// Same screen on both sides of the swap: no transition animation is
		// possible, so remount the container with the new top directly.
		s.removeEntry(fromEntry)
		s.container.RemoveChildren()
		s.discardSnapshotViews(snapshot)
		s.container.AddChild(toView)
		s.stage.WaitForMeasure(toView, func(*Node, float64, float64) {
			s.setTraversing(TraversingIdle)
		})
		return
	}

	fromView := s.viewOf(fromEntry)
	s.discardSnapshotViews(snapshot)
	s.container.AddChild(toView)
	s.stage.WaitForMeasure(toView, func(*Node, float64, float64) {
		s.runAnimation(fromView, toView, DirectionForward)
		s.removeEntry(fromEntry)
	})
}

// OnBackPressed routes a host back-press: if the top view's controller
// implements BackHandler the press is delegated to it, otherwise the stack
// pops. Returns whether the press was consumed.
func (s *Stack) OnBackPressed() bool {
	if top := s.TopView(); top != nil {
		if h, ok := top.UserData.(BackHandler); ok {
			return h.OnBackPressed()
		}
	}
	return s.Pop()
}

// --- Host lifecycle ---

// OnAttach remounts the top view if the container is currently empty. Call
// it when the host's container becomes visible again.
func (s *Stack) OnAttach() {
	if s.container.NumChildren() == 0 && len(s.entries) > 0 {
		s.container.AddChild(s.viewOf(s.entries[0]))
	}
}

// OnDetach unmounts the top view without touching the entries. Call it when
// the host's container is hidden.
func (s *Stack) OnDetach() {
	if len(s.entries) == 0 {
		return
	}
	if v := s.entries[0].liveView(); v != nil && v.Parent == s.container {
		s.container.RemoveChild(v)
	}
}

// --- Internals ---

// viewOf returns the entry's live view, materializing it if the previous one
// was reclaimed or never created.
func (s *Stack) viewOf(e *entry) *Node {
	if v := e.liveView(); v != nil {
		return v
	}
	v := s.materialize(s, e.screen, s.container)
	if v == nil {
		panic("navstack: materializer returned nil view")
	}
	e.view = v
	return v
}

// setTraversing moves the state machine, rejecting overlapping traversals,
// and notifies listeners synchronously.
func (s *Stack) setTraversing(state TraversingState) {
	if state != TraversingIdle && s.traversing != TraversingIdle {
		panic(ErrTraversing)
	}
	s.traversing = state
	for _, l := range s.listeners {
		l.fn(state)
	}
}

// runAnimation resolves and starts the transition between two mounted views.
// On completion the outgoing view is unmounted (and reclaimed if no entry
// owns it anymore) and the stack returns to idle.
func (s *Stack) runAnimation(from, to *Node, direction Direction) {
	anim := s.createAnimation(from, to, direction)
	anim.onComplete = func() {
		if !from.IsDisposed() && from.Parent == s.container {
			s.container.RemoveChild(from)
		}
		if !from.IsDisposed() && !s.owns(from) {
			from.Dispose()
		}
		s.setTraversing(TraversingIdle)
	}
	s.stage.Run(anim)
}

// createAnimation resolves the incoming screen's TransitionAuthor capability
// and falls back to the stack's animator.
func (s *Stack) createAnimation(from, to *Node, direction Direction) *Animation {
	if author, ok := to.UserData.(TransitionAuthor); ok {
		if a := author.CreateTransition(from); a != nil {
			return a
		}
	}
	return s.animator.Animate(from, to, direction)
}

// removeEntry evicts e from the entry list without touching its view; the
// view's unmount is owned by the running animation.
func (s *Stack) removeEntry(e *entry) {
	for i, cur := range s.entries {
		if cur == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// evict reclaims an entry that left the stack without being animated out.
func (s *Stack) evict(e *entry) {
	if v := e.liveView(); v != nil {
		v.Dispose()
	}
}

// discardSnapshotViews reclaims materialized views of pre-replacement
// entries that no longer own a slot. The anchor's view is skipped while the
// anchor is still on the stack.
func (s *Stack) discardSnapshotViews(snapshot []*entry) {
	for _, old := range snapshot {
		if v := old.liveView(); v != nil && !s.owns(v) {
			v.Dispose()
		}
	}
}

// owns reports whether any entry's live view is view.
func (s *Stack) owns(view *Node) bool {
	for _, e := range s.entries {
		if e.liveView() == view {
			return true
		}
	}
	return false
}
