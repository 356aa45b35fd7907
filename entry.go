package navstack

import "github.com/zclconf/go-cty/cty"

// entry is one stack slot: a screen id, its start parameters, and the
// materialized view. The view reference is non-owning — a disposed view
// reads as absent and is re-materialized from the screen id on next access,
// so the host is free to reclaim off-screen views.
type entry struct {
	screen ScreenID
	params cty.Value
	view   *Node
}

func newEntry(screen ScreenID, params cty.Value) *entry {
	return &entry{screen: screen, params: normalizeParams(params)}
}

// liveView returns the materialized view if it is still alive, else nil.
func (e *entry) liveView() *Node {
	if e.view != nil && !e.view.IsDisposed() {
		return e.view
	}
	return nil
}

// setParams overwrites the entry's start parameters.
func (e *entry) setParams(params cty.Value) {
	e.params = normalizeParams(params)
}
