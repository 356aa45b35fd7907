package navstack

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zclconf/go-cty/cty"
	ctymsgpack "github.com/zclconf/go-cty/cty/msgpack"
)

// savedEntry is one persisted stack slot. Params holds the cty-encoded
// payload, or nil when the entry has no parameters.
type savedEntry struct {
	Screen int    `msgpack:"screen"`
	Params []byte `msgpack:"params"`
}

// savedState is the persisted form of the stack: a flat record of entries in
// top-to-bottom order.
type savedState struct {
	Entries []savedEntry `msgpack:"entries"`
}

// SaveState encodes the stack as an opaque blob for host-process save and
// restore: the entry list top to bottom, each slot as its screen id and
// parameters. Views are never part of the blob.
//
// Parameters created with OpaqueVal (and the PreserveExisting sentinel)
// cannot be represented; SaveState then fails with an error wrapping
// ErrOpaquePayload and writes nothing. It is the caller's responsibility to
// keep non-representable payloads off the stack if process-death survival
// matters.
func (s *Stack) SaveState() ([]byte, error) {
	state := savedState{Entries: make([]savedEntry, 0, len(s.entries))}
	for _, e := range s.entries {
		var raw []byte
		if !e.params.IsNull() {
			b, err := ctymsgpack.Marshal(e.params, cty.DynamicPseudoType)
			if err != nil {
				return nil, fmt.Errorf("%w: screen %d: %v", ErrOpaquePayload, e.screen, err)
			}
			raw = b
		}
		state.Entries = append(state.Entries, savedEntry{Screen: int(e.screen), Params: raw})
	}
	return msgpack.Marshal(state)
}

// decodeState rebuilds the entry list from a SaveState blob. No views are
// materialized; that happens lazily on first access or mount.
func decodeState(data []byte) ([]*entry, error) {
	var state savedState
	if err := msgpack.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	entries := make([]*entry, 0, len(state.Entries))
	for _, se := range state.Entries {
		params := NoParams
		if len(se.Params) > 0 {
			v, err := ctymsgpack.Unmarshal(se.Params, cty.DynamicPseudoType)
			if err != nil {
				return nil, err
			}
			params = v
		}
		entries = append(entries, newEntry(ScreenID(se.Screen), params))
	}
	return entries, nil
}
