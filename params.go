package navstack

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Screen parameters and pop results are cty values: a dynamically-typed
// payload over a closed set of kinds (null, bool, number, string, lists,
// maps, objects) that the persistence codec can represent, plus capsules
// for values that live only inside the current process.

// NoParams is the null payload, used when a screen takes no parameters and
// as the cleared state of the pending pop result.
var NoParams = cty.NullVal(cty.DynamicPseudoType)

// preserveToken backs the PreserveExisting sentinel.
type preserveToken struct{}

var preserveType = cty.Capsule("navstack-preserve-existing", reflect.TypeOf(preserveToken{}))

// PreserveExisting is the sentinel parameter for ReplaceStack meaning "carry
// over the parameters of the pre-existing entry at the same position from
// the bottom, if its screen id matches". It is only meaningful inside a
// ReplaceStack spec; it never ends up stored on an entry.
var PreserveExisting = cty.CapsuleVal(preserveType, &preserveToken{})

// isPreserve reports whether v is the PreserveExisting sentinel.
func isPreserve(v cty.Value) bool {
	if v.Type() == cty.NilType {
		return false
	}
	return v.Type().Equals(preserveType)
}

// opaqueBox wraps an arbitrary Go value inside an opaque capsule.
type opaqueBox struct {
	value any
}

var opaqueType = cty.Capsule("navstack-opaque", reflect.TypeOf(opaqueBox{}))

// OpaqueVal wraps an arbitrary Go value as a payload usable for the lifetime
// of the current process. Opaque payloads cannot be persisted: SaveState
// fails with ErrOpaquePayload while one is on the stack.
func OpaqueVal(v any) cty.Value {
	return cty.CapsuleVal(opaqueType, &opaqueBox{value: v})
}

// OpaqueValue unwraps a payload created with OpaqueVal. The second return is
// false if v is not an opaque payload.
func OpaqueValue(v cty.Value) (any, bool) {
	if v.Type() == cty.NilType || !v.Type().Equals(opaqueType) {
		return nil, false
	}
	return v.EncapsulatedValue().(*opaqueBox).value, true
}

// normalizeParams maps the zero cty.Value to NoParams so entries always hold
// a well-formed payload.
func normalizeParams(v cty.Value) cty.Value {
	if v.Type() == cty.NilType {
		return NoParams
	}
	return v
}
