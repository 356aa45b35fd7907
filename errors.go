package navstack

import "errors"

// Sentinel errors for stack misuse and persistence failures.
//
// ErrTraversing and ErrEmptyStack are programmer errors: the stack panics
// with them rather than returning them, because a mis-sequenced navigation
// call cannot be handled meaningfully at the call site. They are still
// sentinels so tests and crash handlers can identify the condition with
// errors.Is on the recovered value.
var (
	// ErrTraversing indicates a mutating operation was invoked while another
	// traversal is still in flight.
	ErrTraversing = errors.New("navstack: stack is currently traversing")

	// ErrEmptyStack indicates Push, Replace, or ReplaceStack was invoked on
	// an empty stack. Use StartWith to bootstrap.
	ErrEmptyStack = errors.New("navstack: operation on empty stack, use StartWith")

	// ErrOpaquePayload indicates SaveState encountered a parameter value
	// that cannot be represented in the saved-state format. Nothing is
	// written; the save fails rather than silently dropping data.
	ErrOpaquePayload = errors.New("navstack: payload is not representable in saved state")
)
