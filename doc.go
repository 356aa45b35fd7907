// Package navstack implements a view-navigation stack for [Ebitengine] hosts.
//
// Navstack maintains an ordered stack of screens mounted into a single
// container node, drives enter/exit transition animations between the
// outgoing and incoming view, persists and restores the stack across host
// teardown, and carries start parameters and pop results between screens.
//
// # Quick start
//
// A [Stage] owns the container tree and the per-frame pump; a [Stack] owns
// the navigation state. Screens are materialized on demand by a
// [Materializer]:
//
//	stage := navstack.NewStage()
//	stack, _ := navstack.New(stage, stage.Root(), materialize, nil)
//	stack.StartWith(ScreenList, navstack.NoParams)
//
//	type Game struct{ stage *navstack.Stage }
//
//	func (g *Game) Update() error              { g.stage.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.stage.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// Navigation is then a matter of calling [Stack.Push], [Stack.Pop],
// [Stack.Replace], or [Stack.ReplaceStack]. Exactly one traversal may be in
// flight at a time: mutating the stack while an earlier transition is still
// animating panics with [ErrTraversing], so hosts should serialize their
// navigation intents (or rely on the guard to reject double-tapped gestures).
//
// # Parameters and results
//
// Start parameters and pop results are [cty.Value] payloads, so a screen can
// receive structured data without the host providing a messaging channel:
//
//	stack.Push(ScreenDetail, cty.StringVal("item-42"))
//	...
//	stack.PopTopWithResult(cty.BoolVal(true))
//	accepted := stack.Result()
//
// Values built from cty's primitive, list, and object constructors survive
// [Stack.SaveState] and restore; values wrapped with [OpaqueVal] live only
// for the current process and make SaveState fail with [ErrOpaquePayload].
//
// # Transitions
//
// The default transition cross-fades the two views while scaling them in
// opposite directions with an overshoot ease, matching the traversal
// direction. A screen can take over by attaching a controller implementing
// [TransitionAuthor] to its view's UserData; returning nil falls back to the
// default. A controller implementing [BackHandler] intercepts
// [Stack.OnBackPressed] before it becomes a pop.
//
// [Ebitengine]: https://ebitengine.org
// [cty.Value]: https://pkg.go.dev/github.com/zclconf/go-cty/cty#Value
package navstack
