package navstack

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenID identifies which screen template a stack entry materializes.
// Applications define their own ScreenID constants using iota:
//
//	const (
//	    ScreenList navstack.ScreenID = iota
//	    ScreenDetail
//	    ScreenSettings
//	)
//
// Multiple entries on the stack may share a ScreenID; entry identity for
// reverse lookups is the materialized view, not the id.
type ScreenID int

// Direction is the animation polarity of a traversal. Forward means moving
// deeper into the stack, Back means unwinding toward the bottom.
type Direction uint8

const (
	DirectionForward Direction = iota
	DirectionBack
)

// String returns the direction name for debug output.
func (d Direction) String() string {
	if d == DirectionBack {
		return "back"
	}
	return "forward"
}

// TraversingState describes what the stack is currently doing. The stack is
// in exactly one state at a time; every mutation runs Idle -> X -> Idle and
// starting a new traversal while another is in flight is a usage error.
type TraversingState uint8

const (
	TraversingIdle TraversingState = iota
	TraversingPushing
	TraversingPopping
	TraversingReplacing
)

// String returns the state name for debug output.
func (t TraversingState) String() string {
	switch t {
	case TraversingPushing:
		return "pushing"
	case TraversingPopping:
		return "popping"
	case TraversingReplacing:
		return "replacing"
	default:
		return "idle"
	}
}

// TraversalListener observes traversing-state changes. Listeners are invoked
// synchronously on every change, including the return to idle.
type TraversalListener func(state TraversingState)

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypePanel                     // renders a solid rect or custom image
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default panel fill (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// WhitePixel is a 1x1 white image used for solid color panels.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}
