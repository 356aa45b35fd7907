package navstack

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw refreshes world transforms and renders the node tree to screen.
// Call it from your ebiten.Game's Draw.
func (s *Stage) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawNode(s.root, screen)
}

// drawNode renders one node and recurses into its children. Panels stretch
// their image (the white pixel for solid fills) to Width x Height under the
// node's world transform, tinted with the node's color and inherited alpha.
func drawNode(n *Node, dst *ebiten.Image) {
	if !n.Visible || n.disposed {
		return
	}

	if n.Type == NodeTypePanel && n.Width > 0 && n.Height > 0 {
		img := n.customImage
		if img == nil {
			img = WhitePixel
		}
		bounds := img.Bounds()

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width/float64(bounds.Dx()), n.Height/float64(bounds.Dy()))
		op.GeoM.Concat(geoMFromAffine(n.worldTransform))

		a := clamp01(n.Color.A * n.worldAlpha)
		op.ColorScale.Scale(
			float32(n.Color.R*a),
			float32(n.Color.G*a),
			float32(n.Color.B*a),
			float32(a),
		)
		dst.DrawImage(img, &op)
	}

	for _, child := range n.children {
		drawNode(child, dst)
	}
}

// geoMFromAffine converts an [a, b, c, d, tx, ty] affine matrix to an
// ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// clamp01 clamps overshoot-eased alpha values into the renderable range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
