package eyekit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// OverlayStyle controls how DrawOverlay renders editor chrome.
type OverlayStyle struct {
	Curve    color.RGBA
	Anchor   color.RGBA
	Selected color.RGBA
	Handle   color.RGBA
	Box      color.RGBA
	Pivot    color.RGBA

	// AnchorSize is the side of an anchor square, in pixels.
	AnchorSize float64
	// LineWidth is the stroke width of curves and handle arms.
	LineWidth float64
	// Samples is the number of line pieces per cubic segment.
	Samples int
}

// DefaultOverlayStyle returns the stock editor colours.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		Curve:      color.RGBA{220, 220, 230, 255},
		Anchor:     color.RGBA{240, 240, 240, 255},
		Selected:   color.RGBA{255, 160, 40, 255},
		Handle:     color.RGBA{90, 170, 255, 255},
		Box:        color.RGBA{255, 255, 255, 96},
		Pivot:      color.RGBA{255, 80, 80, 255},
		AnchorSize: 7,
		LineWidth:  1.5,
		Samples:    16,
	}
}

// openLayer is implemented by layers whose anchors form an open path.
type openLayer interface {
	open() bool
}

func (eyebrowGuideLayer) open() bool { return true }

// whitePixel is a 1x1 white image scaled and tinted to draw solid shapes.
// Created on first use so the package can be imported without a graphics
// context.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// fillRect draws an axis-aligned rectangle in screen space.
func fillRect(dst *ebiten.Image, r Rect, clr color.RGBA) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(solidPixel(), op)
}

// strokeLine draws a line of the given width between two screen points.
func strokeLine(dst *ebiten.Image, a, b Vec2, width float64, clr color.RGBA) {
	d := b.Sub(a)
	l := d.Hypot()
	if l < degenerateLen {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -0.5)
	op.GeoM.Scale(l, width)
	op.GeoM.Rotate(d.Angle())
	op.GeoM.Translate(a.X, a.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(solidPixel(), op)
}

func fillSquare(dst *ebiten.Image, center Vec2, size float64, clr color.RGBA) {
	h := size / 2
	fillRect(dst, Rect{X: center.X - h, Y: center.Y - h, Width: size, Height: size}, clr)
}

func strokeRect(dst *ebiten.Image, r Rect, width float64, clr color.RGBA) {
	x1, y1 := r.X+r.Width, r.Y+r.Height
	corners := [4]Vec2{{r.X, r.Y}, {x1, r.Y}, {x1, y1}, {r.X, y1}}
	for i := range corners {
		strokeLine(dst, corners[i], corners[(i+1)%4], width, clr)
	}
}

// overlayCurve flattens the layer's segments into screen-space polylines.
func overlayCurve(anchors []BezierAnchor, open bool, proj Projector, samples int) [][]Vec2 {
	n := len(anchors)
	segs := n
	if open {
		segs = n - 1
	}
	var out [][]Vec2
	var buf []Vec2
	for i := 0; i < segs; i++ {
		buf = flatten(buf[:0], ringSegment(anchors, i), samples)
		line := make([]Vec2, len(buf))
		for j, p := range buf {
			line[j] = proj.ToScreen(p)
		}
		out = append(out, line)
	}
	return out
}

// DrawOverlay draws the editable curve of layer with its anchors, the
// handles of selected anchors, the box-select rectangle and the transform
// pivot.
func DrawOverlay(dst *ebiten.Image, layer Layer, st *EditorState, proj Projector, style OverlayStyle) {
	anchors := snapshotLayer(layer)
	_, open := layer.(openLayer)

	for _, line := range overlayCurve(anchors, open, proj, style.Samples) {
		for i := 1; i < len(line); i++ {
			strokeLine(dst, line[i-1], line[i], style.LineWidth, style.Curve)
		}
	}

	sel := st.Selection()
	for i, a := range anchors {
		if !sel.Has(i) {
			continue
		}
		p := proj.ToScreen(a.Position)
		for _, h := range [2]Vec2{a.InPoint(), a.OutPoint()} {
			hp := proj.ToScreen(h)
			strokeLine(dst, p, hp, style.LineWidth, style.Handle)
			fillSquare(dst, hp, style.AnchorSize*0.7, style.Handle)
		}
	}
	for i, a := range anchors {
		clr := style.Anchor
		if sel.Has(i) {
			clr = style.Selected
		}
		fillSquare(dst, proj.ToScreen(a.Position), style.AnchorSize, clr)
	}

	if r, ok := st.BoxSelect(); ok {
		strokeRect(dst, r, 1, style.Box)
	}
	if p, ok := st.Pivot(); ok {
		fillSquare(dst, p, style.AnchorSize*0.6, style.Pivot)
	}
}
