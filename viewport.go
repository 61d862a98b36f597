package eyekit

import "honnef.co/go/curve"

// Projector maps between screen space (pixels, Y down) and outline space
// (eye units, Y up). The hosting widget supplies it; the editor never assumes
// pixel units beyond the hit and drag thresholds.
type Projector interface {
	ToScreen(p Vec2) Vec2
	ToOutline(s Vec2) Vec2
}

// Viewport is the standard Projector: outline space scaled uniformly by
// Scale pixels per unit, flipped vertically, and centered on Center.
type Viewport struct {
	// Center is the screen position of the outline-space origin.
	Center Vec2
	// Scale is the number of pixels per outline unit.
	Scale float64

	matrix       curve.Affine
	invMatrix    curve.Affine
	cachedCenter Vec2
	cachedScale  float64
	valid        bool
}

// NewViewport returns a Viewport for a widget of the given size where one
// outline unit spans unitPixels.
func NewViewport(width, height, unitPixels float64) *Viewport {
	return &Viewport{Center: Vec2{width / 2, height / 2}, Scale: unitPixels}
}

// computeMatrix recomputes the cached matrix when Center or Scale changed.
//
// matrix = Translate(Center) * Scale(s, -s)
func (v *Viewport) computeMatrix() {
	if v.valid && v.Center == v.cachedCenter && v.Scale == v.cachedScale {
		return
	}
	v.valid = true
	v.cachedCenter, v.cachedScale = v.Center, v.Scale
	v.matrix = curve.Scale(v.Scale, -v.Scale).ThenTranslate(v.Center)
	v.invMatrix = invertAffine(v.matrix)
}

// ToScreen converts an outline-space point to screen coordinates.
func (v *Viewport) ToScreen(p Vec2) Vec2 {
	v.computeMatrix()
	return transformPoint(v.matrix, p)
}

// ToOutline converts a screen point to outline space.
func (v *Viewport) ToOutline(s Vec2) Vec2 {
	v.computeMatrix()
	return transformPoint(v.invMatrix, s)
}
