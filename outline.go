package eyekit

import "honnef.co/go/curve"

// Kappa is the handle-length fraction that makes four cubic Bezier arcs
// approximate a circle: a circle of radius r uses handles of length r*Kappa.
const Kappa = 0.5522847498

// slitGap is the vertical offset between the Top and Bottom anchors of a
// closed-eye slit, keeping the two lids from crossing.
const slitGap = 0.005

// Anchor indices of a BezierOutline.
const (
	AnchorLeft = iota
	AnchorTop
	AnchorRight
	AnchorBottom
)

// flatten appends n+1 evenly spaced samples of c to dst.
func flatten(dst []Vec2, c curve.CubicBez, n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		dst = append(dst, Vec2(c.Eval(float64(i)/float64(n))))
	}
	return dst
}

// BezierOutline is a closed path of 4 cubic segments through the anchors
// [Left, Top, Right, Bottom]. Segment i connects anchor i to anchor
// (i+1) mod 4. Used for the eye, iris and pupil.
type BezierOutline struct {
	Anchors [4]BezierAnchor
}

// Circle approximates a circle of the given radius centered at the origin.
func Circle(radius float64) BezierOutline {
	return Ellipse(radius, radius)
}

// unitCircle is the four-arc approximation of the unit circle.
var unitCircle = [4]BezierAnchor{
	{Position: Vec2{X: -1}, HandleIn: Vec2{Y: -Kappa}, HandleOut: Vec2{Y: Kappa}},
	{Position: Vec2{Y: 1}, HandleIn: Vec2{X: -Kappa}, HandleOut: Vec2{X: Kappa}},
	{Position: Vec2{X: 1}, HandleIn: Vec2{Y: Kappa}, HandleOut: Vec2{Y: -Kappa}},
	{Position: Vec2{Y: -1}, HandleIn: Vec2{X: Kappa}, HandleOut: Vec2{X: -Kappa}},
}

// Ellipse approximates an axis-aligned ellipse with horizontal radius rx and
// vertical radius ry, centered at the origin.
func Ellipse(rx, ry float64) BezierOutline {
	m := curve.Scale(rx, ry)
	var o BezierOutline
	for i, a := range unitCircle {
		o.Anchors[i] = transformAnchor(m, a)
	}
	return o
}

// EyebrowArc creates a thin 4-anchor arc centered at the origin whose left and
// right tips taper to points. halfWidth is the horizontal half-extent and
// thickness the vertical half-extent.
func EyebrowArc(halfWidth, thickness float64) BezierOutline {
	hw := halfWidth * Kappa
	tip := thickness * Kappa * 0.3
	return BezierOutline{Anchors: [4]BezierAnchor{
		{Position: Vec2{-halfWidth, 0}, HandleIn: Vec2{0, -tip}, HandleOut: Vec2{0, tip}},
		{Position: Vec2{0, thickness}, HandleIn: Vec2{-hw, 0}, HandleOut: Vec2{hw, 0}},
		{Position: Vec2{halfWidth, 0}, HandleIn: Vec2{0, tip}, HandleOut: Vec2{0, -tip}},
		{Position: Vec2{0, -thickness}, HandleIn: Vec2{hw, 0}, HandleOut: Vec2{-hw, 0}},
	}}
}

// ClosedSlit creates a nearly flat closed-eye shape at height y.
func ClosedSlit(halfWidth, y float64) BezierOutline {
	o := ClosedSlitAsymmetric(halfWidth, y, slitGap)
	o.Anchors[AnchorBottom].Position.Y = y - slitGap
	return o
}

// ClosedSlitAsymmetric creates a closed-eye slit whose upper lid is pushed
// away from the corners by arch. Negative arch dips the lid below the corners
// (reverse arch), positive arch curves it above them (smile arch). The Bottom
// anchor always sits just below Top, so the lids never cross.
func ClosedSlitAsymmetric(halfWidth, ySlit, arch float64) BezierOutline {
	hw := halfWidth * Kappa
	top := ySlit + arch
	return BezierOutline{Anchors: [4]BezierAnchor{
		{Position: Vec2{-halfWidth, ySlit}, HandleIn: Vec2{0, -slitGap}, HandleOut: Vec2{0, slitGap}},
		{Position: Vec2{0, top}, HandleIn: Vec2{-hw, 0}, HandleOut: Vec2{hw, 0}},
		{Position: Vec2{halfWidth, ySlit}, HandleIn: Vec2{0, slitGap}, HandleOut: Vec2{0, -slitGap}},
		{Position: Vec2{0, top - slitGap}, HandleIn: Vec2{hw, 0}, HandleOut: Vec2{-hw, 0}},
	}}
}

// ToUniformArray packs the outline for GPU upload. For segment i:
//
//	[i*2]   = {P0.x, P0.y, P1.x, P1.y}  anchor, anchor+HandleOut
//	[i*2+1] = {P2.x, P2.y, P3.x, P3.y}  next+next.HandleIn, next
func (o *BezierOutline) ToUniformArray() [8][4]float32 {
	var out [8][4]float32
	packRing(o.Anchors[:], out[:])
	return out
}

// Segment returns the cubic segment leaving anchor i.
func (o *BezierOutline) Segment(i int) curve.CubicBez {
	return ringSegment(o.Anchors[:], i)
}

// AutoAdjustHandleAt recomputes anchor i's handles from its two neighbors so
// the curve stays smooth through it. Other anchors are untouched.
func (o *BezierOutline) AutoAdjustHandleAt(i int) {
	autoAdjustRing(o.Anchors[:], i)
}

// AutoAdjustHandles runs AutoAdjustHandleAt for every anchor in order.
func (o *BezierOutline) AutoAdjustHandles() {
	for i := range o.Anchors {
		o.AutoAdjustHandleAt(i)
	}
}

// Centroid returns the mean anchor position.
func (o *BezierOutline) Centroid() Vec2 {
	return centroid(o.Anchors[:])
}

// Mirrored returns the outline reflected across the vertical axis, keeping
// the [Left, Top, Right, Bottom] order.
func (o *BezierOutline) Mirrored() BezierOutline {
	var m BezierOutline
	for i, src := range [4]int{AnchorRight, AnchorTop, AnchorLeft, AnchorBottom} {
		m.Anchors[i] = o.Anchors[src].Mirrored()
	}
	return m
}

// --- Layer implementation ---

// Len implements Layer.
func (o *BezierOutline) Len() int { return len(o.Anchors) }

// Anchor implements Layer.
func (o *BezierOutline) Anchor(i int) BezierAnchor { return o.Anchors[i] }

// SetAnchor implements Layer.
func (o *BezierOutline) SetAnchor(i int, a BezierAnchor) { o.Anchors[i] = a }

// Save implements Layer.
func (o *BezierOutline) Save() []BezierAnchor {
	return append([]BezierAnchor(nil), o.Anchors[:]...)
}

// Load implements Layer.
func (o *BezierOutline) Load(saved []BezierAnchor) {
	mustLen(saved, len(o.Anchors))
	copy(o.Anchors[:], saved)
}

// --- Shared ring helpers ---

func ringSegment(ring []BezierAnchor, i int) curve.CubicBez {
	return segmentBetween(ring[i], ring[(i+1)%len(ring)])
}

// segmentBetween is the cubic leaving a and arriving at b.
func segmentBetween(a, b BezierAnchor) curve.CubicBez {
	return curve.CubicBez{P0: pt(a.Position), P1: pt(a.OutPoint()), P2: pt(b.InPoint()), P3: pt(b.Position)}
}

// packRing writes two control-point pairs per segment into out, which must
// hold 2*len(ring) entries.
func packRing(ring []BezierAnchor, out [][4]float32) {
	for seg := range ring {
		c := ringSegment(ring, seg)
		out[seg*2] = [4]float32{float32(c.P0.X), float32(c.P0.Y), float32(c.P1.X), float32(c.P1.Y)}
		out[seg*2+1] = [4]float32{float32(c.P2.X), float32(c.P2.Y), float32(c.P3.X), float32(c.P3.Y)}
	}
}

// autoAdjustRing points anchor i's handles along the bisector of the angle
// formed with its neighbors, sized by Kappa times the neighbor distances.
func autoAdjustRing(ring []BezierAnchor, i int) {
	n := len(ring)
	prev := ring[(i+n-1)%n].Position
	next := ring[(i+1)%n].Position
	pos := ring[i].Position

	toPrev := prev.Sub(pos)
	toNext := next.Sub(pos)
	lenPrev := toPrev.Hypot()
	lenNext := toNext.Hypot()
	if lenPrev < degenerateLen || lenNext < degenerateLen {
		return
	}

	unitNext := toNext.Div(lenNext)
	dir := unitNext.Sub(toPrev.Div(lenPrev))
	dirLen := dir.Hypot()
	if dirLen < degenerateLen {
		// Both neighbors lie along the same ray; use the perpendicular.
		dir = perp(unitNext)
	} else {
		dir = dir.Div(dirLen)
	}

	ring[i].HandleOut = dir.Mul(lenNext * Kappa)
	ring[i].HandleIn = dir.Mul(-lenPrev * Kappa)
}

func centroid(ring []BezierAnchor) Vec2 {
	var sum Vec2
	for _, a := range ring {
		sum = sum.Add(a.Position)
	}
	return sum.Div(float64(len(ring)))
}

func mustLen(saved []BezierAnchor, n int) {
	if len(saved) != n {
		panic("eyekit: anchor count mismatch")
	}
}
