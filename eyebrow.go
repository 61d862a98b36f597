package eyekit

import "honnef.co/go/curve"

// EyebrowOutline is a closed hexagonal path. Anchors 0, 1, 2 run along the
// top edge (left tip, top center, right tip) and 3, 4, 5 back along the
// bottom edge (right tip, bottom center, left tip).
type EyebrowOutline struct {
	Anchors [6]BezierAnchor
}

// EyebrowOutlineArc builds an eyebrow around a spine running from
// (-halfWidth, 0) through (0, arch) to (halfWidth, 0). centerThickness is the
// full thickness at the middle, tipThickness at the tips. The outward handles
// at the tips are nearly zero so the tips read as points.
func EyebrowOutlineArc(halfWidth, arch, centerThickness, tipThickness float64) EyebrowOutline {
	ct := centerThickness / 2
	tt := tipThickness / 2
	side := halfWidth * Kappa * 0.5
	mid := halfWidth * Kappa
	tip := tipThickness * Kappa * 0.3
	return EyebrowOutline{Anchors: [6]BezierAnchor{
		{Position: Vec2{-halfWidth, tt}, HandleIn: Vec2{-tip, 0}, HandleOut: Vec2{side, 0}},
		{Position: Vec2{0, arch + ct}, HandleIn: Vec2{-mid, 0}, HandleOut: Vec2{mid, 0}},
		{Position: Vec2{halfWidth, tt}, HandleIn: Vec2{-side, 0}, HandleOut: Vec2{tip, 0}},
		{Position: Vec2{halfWidth, -tt}, HandleIn: Vec2{tip, 0}, HandleOut: Vec2{-side, 0}},
		{Position: Vec2{0, arch - ct}, HandleIn: Vec2{mid, 0}, HandleOut: Vec2{-mid, 0}},
		{Position: Vec2{-halfWidth, -tt}, HandleIn: Vec2{side, 0}, HandleOut: Vec2{-tip, 0}},
	}}
}

// ToUniformArray packs the outline for GPU upload using the same per-segment
// layout as BezierOutline.ToUniformArray, six segments long.
func (o *EyebrowOutline) ToUniformArray() [12][4]float32 {
	var out [12][4]float32
	packRing(o.Anchors[:], out[:])
	return out
}

// Segment returns the cubic segment leaving anchor i.
func (o *EyebrowOutline) Segment(i int) curve.CubicBez {
	return ringSegment(o.Anchors[:], i)
}

// AutoAdjustHandleAt recomputes anchor i's handles from its two neighbors.
func (o *EyebrowOutline) AutoAdjustHandleAt(i int) {
	autoAdjustRing(o.Anchors[:], i)
}

// Centroid returns the mean anchor position.
func (o *EyebrowOutline) Centroid() Vec2 {
	return centroid(o.Anchors[:])
}

// Mirrored returns the outline reflected across the vertical axis. The tips
// trade places so the index semantics still hold.
func (o *EyebrowOutline) Mirrored() EyebrowOutline {
	var m EyebrowOutline
	for i, src := range [6]int{2, 1, 0, 5, 4, 3} {
		m.Anchors[i] = o.Anchors[src].Mirrored()
	}
	return m
}

// EyebrowGuide is a 3-point open spine (left, center, right) derived from
// paired top/bottom outline anchors. It carries no state of its own: the
// outline is authoritative and the guide is recomputed from it.
type EyebrowGuide struct {
	Anchors [3]BezierAnchor
}

// PairedIndices returns the top and bottom outline anchors behind guide
// point gi.
func PairedIndices(gi int) (top, bottom int) {
	return gi, 5 - gi
}

// GuideFromOutline averages each paired top/bottom anchor of o. The bottom
// edge runs right to left, so its outgoing handle pairs with the top's
// incoming one and vice versa.
func GuideFromOutline(o *EyebrowOutline) EyebrowGuide {
	var g EyebrowGuide
	for gi := range g.Anchors {
		ti, bi := PairedIndices(gi)
		t, b := o.Anchors[ti], o.Anchors[bi]
		g.Anchors[gi] = BezierAnchor{
			Position:  t.Position.Lerp(b.Position, 0.5),
			HandleIn:  t.HandleIn.Lerp(b.HandleOut, 0.5),
			HandleOut: t.HandleOut.Lerp(b.HandleIn, 0.5),
		}
	}
	return g
}

// PropagateDelta moves guide point gi by delta: both paired outline anchors
// shift by delta (positions only) and so does the guide point itself, which
// keeps g equal to GuideFromOutline(o).
func (g *EyebrowGuide) PropagateDelta(gi int, delta Vec2, o *EyebrowOutline) {
	ti, bi := PairedIndices(gi)
	o.Anchors[ti].Position = o.Anchors[ti].Position.Add(delta)
	o.Anchors[bi].Position = o.Anchors[bi].Position.Add(delta)
	g.Anchors[gi].Position = g.Anchors[gi].Position.Add(delta)
}

// propagateHandles sets guide point gi's handles to in and out. Each paired
// outline handle is rotated and scaled the same way its guide handle was, so
// smooth outline anchors stay smooth and the guide stays their average. A
// guide handle too short to have a direction falls back to a plain offset.
func (g *EyebrowGuide) propagateHandles(gi int, in, out Vec2, o *EyebrowOutline) {
	ti, bi := PairedIndices(gi)
	t, b := &o.Anchors[ti], &o.Anchors[bi]
	cur := g.Anchors[gi]
	t.HandleIn, b.HandleOut = followHandle(cur.HandleIn, in, t.HandleIn, b.HandleOut)
	t.HandleOut, b.HandleIn = followHandle(cur.HandleOut, out, t.HandleOut, b.HandleIn)
	g.Anchors[gi].HandleIn = in
	g.Anchors[gi].HandleOut = out
}

// followHandle applies the change from -> to onto the pair (p, q).
func followHandle(from, to, p, q Vec2) (Vec2, Vec2) {
	if m, ok := similarity(from, to); ok {
		return transformVector(m, p), transformVector(m, q)
	}
	d := to.Sub(from)
	return p.Add(d), q.Add(d)
}

// similarity returns the rotation plus uniform scale taking from to to.
// It fails when from has no direction.
func similarity(from, to Vec2) (curve.Affine, bool) {
	n := from.Hypot2()
	if n < degenerateLen*degenerateLen {
		return curve.Identity, false
	}
	c, s := from.Dot(to)/n, from.Cross(to)/n
	return curve.Affine{N0: c, N1: s, N2: -s, N3: c}, true
}

// Segments returns the two cubic segments of the open spine.
func (g *EyebrowGuide) Segments() [2]curve.CubicBez {
	var segs [2]curve.CubicBez
	for i := range segs {
		segs[i] = segmentBetween(g.Anchors[i], g.Anchors[i+1])
	}
	return segs
}
