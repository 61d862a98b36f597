package eyekit

import "math/bits"

// maxAnchors bounds the anchors a Selection can address.
const maxAnchors = 32

// Selection is a set of anchor indices. Indices at or above 32 are a
// programming error and panic.
type Selection uint32

func selBit(i int) Selection {
	if i < 0 || i >= maxAnchors {
		panic("eyekit: anchor index out of range")
	}
	return 1 << uint(i)
}

// SelectionAll returns a selection holding anchors 0..n-1.
func SelectionAll(n int) Selection {
	if n <= 0 {
		return 0
	}
	if n >= maxAnchors {
		return ^Selection(0)
	}
	return selBit(n) - 1
}

// Has reports whether anchor i is selected.
func (s Selection) Has(i int) bool { return s&selBit(i) != 0 }

// With returns s plus anchor i.
func (s Selection) With(i int) Selection { return s | selBit(i) }

// Without returns s minus anchor i.
func (s Selection) Without(i int) Selection { return s &^ selBit(i) }

// Toggle flips the membership of anchor i.
func (s Selection) Toggle(i int) Selection { return s ^ selBit(i) }

// Len returns the number of selected anchors.
func (s Selection) Len() int { return bits.OnesCount32(uint32(s)) }

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return s == 0 }

// Indices returns the selected anchor indices in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, 0, s.Len())
	for v := uint32(s); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros32(v))
	}
	return out
}

// --- Hit testing ---

// hitKind says what part of an anchor a pointer press landed on.
type hitKind uint8

const (
	hitNone hitKind = iota
	hitAnchor
	hitHandleIn
	hitHandleOut
)

type hit struct {
	kind  hitKind
	index int
}

// hitTest finds the anchor, or handle of a selected anchor, nearest to the
// screen point p within radius pixels. Anchors win ties against handles so a
// collapsed handle never hides its anchor.
func hitTest(anchors []BezierAnchor, sel Selection, proj Projector, p Vec2, radius float64) hit {
	best := hit{kind: hitNone, index: -1}
	bestDist := radius
	consider := func(kind hitKind, i int, at Vec2) {
		d := pt(proj.ToScreen(at)).Distance(pt(p))
		if d < bestDist || (d == bestDist && kind == hitAnchor) {
			best = hit{kind: kind, index: i}
			bestDist = d
		}
	}
	for i, a := range anchors {
		consider(hitAnchor, i, a.Position)
	}
	for i, a := range anchors {
		if !sel.Has(i) {
			continue
		}
		if a.HandleIn.Hypot() > degenerateLen {
			consider(hitHandleIn, i, a.InPoint())
		}
		if a.HandleOut.Hypot() > degenerateLen {
			consider(hitHandleOut, i, a.OutPoint())
		}
	}
	return best
}

// boxSelect returns the anchors whose screen positions fall inside r.
func boxSelect(anchors []BezierAnchor, proj Projector, r Rect) Selection {
	var s Selection
	for i, a := range anchors {
		if r.Contains(proj.ToScreen(a.Position)) {
			s = s.With(i)
		}
	}
	return s
}

// screenCentroid returns the mean screen position of the selected anchors.
func screenCentroid(anchors []BezierAnchor, sel Selection, proj Projector) Vec2 {
	var sum Vec2
	n := 0
	for i, a := range anchors {
		if sel.Has(i) {
			sum = sum.Add(proj.ToScreen(a.Position))
			n++
		}
	}
	if n == 0 {
		return Vec2{}
	}
	return sum.Div(float64(n))
}

// selectedCentroid returns the mean outline-space position of the selected
// anchors.
func selectedCentroid(anchors []BezierAnchor, sel Selection) Vec2 {
	var sum Vec2
	n := 0
	for i, a := range anchors {
		if sel.Has(i) {
			sum = sum.Add(a.Position)
			n++
		}
	}
	if n == 0 {
		return Vec2{}
	}
	return sum.Div(float64(n))
}
