package eyekit

// Layer is a fixed-size ring of anchors an editor operates on.
//
// Anchor and SetAnchor address the anchors the user sees and picks. Save and
// Load address the authoritative state behind them, which is the same ring
// for plain outlines and the underlying outline for derived views such as the
// eyebrow guide. Load must accept exactly what Save returned.
type Layer interface {
	Len() int
	Anchor(i int) BezierAnchor
	SetAnchor(i int, a BezierAnchor)
	Save() []BezierAnchor
	Load(saved []BezierAnchor)
}

// Smoother is implemented by layers that can recompute an anchor's handles
// from its neighbors after the anchor is dragged.
type Smoother interface {
	AutoAdjustHandleAt(i int)
}

var (
	_ Layer    = (*BezierOutline)(nil)
	_ Smoother = (*BezierOutline)(nil)
	_ Layer    = eyebrowOutlineLayer{}
	_ Smoother = eyebrowOutlineLayer{}
	_ Layer    = eyebrowGuideLayer{}
)

// snapshotLayer copies the visible anchors of l.
func snapshotLayer(l Layer) []BezierAnchor {
	out := make([]BezierAnchor, l.Len())
	for i := range out {
		out[i] = l.Anchor(i)
	}
	return out
}
