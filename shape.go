package eyekit

// Closed-eye slit geometry used when regenerating EyeShape.Closed.
const (
	closedHalfWidth = 0.20
	closedSlitY     = -0.20
)

var defaultDarkColor = Color{0.0090, 0.0090, 0.0350}

// EyeShape holds the open and closed eye outlines. The renderer interpolates
// between them by the eyelid closure.
type EyeShape struct {
	Open   BezierOutline
	Closed BezierOutline
	// CloseArch shapes the closed lid: negative dips below the corners
	// (reverse arch), positive curves above them (smile arch).
	CloseArch float64
}

// DefaultEyeShape returns the stock open ellipse and reverse-arch slit.
func DefaultEyeShape() EyeShape {
	s := EyeShape{Open: Ellipse(0.28, 0.35), CloseArch: -0.015}
	s.UpdateClosed()
	return s
}

// UpdateClosed regenerates Closed from CloseArch.
func (s *EyeShape) UpdateClosed() {
	s.Closed = ClosedSlitAsymmetric(closedHalfWidth, closedSlitY, s.CloseArch)
}

// EyebrowShape is the 6-anchor eyebrow with its derived guide and behavior
// parameters.
type EyebrowShape struct {
	Outline EyebrowOutline
	Guide   EyebrowGuide
	// Thickness is the stroke thickness at the left tip, middle and right tip.
	Thickness [3]float64
	// TipRound rounds the left and right tips.
	TipRound [2]bool
	// BaseY is the offset above the eye center in eye-space units.
	BaseY float64
	// Follow is how far the eyebrow drops with eyelid closure.
	Follow float64
	Color  Color
}

// DefaultEyebrowShape returns the stock eyebrow.
func DefaultEyebrowShape() EyebrowShape {
	s := EyebrowShape{
		Outline:   EyebrowOutlineArc(0.27, 0.05, 0.031, 0.004),
		Thickness: [3]float64{0.004, 0.031, 0.004},
		TipRound:  [2]bool{true, true},
		BaseY:     0.48,
		Follow:    0.15,
		Color:     defaultDarkColor,
	}
	s.SyncGuide()
	return s
}

// SyncGuide re-derives Guide from Outline.
func (s *EyebrowShape) SyncGuide() {
	s.Guide = GuideFromOutline(&s.Outline)
}

// EffectiveY returns the eyebrow height for the given eyelid closure.
func (s *EyebrowShape) EffectiveY(eyelidClose float64) float64 {
	return s.BaseY - eyelidClose*s.Follow
}

// Mirrored returns a copy reflected across the vertical axis, with the
// per-tip parameters swapped.
func (s *EyebrowShape) Mirrored() EyebrowShape {
	m := *s
	m.Outline = s.Outline.Mirrored()
	m.Thickness = [3]float64{s.Thickness[2], s.Thickness[1], s.Thickness[0]}
	m.TipRound = [2]bool{s.TipRound[1], s.TipRound[0]}
	m.SyncGuide()
	return m
}

// OutlineLayer returns an editor layer over the six outline anchors. Every
// edit re-derives the guide.
func (s *EyebrowShape) OutlineLayer() Layer {
	return eyebrowOutlineLayer{s}
}

// GuideLayer returns an editor layer over the three guide points. Edits are
// pushed into the outline with PropagateDelta.
func (s *EyebrowShape) GuideLayer() Layer {
	return eyebrowGuideLayer{s}
}

type eyebrowOutlineLayer struct{ s *EyebrowShape }

func (l eyebrowOutlineLayer) Len() int                  { return len(l.s.Outline.Anchors) }
func (l eyebrowOutlineLayer) Anchor(i int) BezierAnchor { return l.s.Outline.Anchors[i] }

func (l eyebrowOutlineLayer) SetAnchor(i int, a BezierAnchor) {
	l.s.Outline.Anchors[i] = a
	l.s.SyncGuide()
}

func (l eyebrowOutlineLayer) AutoAdjustHandleAt(i int) {
	l.s.Outline.AutoAdjustHandleAt(i)
	l.s.SyncGuide()
}

func (l eyebrowOutlineLayer) Save() []BezierAnchor {
	return append([]BezierAnchor(nil), l.s.Outline.Anchors[:]...)
}

func (l eyebrowOutlineLayer) Load(saved []BezierAnchor) {
	mustLen(saved, len(l.s.Outline.Anchors))
	copy(l.s.Outline.Anchors[:], saved)
	l.s.SyncGuide()
}

type eyebrowGuideLayer struct{ s *EyebrowShape }

func (l eyebrowGuideLayer) Len() int                  { return len(l.s.Guide.Anchors) }
func (l eyebrowGuideLayer) Anchor(i int) BezierAnchor { return l.s.Guide.Anchors[i] }

// Save returns the outline anchors, not the guide: rolling back through the
// outline restores it exactly.
func (l eyebrowGuideLayer) Save() []BezierAnchor {
	return append([]BezierAnchor(nil), l.s.Outline.Anchors[:]...)
}

func (l eyebrowGuideLayer) Load(saved []BezierAnchor) {
	mustLen(saved, len(l.s.Outline.Anchors))
	copy(l.s.Outline.Anchors[:], saved)
	l.s.SyncGuide()
}

func (l eyebrowGuideLayer) SetAnchor(i int, a BezierAnchor) {
	cur := l.s.Guide.Anchors[i]
	l.s.Guide.PropagateDelta(i, a.Position.Sub(cur.Position), &l.s.Outline)
	if a.HandleIn != cur.HandleIn || a.HandleOut != cur.HandleOut {
		l.s.Guide.propagateHandles(i, a.HandleIn, a.HandleOut, &l.s.Outline)
	}
	l.s.SyncGuide()
}

// IrisShape is the iris outline.
type IrisShape struct {
	Outline BezierOutline
}

// DefaultIrisShape returns a circular iris.
func DefaultIrisShape() IrisShape {
	return IrisShape{Outline: Circle(0.18)}
}

// PupilShape is the pupil outline.
type PupilShape struct {
	Outline BezierOutline
}

// DefaultPupilShape returns a circular pupil.
func DefaultPupilShape() PupilShape {
	return PupilShape{Outline: Circle(0.07)}
}

// EyelashShape is drawn as a stroke along the upper edge of the eye outline,
// following the contour during blinks.
type EyelashShape struct {
	Color Color
	// Thickness is the stroke thickness in eye-space units.
	Thickness float64
}

// DefaultEyelashShape returns the stock eyelash.
func DefaultEyelashShape() EyelashShape {
	return EyelashShape{Color: defaultDarkColor, Thickness: 0.020}
}
