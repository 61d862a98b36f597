package eyekit

// EyeUniforms is everything a renderer needs to draw one eye, packed as
// GPU-ready float32 values. It is a plain value: filling it never touches
// the studio again.
type EyeUniforms struct {
	Center   [2]float32 // eye center in the pair view
	BgColor  [3]float32
	EyeAngle float32 // tilt in radians, mirrored for the right eye
	MaxAngle float32
	Time     float32

	EyeOpen   [8][4]float32
	EyeClosed [8][4]float32
	Iris      [8][4]float32
	Pupil     [8][4]float32
	Eyebrow   [12][4]float32

	ScleraColor [3]float32
	IrisColor   [3]float32
	PupilColor  [3]float32

	EyelidClose        float32
	IrisRadius         float32
	PupilRadius        float32
	IrisOffset         [2]float32 // look scaled by iris follow
	Look               [2]float32
	HighlightOffset    [2]float32
	HighlightRadius    float32
	HighlightIntensity float32
	// SquashStretch is the (sx, sy) eye scale from the blink velocity.
	SquashStretch [2]float32

	EyebrowY         float32 // effective height for the current closure
	EyebrowThickness [3]float32
	EyebrowTipRound  [2]float32 // 1 rounds the tip
	EyebrowColor     [3]float32
	EyelashColor     [3]float32
	EyelashThickness float32

	ShowHighlight float32
	ShowEyebrow   float32
	ShowEyelash   float32
}

func boolUniform(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Uniforms returns the renderer record for side at the current time.
func (s *Studio) Uniforms(side Side) EyeUniforms {
	e := &s.Sides[side]
	p := &e.Params
	g := &s.Global

	angle := g.EyeAngle
	if side == SideRight {
		angle = -angle
	}
	sx, sy := 1.0, 1.0
	if s.Blink != nil && g.AutoBlink {
		sx, sy = s.Blink.SquashStretch(s.time, g.SquashStretch)
	}

	u := EyeUniforms{
		Center:   vecArray(s.eyeCenter(side)),
		BgColor:  g.BgColor.Array(),
		EyeAngle: float32(angle),
		MaxAngle: float32(g.MaxAngle),
		Time:     float32(s.time),

		EyeOpen:   e.Eye.Open.ToUniformArray(),
		EyeClosed: e.Eye.Closed.ToUniformArray(),
		Iris:      e.Iris.Outline.ToUniformArray(),
		Pupil:     e.Pupil.Outline.ToUniformArray(),
		Eyebrow:   e.Eyebrow.Outline.ToUniformArray(),

		ScleraColor: p.ScleraColor.Array(),
		IrisColor:   p.IrisColor.Array(),
		PupilColor:  p.PupilColor.Array(),

		EyelidClose:        float32(p.EyelidClose),
		IrisRadius:         float32(p.IrisRadius),
		PupilRadius:        float32(p.PupilRadius),
		IrisOffset:         vecArray(p.Look.Mul(p.IrisFollow)),
		Look:               vecArray(p.Look),
		HighlightOffset:    vecArray(p.HighlightOffset),
		HighlightRadius:    float32(p.HighlightRadius),
		HighlightIntensity: float32(p.HighlightIntensity),
		SquashStretch:      [2]float32{float32(sx), float32(sy)},

		EyebrowY:         float32(e.Eyebrow.EffectiveY(p.EyelidClose)),
		EyebrowTipRound:  [2]float32{boolUniform(e.Eyebrow.TipRound[0]), boolUniform(e.Eyebrow.TipRound[1])},
		EyebrowColor:     e.Eyebrow.Color.Array(),
		EyelashColor:     e.Eyelash.Color.Array(),
		EyelashThickness: float32(e.Eyelash.Thickness),

		ShowHighlight: boolUniform(g.ShowHighlight),
		ShowEyebrow:   boolUniform(g.ShowEyebrow),
		ShowEyelash:   boolUniform(g.ShowEyelash),
	}
	for i, t := range e.Eyebrow.Thickness {
		u.EyebrowThickness[i] = float32(t)
	}
	return u
}
