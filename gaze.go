package eyekit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// lookAnim holds the active tweens easing the look direction toward its
// target.
type lookAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Gaze is the look direction shared by both eyes: a vector in the unit disc
// where (0, 0) is straight ahead and length 1 is the steepest angle the
// renderer allows. Targets are approached with a tween rather than snapped.
type Gaze struct {
	// Duration is the time, in seconds, to settle on a new target.
	Duration float32
	// EaseFn shapes the approach. Defaults to ease.OutCubic.
	EaseFn ease.TweenFunc

	look   Vec2
	target Vec2
	anim   *lookAnim
}

// NewGaze returns a gaze looking straight ahead.
func NewGaze() *Gaze {
	return &Gaze{Duration: 0.12, EaseFn: ease.OutCubic}
}

// clampDisc scales v back onto the unit disc if it lies outside it.
func clampDisc(v Vec2) Vec2 {
	if l := v.Hypot(); l > 1 {
		return v.Div(l)
	}
	return v
}

// SetTarget starts easing the look toward v, clamped to the unit disc.
func (g *Gaze) SetTarget(v Vec2) {
	v = clampDisc(v)
	if v == g.target && g.anim != nil {
		return
	}
	g.target = v
	fn := g.EaseFn
	if fn == nil {
		fn = ease.OutCubic
	}
	if g.Duration <= 0 {
		g.look = v
		g.anim = nil
		return
	}
	g.anim = &lookAnim{
		tweenX: gween.New(float32(g.look.X), float32(v.X), g.Duration, fn),
		tweenY: gween.New(float32(g.look.Y), float32(v.Y), g.Duration, fn),
	}
}

// Snap sets the look immediately, dropping any tween.
func (g *Gaze) Snap(v Vec2) {
	v = clampDisc(v)
	g.look, g.target, g.anim = v, v, nil
}

// Update advances the tween by dt seconds.
func (g *Gaze) Update(dt float32) {
	a := g.anim
	if a == nil {
		return
	}
	if !a.doneX {
		x, done := a.tweenX.Update(dt)
		g.look.X = float64(x)
		a.doneX = done
	}
	if !a.doneY {
		y, done := a.tweenY.Update(dt)
		g.look.Y = float64(y)
		a.doneY = done
	}
	if a.doneX && a.doneY {
		g.look = g.target
		g.anim = nil
	}
}

// Look returns the current look direction.
func (g *Gaze) Look() Vec2 { return g.look }

// Target returns the direction being eased toward.
func (g *Gaze) Target() Vec2 { return g.target }

// Settled reports whether the look has reached its target.
func (g *Gaze) Settled() bool { return g.anim == nil }

// IrisOffset returns the iris displacement in outline units for an iris
// that travels follow units at full deflection.
func (g *Gaze) IrisOffset(follow float64) Vec2 { return g.look.Mul(follow) }

// LookAt converts a point in outline space into a look direction for an eye
// centered at eye. focus is the distance of the viewing plane in front of the
// eye; the result is the sine of the angle toward the point, which keeps it
// inside the unit disc without clamping. A non-positive focus looks straight
// at the point's direction.
func LookAt(point, eye Vec2, focus float64) Vec2 {
	d := point.Sub(eye)
	if focus <= 0 {
		return unit(d)
	}
	return d.Div(math.Sqrt(d.Hypot2() + focus*focus))
}
