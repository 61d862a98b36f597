package eyekit

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Easing selects the curve used to approach a keyframe.
type Easing uint8

const (
	EaseLinear    Easing = iota // constant speed
	EaseIn                      // accelerating (quadratic)
	EaseOut                     // decelerating (quadratic)
	EaseInOut                   // accelerate then decelerate
)

var easingNames = [...]string{"linear", "ease_in", "ease_out", "ease_in_out"}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return "unknown"
}

// tweenFunc returns the gween easing function for e.
func (e Easing) tweenFunc() ease.TweenFunc {
	switch e {
	case EaseIn:
		return ease.InQuad
	case EaseOut:
		return ease.OutQuad
	case EaseInOut:
		return ease.InOutQuad
	default:
		return ease.Linear
	}
}

// Apply maps a progress value in [0, 1] through the easing curve.
func (e Easing) Apply(t float64) float64 {
	return float64(e.tweenFunc()(float32(t), 0, 1, 1))
}

// Keyframe is one eyelid pose. Easing shapes the segment that ends at this
// keyframe.
type Keyframe struct {
	Time   float64
	Value  float64
	Easing Easing
}

// segmentEpsilon is the shortest segment that is interpolated; shorter ones
// snap to their end value.
const segmentEpsilon = 1e-7

// BlinkAnimation is a looping keyframe track of eyelid closure. Value 0 is
// fully open and 1 fully closed. It is immutable once built.
type BlinkAnimation struct {
	keyframes []Keyframe
	period    float64
}

var (
	// ErrNoKeyframes is returned for an empty keyframe list.
	ErrNoKeyframes = errors.New("eyekit: blink animation has no keyframes")
	// ErrBadPeriod is returned for a non-positive period.
	ErrBadPeriod = errors.New("eyekit: blink period must be positive")
)

// NewBlinkAnimation validates and builds an animation. Keyframe times must
// be non-decreasing and lie within [0, period].
func NewBlinkAnimation(keyframes []Keyframe, period float64) (*BlinkAnimation, error) {
	if len(keyframes) == 0 {
		return nil, ErrNoKeyframes
	}
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadPeriod, period)
	}
	for i, kf := range keyframes {
		if !(kf.Time >= 0 && kf.Time <= period) {
			return nil, fmt.Errorf("eyekit: keyframe %d time %v outside [0, %v]", i, kf.Time, period)
		}
		if i > 0 && kf.Time < keyframes[i-1].Time {
			return nil, fmt.Errorf("eyekit: keyframe %d time %v precedes %v", i, kf.Time, keyframes[i-1].Time)
		}
		if kf.Easing > EaseInOut {
			return nil, fmt.Errorf("eyekit: keyframe %d has unknown easing %d", i, kf.Easing)
		}
	}
	kfs := make([]Keyframe, len(keyframes))
	copy(kfs, keyframes)
	return &BlinkAnimation{keyframes: kfs, period: period}, nil
}

// MustBlinkAnimation is like NewBlinkAnimation but panics on error.
func MustBlinkAnimation(keyframes []Keyframe, period float64) *BlinkAnimation {
	b, err := NewBlinkAnimation(keyframes, period)
	if err != nil {
		panic(err)
	}
	return b
}

// Period returns the loop length in seconds.
func (b *BlinkAnimation) Period() float64 { return b.period }

// Keyframes returns a copy of the keyframe list.
func (b *BlinkAnimation) Keyframes() []Keyframe {
	out := make([]Keyframe, len(b.keyframes))
	copy(out, b.keyframes)
	return out
}

// Evaluate returns the eyelid closure at time t. Time wraps with a Euclidean
// modulo so negative t loops too.
//
// Eased segments go through gween's float32 curves, so their results carry
// float32 rounding (about 1e-8). Segments between equal values are exact.
func (b *BlinkAnimation) Evaluate(t float64) float64 {
	kfs := b.keyframes
	loopT := math.Mod(t, b.period)
	if loopT < 0 {
		loopT += b.period
	}

	next := -1
	for i, kf := range kfs {
		if kf.Time > loopT {
			next = i
			break
		}
	}
	switch next {
	case -1:
		return kfs[len(kfs)-1].Value
	case 0:
		return kfs[0].Value
	}

	prev, cur := kfs[next-1], kfs[next]
	dur := cur.Time - prev.Time
	if dur < segmentEpsilon {
		return cur.Value
	}
	local := (loopT - prev.Time) / dur
	eased := cur.Easing.Apply(local)
	return prev.Value + (cur.Value-prev.Value)*eased
}

// velocityStep is the central-difference step for Velocity, in seconds.
const velocityStep = 1.0 / 240

// Velocity returns the rate of change of closure at t, per second.
func (b *BlinkAnimation) Velocity(t float64) float64 {
	return (b.Evaluate(t+velocityStep) - b.Evaluate(t-velocityStep)) / (2 * velocityStep)
}

// maxSquashStretch bounds the stretch factor so a snapping eyelid never
// flattens the eye to nothing.
const maxSquashStretch = 0.35

// SquashStretch returns volume-preserving (sx, sy) scale factors for the eye
// at t. A closing lid squashes the eye vertically, an opening lid stretches
// it. strength scales the effect; zero disables it. sx*sy is always 1.
func (b *BlinkAnimation) SquashStretch(t, strength float64) (sx, sy float64) {
	if strength == 0 {
		return 1, 1
	}
	// Closure units per second are large during a snap; scale down to a
	// factor around [-1, 1].
	k := -b.Velocity(t) * strength * 0.05
	k = math.Max(-maxSquashStretch, math.Min(maxSquashStretch, k))
	sy = 1 + k
	return 1 / sy, sy
}

// SampleBlink returns the built-in loop: a relaxed squint, a quick double
// blink, then a lazy half-close.
func SampleBlink() *BlinkAnimation {
	return MustBlinkAnimation([]Keyframe{
		{0.00, 0.20, EaseLinear},
		{1.00, 0.20, EaseLinear},
		{1.12, 1.00, EaseIn},
		{1.22, 0.45, EaseOut},
		{1.32, 1.00, EaseIn},
		{1.57, 0.20, EaseInOut},
		{2.10, 0.20, EaseLinear},
		{2.20, 0.50, EaseIn},
		{2.40, 0.50, EaseLinear},
		{2.55, 0.20, EaseOut},
		{3.00, 0.20, EaseLinear},
	}, 3.0)
}
