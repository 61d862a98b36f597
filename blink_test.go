package eyekit

import (
	"errors"
	"math"
	"testing"
)

// gween evaluates in float32, so eased values carry ~1e-7 relative error.
const easeEps = 1e-5

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, easeEps) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestEasingApply(t *testing.T) {
	tests := []struct {
		e    Easing
		t    float64
		want float64
	}{
		{EaseLinear, 0.3, 0.3},
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.25, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			assertClose(t, "Apply", tt.e.Apply(tt.t), tt.want)
		})
	}
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut} {
		assertClose(t, e.String()+"(0)", e.Apply(0), 0)
		assertClose(t, e.String()+"(1)", e.Apply(1), 1)
	}
}

func TestSampleBlinkScenario(t *testing.T) {
	b := SampleBlink()
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0.20},
		{"resting", 0.5, 0.20},
		{"first close", 1.12, 1.00},
		// Ease-out halfway from 1.00 to 0.45.
		{"reopening", 1.17, 0.5875},
		{"reclosed", 1.32, 1.00},
		{"half close", 2.30, 0.50},
		{"tail", 2.80, 0.20},
		{"wrapped", 3.0, 0.20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertClose(t, "Evaluate", b.Evaluate(tt.t), tt.want)
		})
	}
}

func TestBlinkPeriodic(t *testing.T) {
	b := SampleBlink()
	for _, tm := range []float64{0, 0.4, 1.05, 1.17, 1.5, 2.25, 2.6, 2.99} {
		v := b.Evaluate(tm)
		assertClose(t, "t+period", b.Evaluate(tm+b.Period()), v)
		assertClose(t, "t+10*period", b.Evaluate(tm+10*b.Period()), v)
		assertClose(t, "t-period", b.Evaluate(tm-b.Period()), v)
	}
}

func TestBlinkNegativeTime(t *testing.T) {
	b := SampleBlink()
	assertClose(t, "-0.5", b.Evaluate(-0.5), b.Evaluate(2.5))
	// Ease-out from 0.50 toward 0.20, two thirds of the way.
	assertClose(t, "2.5", b.Evaluate(2.5), 0.5-0.3*(2.0/3.0)*(2-2.0/3.0))
}

func TestBlinkRange(t *testing.T) {
	b := SampleBlink()
	for i := 0; i <= 3000; i++ {
		v := b.Evaluate(float64(i) / 1000)
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("Evaluate(%v) = %v out of [0, 1]", float64(i)/1000, v)
		}
	}
}

func TestBlinkSingleKeyframe(t *testing.T) {
	b := MustBlinkAnimation([]Keyframe{{Time: 0.5, Value: 0.7}}, 1)
	for _, tm := range []float64{0, 0.2, 0.5, 0.9, -3.3} {
		assertNear(t, "Evaluate", b.Evaluate(tm), 0.7)
	}
}

func TestBlinkBeforeFirstKeyframe(t *testing.T) {
	b := MustBlinkAnimation([]Keyframe{{Time: 0.5, Value: 0.3}, {Time: 1, Value: 0.9}}, 2)
	assertNear(t, "before first", b.Evaluate(0.1), 0.3)
	assertNear(t, "after last", b.Evaluate(1.5), 0.9)
	assertNear(t, "midway", b.Evaluate(0.75), 0.6)
}

func TestBlinkTinySegmentSnapsToEnd(t *testing.T) {
	b := MustBlinkAnimation([]Keyframe{
		{Time: 0, Value: 0},
		{Time: 1, Value: 0},
		{Time: 1 + 5e-8, Value: 1},
		{Time: 2, Value: 1},
	}, 2)
	assertNear(t, "inside tiny segment", b.Evaluate(1+2e-8), 1)
}

func TestBlinkCoincidentKeyframes(t *testing.T) {
	b := MustBlinkAnimation([]Keyframe{
		{Time: 0, Value: 0},
		{Time: 1, Value: 0},
		{Time: 1, Value: 1},
		{Time: 2, Value: 1},
	}, 2)
	assertNear(t, "before step", b.Evaluate(0.999), 0)
	assertNear(t, "at step", b.Evaluate(1), 1)
}

func TestNewBlinkAnimationErrors(t *testing.T) {
	tests := []struct {
		name     string
		kfs      []Keyframe
		period   float64
		sentinel error
	}{
		{"empty", nil, 1, ErrNoKeyframes},
		{"zero period", []Keyframe{{}}, 0, ErrBadPeriod},
		{"negative period", []Keyframe{{}}, -1, ErrBadPeriod},
		{"nan period", []Keyframe{{}}, math.NaN(), ErrBadPeriod},
		{"inf period", []Keyframe{{}}, math.Inf(1), ErrBadPeriod},
		{"negative time", []Keyframe{{Time: -0.1}}, 1, nil},
		{"time past period", []Keyframe{{Time: 1.5}}, 1, nil},
		{"decreasing", []Keyframe{{Time: 0.5}, {Time: 0.2}}, 1, nil},
		{"bad easing", []Keyframe{{Easing: Easing(9)}}, 1, nil},
		{"nan time", []Keyframe{{Time: math.NaN()}}, 1, nil},
		{"nan time after first", []Keyframe{{Time: 0}, {Time: math.NaN()}}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBlinkAnimation(tt.kfs, tt.period)
			if err == nil {
				t.Fatal("expected error")
			}
			if b != nil {
				t.Error("animation returned alongside error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("err = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestNewBlinkAnimationCopies(t *testing.T) {
	kfs := []Keyframe{{Time: 0, Value: 0.1}, {Time: 1, Value: 0.1}}
	b := MustBlinkAnimation(kfs, 1)
	kfs[0].Value = 0.9
	assertNear(t, "Evaluate", b.Evaluate(0), 0.1)

	out := b.Keyframes()
	out[0].Value = 0.9
	assertNear(t, "Evaluate after Keyframes edit", b.Evaluate(0), 0.1)
}

func TestMustBlinkAnimationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBlinkAnimation(nil, 1)
}

func TestBlinkVelocity(t *testing.T) {
	b := SampleBlink()
	assertNear(t, "resting", b.Velocity(0.5), 0)
	if v := b.Velocity(1.08); v <= 0 {
		t.Errorf("closing velocity = %v, want > 0", v)
	}
	if v := b.Velocity(1.45); v >= 0 {
		t.Errorf("opening velocity = %v, want < 0", v)
	}
}

func TestSquashStretch(t *testing.T) {
	b := SampleBlink()
	sx, sy := b.SquashStretch(0.5, 1)
	assertNear(t, "rest sx", sx, 1)
	assertNear(t, "rest sy", sy, 1)

	sx, sy = b.SquashStretch(1.08, 1)
	if sy >= 1 || sx <= 1 {
		t.Errorf("closing: sx=%v sy=%v, want squash", sx, sy)
	}
	if sy < 1-maxSquashStretch-epsilon {
		t.Errorf("sy = %v below clamp", sy)
	}

	for i := 0; i < 300; i++ {
		tm := float64(i) / 100
		sx, sy := b.SquashStretch(tm, 2.5)
		assertNear(t, "sx*sy", sx*sy, 1)
	}

	sx, sy = b.SquashStretch(1.08, 0)
	if sx != 1 || sy != 1 {
		t.Errorf("zero strength = (%v, %v), want (1, 1)", sx, sy)
	}
}

func TestEvaluatePrecision(t *testing.T) {
	b := SampleBlink()
	// Equal-valued segments are exact, eased ones are float32-accurate.
	if got := b.Evaluate(0.5); got != 0.2 {
		t.Errorf("Evaluate(0.5) = %v, want exactly 0.2", got)
	}
	// 2.40 -> 2.55 eases out from 0.5 to 0.2; u = 2/3 gives 8/9 progress.
	want := 0.5 - 0.3*8.0/9.0
	if got := b.Evaluate(2.5); !approxEqual(got, want, 1e-7) {
		t.Errorf("Evaluate(2.5) = %v, want %v within 1e-7", got, want)
	}
}
