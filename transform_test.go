package eyekit

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want curve.Affine) {
	t.Helper()
	g, w := got.Coefficients(), want.Coefficients()
	for i := range g {
		if math.Abs(g[i]-w[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, g[i], w[i], g, w)
		}
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- transformPoint / transformVector ---

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := curve.Scale(2, 3).ThenTranslate(Vec2{5, 7})
	assertVec(t, "point", transformPoint(m, Vec2{1, 1}), Vec2{7, 10})
	assertVec(t, "vector", transformVector(m, Vec2{1, 1}), Vec2{2, 3})
}

func TestTransformPointRotate90(t *testing.T) {
	assertVec(t, "rot90 x", transformPoint(curve.Rotate(math.Pi/2), Vec2{1, 0}), Vec2{0, 1})
}

// --- invertAffine ---

func TestInvertAffineRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    curve.Affine
	}{
		{"translate", curve.Translate(Vec2{3, -4})},
		{"scale", curve.Scale(2, 0.5)},
		{"rotate", curve.Rotate(0.7)},
		{"combined", curve.Scale(3, -2).ThenRotate(1.1).ThenTranslate(Vec2{10, 20})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatrix(t, "m*inv", tt.m.Mul(invertAffine(tt.m)), curve.Identity)
		})
	}
}

func TestInvertAffineSingular(t *testing.T) {
	got := invertAffine(curve.Affine{N4: 5, N5: 5})
	assertMatrix(t, "singular", got, curve.Identity)
}

// --- aboutPivot ---

func TestAboutPivotKeepsPivotFixed(t *testing.T) {
	pivot := Vec2{3, -2}
	for _, m := range []curve.Affine{curve.Scale(2, 2), curve.Scale(0.5, 3), curve.Rotate(1.3)} {
		assertVec(t, "pivot", transformPoint(aboutPivot(m, pivot), pivot), pivot)
	}
}

func TestAboutPivotScale(t *testing.T) {
	m := aboutPivot(curve.Scale(2, 2), Vec2{1, 1})
	assertVec(t, "point", transformPoint(m, Vec2{2, 1}), Vec2{3, 1})
	assertVec(t, "point", transformPoint(m, Vec2{1, 0}), Vec2{1, -1})
}

func TestAboutPivotMatchesRotateAbout(t *testing.T) {
	pivot := Vec2{0.3, -1.2}
	assertMatrix(t, "rotate", aboutPivot(curve.Rotate(0.9), pivot), curve.RotateAbout(0.9, pt(pivot)))
}

// --- transformAnchor ---

func TestTransformAnchorTranslateLeavesHandles(t *testing.T) {
	a := BezierAnchor{Position: Vec2{1, 2}, HandleIn: Vec2{-0.5, 0}, HandleOut: Vec2{0.5, 0}}
	got := transformAnchor(curve.Translate(Vec2{10, -3}), a)
	assertVec(t, "Position", got.Position, Vec2{11, -1})
	assertVec(t, "HandleIn", got.HandleIn, a.HandleIn)
	assertVec(t, "HandleOut", got.HandleOut, a.HandleOut)
}

func TestTransformAnchorRotateTurnsHandles(t *testing.T) {
	a := BezierAnchor{Position: Vec2{1, 0}, HandleIn: Vec2{0, -0.2}, HandleOut: Vec2{0, 0.3}}
	got := transformAnchor(curve.Rotate(math.Pi/2), a)
	assertVec(t, "Position", got.Position, Vec2{0, 1})
	assertVec(t, "HandleIn", got.HandleIn, Vec2{0.2, 0})
	assertVec(t, "HandleOut", got.HandleOut, Vec2{-0.3, 0})
	if !got.IsCollinear(1e-9) {
		t.Error("rotation broke collinearity")
	}
}

func TestSimilarity(t *testing.T) {
	m, ok := similarity(Vec2{1, 0}, Vec2{0, 2})
	if !ok {
		t.Fatal("similarity failed")
	}
	assertVec(t, "x", transformVector(m, Vec2{1, 0}), Vec2{0, 2})
	assertVec(t, "y", transformVector(m, Vec2{0, 1}), Vec2{-2, 0})
	if _, ok := similarity(Vec2{}, Vec2{1, 1}); ok {
		t.Error("similarity from a zero vector succeeded")
	}
}
