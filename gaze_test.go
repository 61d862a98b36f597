package eyekit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// runGaze steps g for the given number of frames at 60 TPS.
func runGaze(g *Gaze, frames int) {
	for i := 0; i < frames; i++ {
		g.Update(1.0 / 60)
	}
}

func TestGazeStartsAhead(t *testing.T) {
	g := NewGaze()
	if g.Look() != (Vec2{}) || !g.Settled() {
		t.Errorf("new gaze look=%v settled=%v", g.Look(), g.Settled())
	}
}

func TestGazeEasesToTarget(t *testing.T) {
	g := NewGaze()
	g.SetTarget(Vec2{0.5, -0.25})
	if g.Settled() {
		t.Fatal("settled immediately after SetTarget")
	}
	g.Update(1.0 / 60)
	l := g.Look()
	if l.X <= 0 || l.X >= 0.5 {
		t.Errorf("after one frame look.X = %v, want partway", l.X)
	}
	runGaze(g, 30)
	if !g.Settled() {
		t.Fatal("not settled after 0.5s")
	}
	assertVec(t, "look", g.Look(), Vec2{0.5, -0.25})
}

func TestGazeTargetClamped(t *testing.T) {
	g := NewGaze()
	g.SetTarget(Vec2{3, 4})
	assertVec(t, "target", g.Target(), Vec2{0.6, 0.8})
	g.Snap(Vec2{0, -2})
	assertVec(t, "snap", g.Look(), Vec2{0, -1})
}

func TestGazeRetargetMidway(t *testing.T) {
	g := NewGaze()
	g.SetTarget(Vec2{1, 0})
	runGaze(g, 3)
	mid := g.Look()
	g.SetTarget(Vec2{-1, 0})
	g.Update(1.0 / 60)
	if g.Look().X >= mid.X {
		t.Errorf("retarget did not reverse: %v -> %v", mid, g.Look())
	}
	runGaze(g, 60)
	assertVec(t, "look", g.Look(), Vec2{-1, 0})
}

func TestGazeSameTargetKeepsTween(t *testing.T) {
	g := NewGaze()
	g.SetTarget(Vec2{0.4, 0})
	runGaze(g, 3)
	before := g.Look()
	g.SetTarget(Vec2{0.4, 0})
	g.Update(1.0 / 60)
	if g.Look().X <= before.X {
		t.Errorf("repeating the target restarted the tween: %v -> %v", before, g.Look())
	}
}

func TestGazeZeroDurationSnaps(t *testing.T) {
	g := NewGaze()
	g.Duration = 0
	g.SetTarget(Vec2{0.2, 0.3})
	if !g.Settled() {
		t.Error("zero duration should settle at once")
	}
	assertVec(t, "look", g.Look(), Vec2{0.2, 0.3})
}

func TestGazeCustomEase(t *testing.T) {
	g := NewGaze()
	g.EaseFn = ease.Linear
	g.Duration = 1
	g.SetTarget(Vec2{1, 0})
	g.Update(0.25)
	if !approxEqual(g.Look().X, 0.25, 1e-6) {
		t.Errorf("linear ease at 25%% = %v", g.Look().X)
	}
}

func TestGazeIrisOffset(t *testing.T) {
	g := NewGaze()
	g.Snap(Vec2{0.5, 0.5})
	assertVec(t, "offset", g.IrisOffset(0.1), Vec2{0.05, 0.05})
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name  string
		point Vec2
		eye   Vec2
		focus float64
		want  Vec2
	}{
		{"ahead", Vec2{1, 2}, Vec2{1, 2}, 2, Vec2{}},
		{"right", Vec2{2, 0}, Vec2{}, 2, Vec2{1 / math.Sqrt2, 0}},
		{"offset eye", Vec2{0, 3}, Vec2{0, -1}, 3, Vec2{0, 0.8}},
		{"no focus", Vec2{3, 4}, Vec2{}, 0, Vec2{0.6, 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "LookAt", LookAt(tt.point, tt.eye, tt.focus), tt.want)
		})
	}
}

func TestLookAtStaysInDisc(t *testing.T) {
	for _, p := range []Vec2{{100, 0}, {-50, 50}, {0, -1e6}} {
		if l := LookAt(p, Vec2{}, 2).Hypot(); l >= 1 {
			t.Errorf("LookAt(%v) length %v, want < 1", p, l)
		}
	}
}
