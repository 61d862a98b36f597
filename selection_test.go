package eyekit

import (
	"slices"
	"testing"
)

func TestSelectionOps(t *testing.T) {
	var s Selection
	if !s.Empty() || s.Len() != 0 {
		t.Fatal("zero selection not empty")
	}
	s = s.With(1).With(3)
	if !s.Has(1) || !s.Has(3) || s.Has(0) {
		t.Errorf("With: %b", s)
	}
	s = s.Toggle(3).Toggle(0)
	if !slices.Equal(s.Indices(), []int{0, 1}) {
		t.Errorf("Indices = %v, want [0 1]", s.Indices())
	}
	s = s.Without(0).Without(5)
	if s.Len() != 1 || !s.Has(1) {
		t.Errorf("Without: %b", s)
	}
}

func TestSelectionAll(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{4, 4},
		{6, 6},
		{32, 32},
		{40, 32},
	}
	for _, tt := range tests {
		if got := SelectionAll(tt.n).Len(); got != tt.want {
			t.Errorf("SelectionAll(%d).Len() = %d, want %d", tt.n, got, tt.want)
		}
	}
	if SelectionAll(4).Has(4) {
		t.Error("SelectionAll(4) includes index 4")
	}
}

func TestSelectionOutOfRangePanics(t *testing.T) {
	for _, i := range []int{-1, 32} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Has(%d) did not panic", i)
				}
			}()
			Selection(0).Has(i)
		}()
	}
}

// flipView maps outline space 1:1 onto the screen with Y flipped, so
// outline (x, y) is screen (x, -y).
type flipView struct{}

func (flipView) ToScreen(p Vec2) Vec2  { return Vec2{p.X, -p.Y} }
func (flipView) ToOutline(s Vec2) Vec2 { return Vec2{s.X, -s.Y} }

func TestHitTestAnchor(t *testing.T) {
	anchors := []BezierAnchor{
		{Position: Vec2{0, 0}, HandleOut: Vec2{20, 0}, HandleIn: Vec2{-20, 0}},
		{Position: Vec2{100, 0}},
	}
	h := hitTest(anchors, 0, flipView{}, Vec2{97, 2}, 8)
	if h.kind != hitAnchor || h.index != 1 {
		t.Errorf("hit = %+v, want anchor 1", h)
	}
	h = hitTest(anchors, 0, flipView{}, Vec2{50, 0}, 8)
	if h.kind != hitNone {
		t.Errorf("hit = %+v, want none", h)
	}
}

func TestHitTestHandlesOnlyWhenSelected(t *testing.T) {
	anchors := []BezierAnchor{{Position: Vec2{0, 0}, HandleIn: Vec2{-20, 0}, HandleOut: Vec2{20, 0}}}
	if h := hitTest(anchors, 0, flipView{}, Vec2{20, 0}, 8); h.kind != hitNone {
		t.Errorf("unselected handle picked: %+v", h)
	}
	if h := hitTest(anchors, Selection(0).With(0), flipView{}, Vec2{20, 0}, 8); h.kind != hitHandleOut {
		t.Errorf("hit = %+v, want out handle", h)
	}
	if h := hitTest(anchors, Selection(0).With(0), flipView{}, Vec2{-19, 1}, 8); h.kind != hitHandleIn {
		t.Errorf("hit = %+v, want in handle", h)
	}
}

func TestHitTestAnchorWinsTie(t *testing.T) {
	// A collapsed handle sits on its anchor; the anchor must win.
	anchors := []BezierAnchor{{Position: Vec2{0, 0}, HandleIn: Vec2{-1e-9, 0}, HandleOut: Vec2{1e-9, 0}}}
	h := hitTest(anchors, Selection(0).With(0), flipView{}, Vec2{0, 0}, 8)
	if h.kind != hitAnchor {
		t.Errorf("hit = %+v, want anchor", h)
	}
}

func TestBoxSelectScreenRect(t *testing.T) {
	anchors := []BezierAnchor{
		{Position: Vec2{0, 0}},
		{Position: Vec2{10, -10}}, // screen (10, 10)
		{Position: Vec2{30, -5}},
	}
	got := boxSelect(anchors, flipView{}, Rect{X: -1, Y: -1, Width: 12, Height: 12})
	if !slices.Equal(got.Indices(), []int{0, 1}) {
		t.Errorf("boxSelect = %v, want [0 1]", got.Indices())
	}
}

func TestCentroids(t *testing.T) {
	anchors := []BezierAnchor{
		{Position: Vec2{0, 0}},
		{Position: Vec2{4, 2}},
		{Position: Vec2{100, 100}},
	}
	sel := Selection(0).With(0).With(1)
	assertVec(t, "outline", selectedCentroid(anchors, sel), Vec2{2, 1})
	assertVec(t, "screen", screenCentroid(anchors, sel, flipView{}), Vec2{2, -1})
	assertVec(t, "empty", selectedCentroid(anchors, 0), Vec2{})
}
