package eyekit

import (
	"math"

	"honnef.co/go/curve"
)

// Vec2 is a 2D vector used for positions, handle offsets and directions
// throughout the API. Outline space has Y increasing upward.
type Vec2 = curve.Vec2

// pt views v as a point for curve's point-based APIs.
func pt(v Vec2) curve.Point { return curve.Point(v) }

// unit returns v scaled to unit length, or the zero vector when v is
// shorter than 1e-8.
func unit(v Vec2) Vec2 {
	if v.Hypot() < degenerateLen {
		return Vec2{}
	}
	return v.Normalize()
}

// perp returns v rotated a quarter turn counter-clockwise.
func perp(v Vec2) Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// vecArray packs v for GPU upload.
func vecArray(v Vec2) [2]float32 { return [2]float32{float32(v.X), float32(v.Y)} }

// Rect is an axis-aligned rectangle in screen space. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCorners returns the rectangle spanned by two arbitrary corners.
func RectFromCorners(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Contains reports whether the point p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Color is a linear sRGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Array packs the color for GPU upload.
func (c Color) Array() [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// ColorFromArray is the inverse of Color.Array.
func ColorFromArray(a [3]float32) Color {
	return Color{float64(a[0]), float64(a[1]), float64(a[2])}
}

// Side identifies one eye of the pair.
type Side uint8

const (
	SideLeft  Side = iota // viewer's left eye
	SideRight             // viewer's right eye
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Part identifies an editable outline of one eye.
type Part uint8

const (
	PartEyeOpen      Part = iota // open-eye outline
	PartEyeClosed                // closed-eye outline
	PartIris                     // iris outline
	PartPupil                    // pupil outline
	PartEyebrow                  // 6-anchor eyebrow outline
	PartEyebrowGuide             // 3-point eyebrow guide
)

var partNames = [...]string{"eye-open", "eye-closed", "iris", "pupil", "eyebrow", "eyebrow-guide"}

func (p Part) String() string {
	if int(p) < len(partNames) {
		return partNames[p]
	}
	return "unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a keyboard key the editor reacts to.
type Key uint8

const (
	KeyG      Key = iota // grab
	KeyS                 // scale
	KeyR                 // rotate
	KeyX                 // constrain to X
	KeyY                 // constrain to Y
	KeyA                 // toggle select all
	KeyEscape            // cancel
)

var keyNames = [...]string{"g", "s", "r", "x", "y", "a", "escape"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// parseKey maps a key name as used in input scripts to a Key.
func parseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}
