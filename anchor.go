package eyekit

import (
	"math"

	"honnef.co/go/curve"
)

// degenerateLen is the length below which a vector has no usable direction.
const degenerateLen = 1e-8

// BezierAnchor is a point on a closed curve plus two tangent handles.
// Handles are offsets relative to Position: HandleIn points toward the
// previous anchor, HandleOut toward the next one.
//
// After any handle edit the two handles are kept collinear (pointing in
// opposite directions through the anchor), each keeping its own length.
type BezierAnchor struct {
	Position  Vec2
	HandleIn  Vec2
	HandleOut Vec2
}

// EnforceCollinearFromOut points HandleIn opposite to HandleOut while keeping
// HandleIn's length. A zero-length HandleOut has no direction to propagate and
// leaves the anchor untouched.
func (a *BezierAnchor) EnforceCollinearFromOut() {
	outLen := a.HandleOut.Hypot()
	if outLen < degenerateLen {
		return
	}
	inLen := a.HandleIn.Hypot()
	a.HandleIn = a.HandleOut.Mul(-inLen / outLen)
}

// EnforceCollinearFromIn points HandleOut opposite to HandleIn while keeping
// HandleOut's length.
func (a *BezierAnchor) EnforceCollinearFromIn() {
	inLen := a.HandleIn.Hypot()
	if inLen < degenerateLen {
		return
	}
	outLen := a.HandleOut.Hypot()
	a.HandleOut = a.HandleIn.Mul(-outLen / inLen)
}

// SetHandleIn assigns the incoming handle and repairs HandleOut.
func (a *BezierAnchor) SetHandleIn(v Vec2) {
	a.HandleIn = v
	a.EnforceCollinearFromIn()
}

// SetHandleOut assigns the outgoing handle and repairs HandleIn.
func (a *BezierAnchor) SetHandleOut(v Vec2) {
	a.HandleOut = v
	a.EnforceCollinearFromOut()
}

// InPoint returns the absolute position of the incoming control point.
func (a BezierAnchor) InPoint() Vec2 { return a.Position.Add(a.HandleIn) }

// OutPoint returns the absolute position of the outgoing control point.
func (a BezierAnchor) OutPoint() Vec2 { return a.Position.Add(a.HandleOut) }

// Translate moves the anchor by d. Handles follow rigidly.
func (a BezierAnchor) Translate(d Vec2) BezierAnchor {
	a.Position = a.Position.Add(d)
	return a
}

// Mirrored reflects the anchor across the vertical axis. Reflection reverses
// the traversal direction, so the handles swap roles.
func (a BezierAnchor) Mirrored() BezierAnchor {
	return BezierAnchor{
		Position:  transformPoint(curve.FlipX, a.Position),
		HandleIn:  transformVector(curve.FlipX, a.HandleOut),
		HandleOut: transformVector(curve.FlipX, a.HandleIn),
	}
}

// IsCollinear reports whether the handles are antiparallel within tol
// radians. An anchor with a zero-length handle is always collinear.
func (a BezierAnchor) IsCollinear(tol float64) bool {
	if a.HandleIn.Hypot() < degenerateLen || a.HandleOut.Hypot() < degenerateLen {
		return true
	}
	return handleAngle(a) <= tol
}

// handleAngle is the deviation of a's handles from antiparallel, in radians.
// atan2 keeps precision near zero, where cos(tol) rounds to 1.
func handleAngle(a BezierAnchor) float64 {
	in, out := a.HandleIn, a.HandleOut
	return math.Abs(math.Atan2(in.Cross(out), -in.Dot(out)))
}
