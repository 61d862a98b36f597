package eyekit

import "honnef.co/go/curve"

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m curve.Affine) curve.Affine {
	det := m.Determinant()
	if det > -1e-12 && det < 1e-12 {
		return curve.Identity
	}
	return m.Invert()
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m curve.Affine, p Vec2) Vec2 {
	return Vec2(pt(p).Transform(m))
}

// transformVector applies only the linear part of m, for free vectors such
// as handle offsets.
func transformVector(m curve.Affine, v Vec2) Vec2 {
	return Vec2(pt(v).Transform(m.WithTranslation(Vec2{})))
}

// aboutPivot conjugates m so that it acts around pivot instead of the origin:
// Translate(pivot) * m * Translate(-pivot).
func aboutPivot(m curve.Affine, pivot Vec2) curve.Affine {
	return m.PreTranslate(pivot.Negate()).ThenTranslate(pivot)
}

// transformAnchor maps the anchor position as a point and both handles as
// free vectors.
func transformAnchor(m curve.Affine, a BezierAnchor) BezierAnchor {
	return BezierAnchor{
		Position:  transformPoint(m, a.Position),
		HandleIn:  transformVector(m, a.HandleIn),
		HandleOut: transformVector(m, a.HandleOut),
	}
}
