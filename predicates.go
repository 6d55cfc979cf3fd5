package clipper

// signedArea is twice the signed area of the triangle (a, b, c) -- the
// cross product (a-c) x (b-c) -- positive when a, b, c run
// counter-clockwise in a right-handed frame. This is the sole
// predicate the engine is built on: the interior of a ring is the side for
// which the signed area of a small triangle formed with an edge is
// positive.
func signedArea(a, b, c Point) float64 {
	return a.Sub(c).Cross(b.Sub(c))
}

// intersection is the result of a segment/segment intersection test: the
// parametric position t on the first segment, and the crossing direction
// of each segment relative to its own forward traversal.
type intersection struct {
	t          float64
	tag0, tag1 VertexTag
}

// intersectSegments tests segment s0=(p0,p1) against s1=(q0,q1) and
// reports the intersection, if any. Tangent configurations (a3*a4 == 0)
// are deliberately reported as no-intersection; see the design notes on
// exact tangency. Only t in [0,1] is meaningful to callers -- intersect
// returns ok=false for any other configuration.
func intersectSegments(p0, p1, q0, q1 Point) (intersection, bool) {
	a1 := signedArea(p0, p1, q1)
	a2 := signedArea(p0, p1, q0)
	if a1*a2 > 0 {
		return intersection{}, false
	}
	a3 := signedArea(q0, q1, p0)
	a4 := a3 + a2 - a1
	if a3*a4 >= 0 {
		return intersection{}, false
	}
	t := a3 / (a3 - a4)
	// a3 is p0's side of the line through (q0,q1); a4 (by the identity
	// a3+a2-a1) is p1's side of that same line. p0 on the negative side of
	// a CCW ring's edge is outside it, so a3 < 0 means s0 is entering s1's
	// ring here, not leaving it.
	tag0 := InToOut
	if a3 < 0 {
		tag0 = OutToIn
	}
	tag1 := InToOut
	if a2 < 0 {
		tag1 = OutToIn
	}
	return intersection{t: t, tag0: tag0, tag1: tag1}, true
}
