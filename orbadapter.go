package clipper

import "github.com/paulmach/orb"

// FromOrbRing converts an orb.Ring into the point-slice contour
// representation this package's operations accept. orb.Ring is
// conventionally closed (first point repeated as last); a trailing point
// equal to the first is dropped, since this package's own contours are
// implicitly closed and never carry a duplicate closing point (§6).
func FromOrbRing(r orb.Ring) []Point {
	if len(r) == 0 {
		return nil
	}
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = Point{X: r[i][0], Y: r[i][1]}
	}
	return out
}

// ToOrbRing converts a contour into an orb.Ring, closing it explicitly
// (repeating the first point as the last) to match orb's convention.
func ToOrbRing(contour []Point) orb.Ring {
	if len(contour) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(contour)+1)
	for _, p := range contour {
		r = append(r, orb.Point{p.X, p.Y})
	}
	r = append(r, r[0])
	return r
}

// FromOrbPolygon converts an orb.Polygon's rings into contours, keeping
// the exterior/hole ordering orb provides; this package does not
// interpret holes itself (its Non-goals exclude input holes) but callers
// assembling a Polygon from this package's own multi-contour outputs
// (Difference, Intersection) can use ToOrbPolygon below instead.
func FromOrbPolygon(p orb.Polygon) [][]Point {
	out := make([][]Point, len(p))
	for i, r := range p {
		out[i] = FromOrbRing(r)
	}
	return out
}

// ToOrbPolygon converts a list of contours (as returned by Difference or
// Intersection) into an orb.Polygon, one ring per contour.
func ToOrbPolygon(contours [][]Point) orb.Polygon {
	p := make(orb.Polygon, len(contours))
	for i, c := range contours {
		p[i] = ToOrbRing(c)
	}
	return p
}
