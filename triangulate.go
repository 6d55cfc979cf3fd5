package clipper

import (
	"errors"

	poly2tri "github.com/ByteArena/poly2tri-go"
)

// ErrTooFewPoints is returned by Triangulate for a contour with fewer
// than three points.
var ErrTooFewPoints = errors.New("clipper: triangulate requires at least 3 points")

// Triangulate performs a constrained Delaunay triangulation of a single
// closed contour (as produced by Union, or one element of a Difference or
// Intersection result) and returns its triangles as point triples. It is
// a pure function of one contour -- it has no notion of rings, twins, or
// boolean operations, and exists so that a caller who wants renderer-ready
// geometry out of this package doesn't have to reach for a second
// triangulation library themselves (§4.7, §2b).
func Triangulate(contour []Point) ([][3]Point, error) {
	if len(contour) < 3 {
		return nil, ErrTooFewPoints
	}
	points := make([]*poly2tri.Point, len(contour))
	for i, p := range contour {
		points[i] = poly2tri.NewPoint(p.X, p.Y)
	}

	swctx := poly2tri.NewSweepContext(points, false)
	swctx.Triangulate()

	triangles := swctx.GetTriangles()
	out := make([][3]Point, len(triangles))
	for i, tr := range triangles {
		out[i] = [3]Point{
			{X: tr.Points[0].X, Y: tr.Points[0].Y},
			{X: tr.Points[1].X, Y: tr.Points[1].Y},
			{X: tr.Points[2].X, Y: tr.Points[2].Y},
		}
	}
	return out, nil
}
