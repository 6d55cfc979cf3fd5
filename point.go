package clipper

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a planar point in double precision. It is the currency of the
// package's public API: contours in, contours out.
type Point struct {
	X, Y float64
}

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return fromVec(r2.Scale(s, p.vec())) }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return r2.Dot(p.vec(), q.vec()) }

// Cross returns the 2D cross product p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// NearlyEqual reports whether p and q are within epsilon of each other in
// squared distance. Used by fixture comparisons and by tests, never by the
// exact-predicate core itself (see §4.2 / §9 of the design notes on
// tangency).
func (p Point) NearlyEqual(q Point, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.DistanceSquared(q), 0, epsilon)
}

// Equals reports whether p and q are equal within defaultEpsilon. Tests
// rely on this for tdewolff/test's Equals-aware comparisons.
func (p Point) Equals(q Point) bool {
	return p.NearlyEqual(q, defaultEpsilon)
}
