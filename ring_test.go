package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func square() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestBuildRingTooFewPoints(t *testing.T) {
	_, ok := buildRing([]Point{{0, 0}, {1, 0}})
	test.That(t, !ok, "expected buildRing to reject fewer than 3 points")
}

func TestBuildRingIdempotence(t *testing.T) {
	pts := square()
	r, ok := buildRing(pts)
	test.That(t, ok)
	test.T(t, r.points(), pts)
}

func TestRingNeighborInvariant(t *testing.T) {
	r, _ := buildRing(square())
	v := r.head
	for i := 0; i < 4; i++ {
		test.That(t, v.next.prev == v, "v.next.prev == v must hold")
		test.That(t, v.prev.next == v, "v.prev.next == v must hold")
		v = v.next
	}
	test.That(t, v == r.head, "ring should cycle back to head after 4 steps")
}

func TestSpliceBetween(t *testing.T) {
	r, _ := buildRing(square())
	a := r.head
	b := a.next
	mid := &vertex{point: Point{0.5, 0}}
	spliceBetween(a, b, mid)

	test.That(t, a.next == mid)
	test.That(t, mid.prev == a)
	test.That(t, mid.next == b)
	test.That(t, b.prev == mid)
	test.T(t, r.points(), []Point{{0, 0}, {0.5, 0}, {1, 0}, {1, 1}, {0, 1}})
}

func TestTraverseVisitsEachVertexOnce(t *testing.T) {
	r, _ := buildRing(square())
	var visited []Point
	traverse(r.head, func(v *vertex) (*vertex, bool) {
		visited = append(visited, v.point)
		return nil, false
	})
	test.T(t, visited, square())
}

func TestTraverseHandlesMidWalkSplice(t *testing.T) {
	// A visitor that splices a new vertex in front of the current one
	// must not derail the walk -- traverse captures next before visiting.
	r, _ := buildRing(square())
	count := 0
	traverse(r.head, func(v *vertex) (*vertex, bool) {
		count++
		if v.point == (Point{1, 0}) {
			spliceBetween(v, v.next, &vertex{point: Point{1, 0.5}})
		}
		return nil, false
	})
	test.T(t, count, 4)
}

func TestFindFirstOf(t *testing.T) {
	r, _ := buildRing(square())
	r.head.next.tag = OutToIn
	found := findFirstOf(r.head, OutToIn)
	test.That(t, found == r.head.next)
	test.That(t, findFirstOf(r.head, InToOut) == nil)
}
