package clipper

// vertex is a node in a Ring's circular doubly-linked list. twin is only
// ever set on an intersection vertex (tag OutToIn or InToOut) and points
// at the corresponding vertex on the other ring sharing the same point.
type vertex struct {
	point   Point
	tag     VertexTag
	visited bool
	twin    *vertex
	next    *vertex
	prev    *vertex
}

// Ring is a non-empty circular doubly-linked sequence of vertices. A Ring
// owns the vertices it was built with and any vertices later spliced into
// it by the enricher; there is no distinguished head beyond an arbitrary
// entry point.
type Ring struct {
	head *vertex
}

// buildRing creates a Ring from a contour of n points, wiring neighbors
// cyclically. It reports ok=false for contours with fewer than three
// points, which is the one recoverable condition this package surfaces
// (see the design notes on error handling) -- everything else about a
// degenerate contour is undefined behavior, not a reported error.
func buildRing(points []Point) (*Ring, bool) {
	if len(points) < 3 {
		return nil, false
	}
	verts := make([]*vertex, len(points))
	for i, p := range points {
		verts[i] = &vertex{point: p}
	}
	n := len(verts)
	for i, v := range verts {
		v.next = verts[(i+1)%n]
		v.prev = verts[(i+n-1)%n]
	}
	return &Ring{head: verts[0]}, true
}

// points reads the ring back out in forward order starting at head. Used
// by the ring-construction tests (idempotence, §8); the traversers build
// their output contours directly.
func (r *Ring) points() []Point {
	if r == nil || r.head == nil {
		return nil
	}
	out := []Point{r.head.point}
	for v := r.head.next; v != r.head; v = v.next {
		out = append(out, v.point)
	}
	return out
}

// spliceBetween inserts v between prev and prev.next, updating all four
// pointers. next must already be prev.next (and next.prev must be prev)
// going in.
func spliceBetween(prev, next, v *vertex) {
	prev.next = v
	v.prev = prev
	v.next = next
	next.prev = v
}

// traverse walks the ring starting at start, calling visit on each
// vertex. The next vertex is captured before visit runs so that visit may
// splice new vertices in front of the current one (as the enricher does)
// without corrupting the walk, and may redirect the walk by returning a
// non-nil next override (as Union does to skip over a twin detour).
// Traversal stops when visit returns stop=true or when it runs back around
// to start.
func traverse(start *vertex, visit func(v *vertex) (next *vertex, stop bool)) {
	if start == nil {
		return
	}
	v := start
	for {
		captured := v.next
		next, stop := visit(v)
		if stop {
			return
		}
		if next != nil {
			captured = next
		}
		if captured == start {
			return
		}
		v = captured
	}
}

// findFirstOf returns the first vertex in ring order starting at start
// (inclusive) whose tag equals tag, or nil if none exists.
func findFirstOf(start *vertex, tag VertexTag) *vertex {
	if start == nil {
		return nil
	}
	v := start
	for {
		if v.tag == tag {
			return v
		}
		v = v.next
		if v == start {
			return nil
		}
	}
}

// findFirstCrossing returns the first intersection vertex (OutToIn or
// InToOut) in ring order starting at start (inclusive), or nil if the
// ring has no crossings at all.
func findFirstCrossing(start *vertex) *vertex {
	if start == nil {
		return nil
	}
	v := start
	for {
		if v.tag.isCrossing() {
			return v
		}
		v = v.next
		if v == start {
			return nil
		}
	}
}

// neighbor returns v's next or prev pointer depending on direction.
func (v *vertex) neighbor(dir direction) *vertex {
	if dir == forward {
		return v.next
	}
	return v.prev
}

// direction is the walk direction used by the difference traverser, which
// must reverse over the clip ring to keep the swept interior consistent
// (see §4.6).
type direction int

const (
	forward direction = iota
	backward
)

func (d direction) flip() direction {
	if d == forward {
		return backward
	}
	return forward
}
