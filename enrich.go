package clipper

import "sort"

// pendingCrossing remembers a subject-side intersection vertex together
// with its parametric position along the subject edge, so that a subject
// edge crossed multiple times (discovered in clip-ring order, not
// parametric order) can be threaded into the subject ring in the right
// order.
type pendingCrossing struct {
	vertex *vertex
	t      float64
}

// enrichEdge clips one subject edge (start, end) against every edge of
// the clip ring, splicing a twinned vertex pair into both rings at each
// crossing. The clip-side vertex is spliced in immediately (clip edges
// each intersect a given subject edge at most once, so their position is
// already locally consistent); the subject-side twins are returned sorted
// by ascending t for the caller to splice in that order, per §4.4.
func enrichEdge(start, end *vertex, clipHead *vertex, cfg Config) []pendingCrossing {
	var pending []pendingCrossing

	test := func(k, kNext *vertex) {
		isect, ok := intersectSegments(start.point, end.point, k.point, kNext.point)
		if !ok {
			return
		}
		pt := start.point.Add(end.point.Sub(start.point).Scale(isect.t))

		clipVert := &vertex{point: pt, tag: isect.tag1}
		spliceBetween(k, kNext, clipVert)

		subjVert := &vertex{point: pt, tag: isect.tag0}
		clipVert.twin = subjVert
		subjVert.twin = clipVert

		pending = append(pending, pendingCrossing{vertex: subjVert, t: isect.t})
		cfg.debugf("clipper: crossing found", "t", isect.t, "x", pt.X, "y", pt.Y,
			"subjectTag", isect.tag0.String(), "clipTag", isect.tag1.String())
	}

	if cfg.UseSpatialIndex {
		// Rebuilt per subject edge: earlier subject edges may already
		// have spliced new vertices into the clip ring, and the index
		// must see that current state to remain a correctness-preserving
		// superset of the true candidate set (see the design note on
		// spatial-index acceleration).
		idx := buildClipEdgeIndex(clipHead)
		for _, k := range idx.candidates(start.point, end.point) {
			test(k, k.next)
		}
	} else {
		k := clipHead
		for {
			kNext := k.next
			test(k, kNext)
			k = kNext
			if k == clipHead {
				break
			}
		}
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].t < pending[j].t })
	return pending
}

// enrichRings clips every edge of the subject ring against the clip ring,
// splicing in twinned intersection vertices on both sides. After this
// call every vertex carries a tag of OutToIn, InToOut, or None; originals
// are still None until classifyRings runs.
func enrichRings(subject, clip *Ring, cfg Config) {
	traverse(subject.head, func(v *vertex) (*vertex, bool) {
		pending := enrichEdge(v, v.next, clip.head, cfg)
		prev := v
		for _, pc := range pending {
			spliceBetween(prev, prev.next, pc.vertex)
			prev = pc.vertex
		}
		return nil, false
	})
}
