package clipper

// buildEnriched builds the subject and clip rings from their contours,
// clips every subject edge against the clip ring (splicing in twinned
// intersection vertices on both sides), and classifies every vertex. It
// reports ok=false when either contour has fewer than three points, the
// one recoverable condition this package surfaces (§7).
func buildEnriched(subject, clip []Point, cfg Config) (subjectRing, clipRing *Ring, ok bool) {
	subjectRing, ok = buildRing(subject)
	if !ok {
		return nil, nil, false
	}
	clipRing, ok = buildRing(clip)
	if !ok {
		return nil, nil, false
	}
	cfg.debugf("clipper: built rings", "subjectPoints", len(subject), "clipPoints", len(clip))
	enrichRings(subjectRing, clipRing, cfg)
	classifyRings(subjectRing, clipRing, cfg)
	return subjectRing, clipRing, true
}

// walkTwinForward walks v's twin's ring forward, appending each visited
// point via each, until it reaches another twinned vertex, then returns
// that vertex's twin -- the point back on v's own ring where the
// traversal should resume (its forward neighbor, not itself, since its
// point was already appended on the way through the twin ring).
func walkTwinForward(v *vertex, each func(*vertex)) *vertex {
	twin := v.twin
	if twin == nil {
		return v
	}
	for {
		twin = twin.next
		each(twin)
		if twin.twin != nil {
			break
		}
	}
	return twin.twin
}

// unionWalk implements §4.6 Union: start at the first OutToIn crossing on
// the subject ring and walk forward, appending points and detouring
// across the twin ring whenever a twinned vertex is reached, until the
// walk returns to its start. Produces a single contour, empty if the
// subject ring has no OutToIn crossing.
func unionWalk(subjectHead *vertex, cfg Config) []Point {
	first := findFirstOf(subjectHead, OutToIn)
	if first == nil {
		return nil
	}
	cfg.debugf("clipper: union starting at first OutToIn crossing")
	var out []Point
	traverse(first, func(v *vertex) (*vertex, bool) {
		out = append(out, v.point)
		if v.twin != nil {
			landing := walkTwinForward(v, func(tv *vertex) { out = append(out, tv.point) })
			return landing.next, false
		}
		return nil, false
	})
	return out
}

// differenceWalk implements §4.6 Difference: subject minus clip, possibly
// several contours. Seeded from the first InToOut crossing, each contour
// walks forward on whichever ring it currently holds but flips direction
// every time it hops across a twin, since the clip ring must be swept in
// reverse to keep the subtracted interior on the correct side.
func differenceWalk(subjectHead *vertex, cfg Config) [][]Point {
	head := findFirstOf(subjectHead, InToOut)
	if head == nil {
		return nil
	}

	worklist := []*vertex{head}
	var contours [][]Point
	for len(worklist) > 0 {
		start := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if start.visited {
			continue
		}

		v := start
		dir := forward
		var contour []Point
		for {
			contour = append(contour, v.point)
			v.visited = true
			v = v.neighbor(dir)

			if v.twin != nil {
				if dir == forward && !v.visited && v.tag == OutToIn {
					if leave := findFirstOf(v, InToOut); leave != nil {
						worklist = append(worklist, leave)
					}
				}
				dir = dir.flip()
				v = v.twin
			}
			if v == start || v.twin == start {
				break
			}
		}
		contours = append(contours, contour)
	}
	cfg.debugf("clipper: difference produced contours", "count", len(contours))
	return contours
}

// intersectionWalk implements §4.6 Intersection: possibly several
// contours, always walked forward (no direction flip), seeded from the
// first OutToIn crossing.
func intersectionWalk(subjectHead *vertex, cfg Config) [][]Point {
	head := findFirstOf(subjectHead, OutToIn)
	if head == nil {
		return nil
	}

	worklist := []*vertex{head}
	var contours [][]Point
	for len(worklist) > 0 {
		start := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if start.visited {
			continue
		}

		v := start
		var contour []Point
		for {
			contour = append(contour, v.point)
			v.visited = true
			v = v.next

			if v.tag == InToOut {
				if !v.visited {
					if enter := findFirstOf(v, OutToIn); enter != nil {
						worklist = append(worklist, enter)
					}
				}
				v = v.twin
			}
			if v == start || v.twin == start {
				break
			}
		}
		contours = append(contours, contour)
	}
	cfg.debugf("clipper: intersection produced contours", "count", len(contours))
	return contours
}

// Union returns the boolean union of subject and clip as a single closed
// contour, empty if the subject ring has no OutToIn crossing (§4.6).
func Union(subject, clip []Point, opts ...Option) []Point {
	cfg := resolveConfig(opts)
	subjectRing, _, ok := buildEnriched(subject, clip, cfg)
	if !ok {
		return nil
	}
	return unionWalk(subjectRing.head, cfg)
}

// Difference returns subject minus clip as a list of closed contours,
// empty if the subject ring has no InToOut crossing (§4.6).
func Difference(subject, clip []Point, opts ...Option) [][]Point {
	cfg := resolveConfig(opts)
	subjectRing, _, ok := buildEnriched(subject, clip, cfg)
	if !ok {
		return nil
	}
	return differenceWalk(subjectRing.head, cfg)
}

// Intersection returns the boolean intersection of subject and clip as a
// list of closed contours, empty if the subject ring has no OutToIn
// crossing (§4.6).
func Intersection(subject, clip []Point, opts ...Option) [][]Point {
	cfg := resolveConfig(opts)
	subjectRing, _, ok := buildEnriched(subject, clip, cfg)
	if !ok {
		return nil
	}
	return intersectionWalk(subjectRing.head, cfg)
}
