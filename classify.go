package clipper

// classifyRing assigns every still-None vertex in the ring an Inside or
// Outside tag relative to the other polygon, consistent with the crossing
// tags the enricher already deposited. If the ring has no crossings at
// all, every vertex is tagged Inside unconditionally -- not a
// geometrically faithful classification when one ring strictly contains
// the other, but the correct prior for the boolean traversers below, all
// three of which short-circuit to an empty result when there are no
// crossings to start from (see the open-question note in the design
// notes).
func classifyRing(r *Ring, cfg Config) {
	first := findFirstCrossing(r.head)
	if first == nil {
		traverse(r.head, func(v *vertex) (*vertex, bool) {
			if v.tag == None {
				v.tag = Inside
			}
			return nil, false
		})
		cfg.debugf("clipper: classify ring with no crossings as Inside")
		return
	}

	side := Inside
	if first.tag == InToOut {
		side = Outside
	}
	cfg.debugf("clipper: classify ring starting", "firstCrossing", first.tag.String(), "startSide", side.String())

	traverse(first, func(v *vertex) (*vertex, bool) {
		switch v.tag {
		case None:
			v.tag = side
		case InToOut:
			side = Outside
		case OutToIn:
			side = Inside
		}
		return nil, false
	})
}

// classifyRings classifies both rings independently.
func classifyRings(subject, clip *Ring, cfg Config) {
	classifyRing(subject, cfg)
	classifyRing(clip, cfg)
}
