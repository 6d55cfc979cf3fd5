package clipper

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

// ringCrossingTags collects the tags of every crossing vertex in ring order.
func ringCrossingTags(r *Ring) []VertexTag {
	var tags []VertexTag
	traverse(r.head, func(v *vertex) (*vertex, bool) {
		if v.tag.isCrossing() {
			tags = append(tags, v.tag)
		}
		return nil, false
	})
	return tags
}

// assertTagsAlternate checks §8 invariant 1 (crossing tags alternate around
// a ring) on whatever crossings buildEnriched found; a ring with no
// crossings passes vacuously.
func assertTagsAlternate(t *testing.T, r *Ring) {
	tags := ringCrossingTags(r)
	for i, tag := range tags {
		prev := tags[(i+len(tags)-1)%len(tags)]
		test.That(t, tag != prev, "crossing tags must alternate, got repeated", tag, "at", i)
	}
}

// assertTwinsSymmetric checks §8 invariant 2 (every twin link is mutual,
// shares a point, and carries the opposite crossing tag) on whatever
// twinned vertices buildEnriched found; a ring with no twins passes
// vacuously.
func assertTwinsSymmetric(t *testing.T, r *Ring) {
	traverse(r.head, func(v *vertex) (*vertex, bool) {
		if v.twin == nil {
			return nil, false
		}
		test.That(t, v.twin.twin == v, "twin.twin must point back to v")
		test.That(t, v.point.Equals(v.twin.point), "twinned vertices must share a point")
		switch v.tag {
		case OutToIn:
			test.That(t, v.twin.tag == InToOut, "twin of OutToIn must be InToOut")
		case InToOut:
			test.That(t, v.twin.tag == OutToIn, "twin of InToOut must be OutToIn")
		default:
			t.Fatalf("unexpected non-crossing tag on a twinned vertex: %v", v.tag)
		}
		return nil, false
	})
}

func TestEnrichAndClassifyAlternatesCrossingTags(t *testing.T) {
	subjectRing, clipRing, ok := buildEnriched(unitSquare(), offsetSquare(), defaultConfig())
	test.That(t, ok)
	test.That(t, len(ringCrossingTags(subjectRing)) > 0, "expected at least one crossing")
	assertTagsAlternate(t, subjectRing)
	assertTagsAlternate(t, clipRing)

	// Same invariant, checked over many random non-degenerate polygon
	// pairs rather than this one fixed fixture.
	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	for i := 0; i < 200; i++ {
		s, c := randomPolygonPair(rng)
		subjectRing, clipRing, ok := buildEnriched(s, c, defaultConfig())
		if !ok {
			continue
		}
		assertTagsAlternate(t, subjectRing)
		assertTagsAlternate(t, clipRing)
	}
}

func TestEnrichTwinsAreSymmetric(t *testing.T) {
	subjectRing, _, ok := buildEnriched(unitSquare(), offsetSquare(), defaultConfig())
	test.That(t, ok)
	assertTwinsSymmetric(t, subjectRing)

	// Same invariant, checked over many random non-degenerate polygon
	// pairs rather than this one fixed fixture.
	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	for i := 0; i < 200; i++ {
		s, c := randomPolygonPair(rng)
		subjectRing, _, ok := buildEnriched(s, c, defaultConfig())
		if !ok {
			continue
		}
		assertTwinsSymmetric(t, subjectRing)
	}
}

func TestClassifyNoCrossingsTagsEverythingInside(t *testing.T) {
	subject := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	clip := []Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}}
	subjectRing, clipRing, ok := buildEnriched(subject, clip, defaultConfig())
	test.That(t, ok)

	for _, r := range []*Ring{subjectRing, clipRing} {
		traverse(r.head, func(v *vertex) (*vertex, bool) {
			test.That(t, v.tag == Inside, "expected Inside with no crossings, got", v.tag)
			return nil, false
		})
	}
}
