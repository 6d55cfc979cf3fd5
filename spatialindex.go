package clipper

import "github.com/peterstace/simplefeatures/rtree"

// clipEdgeIndex is the optional broad-phase accelerator for the enricher
// (§4.4, §2b): an R-tree over the clip ring's edge bounding boxes, used to
// prune subject/clip edge pairs whose boxes don't overlap before the exact
// segment-intersection predicate runs. It is never consulted for
// correctness, only for how many pairs get tested -- see the design note
// on spatial-index acceleration.
type clipEdgeIndex struct {
	tree  *rtree.RTree
	edges []*vertex // edges[i] is the vertex starting edge i; edges[i].next is its far endpoint.
}

func buildClipEdgeIndex(clipHead *vertex) *clipEdgeIndex {
	idx := &clipEdgeIndex{tree: &rtree.RTree{}}
	k := clipHead
	i := 0
	for {
		idx.tree.Insert(edgeBox(k.point, k.next.point), i)
		idx.edges = append(idx.edges, k)
		i++
		k = k.next
		if k == clipHead {
			break
		}
	}
	return idx
}

// candidates returns the clip edges (as their starting vertex) whose
// bounding box overlaps the subject edge (p0, p1)'s bounding box.
func (idx *clipEdgeIndex) candidates(p0, p1 Point) []*vertex {
	var out []*vertex
	box := edgeBox(p0, p1)
	_ = idx.tree.RangeSearch(box, func(recordID int) error {
		out = append(out, idx.edges[recordID])
		return nil
	})
	return out
}

func edgeBox(a, b Point) rtree.Box {
	minX, maxX := a.X, b.X
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	return rtree.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
