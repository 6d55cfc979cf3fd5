package clipper

// VertexTag classifies a vertex's role in the enriched ring: a transient
// placeholder on vertices not yet classified, a crossing direction on
// intersection vertices, or a side on original vertices.
type VertexTag int

const (
	// None marks a vertex that has not yet been classified. Never seen
	// outside of enrichment/classification.
	None VertexTag = iota
	// OutToIn marks an intersection vertex where forward ring traversal
	// crosses from outside the other polygon to inside it.
	OutToIn
	// InToOut marks the symmetric leaving crossing.
	InToOut
	// Inside marks an original vertex lying strictly inside the other
	// polygon.
	Inside
	// Outside marks an original vertex lying strictly outside the other
	// polygon.
	Outside
)

func (t VertexTag) String() string {
	switch t {
	case None:
		return "None"
	case OutToIn:
		return "OutToIn"
	case InToOut:
		return "InToOut"
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	default:
		return "VertexTag(?)"
	}
}

// isCrossing reports whether t is one of the two intersection tags.
func (t VertexTag) isCrossing() bool {
	return t == OutToIn || t == InToOut
}
