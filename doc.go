// Package clipper implements 2D polygon boolean operations (union,
// difference, intersection) between a subject and a clip contour using
// the Weiler-Atherton ring-and-twin-link algorithm: both contours are
// built into circular doubly-linked vertex rings, enriched with
// intersection vertices that carry twin pointers across the two rings,
// classified as inside/outside the other polygon, and finally walked to
// produce the result contour(s).
//
// The package only deals with point sequences in and point sequences
// out; fixture loading, JSON encoding, and rendering live outside it.
package clipper
