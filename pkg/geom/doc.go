// Package geom provides the geometry primitives and placement algebra used by
// the positioning engine.
//
// # Coordinates
//
// All values are real-valued and share one coordinate system: the origin is
// the top-left corner, X grows to the right and Y grows downward. A [Rect] is
// stored as origin plus size; a [ClientRect] additionally carries the four
// derived edges (Top, Right, Bottom, Left), which is the form clipping and
// overflow math works in.
//
// # Placements
//
// A [Placement] combines a [Side] with an optional [Alignment]:
//
//	geom.Top        // "top"
//	geom.TopStart   // "top-start"
//	geom.RightEnd   // "right-end"
//
// Every placement has a side axis (the axis the floating element moves along
// to sit next to the reference) and an alignment axis (the other one):
//
//	geom.Bottom.SideAxis()      // AxisY
//	geom.Bottom.AlignmentAxis() // AxisX
//
// The transforms [Placement.Opposite], [Placement.OppositeAlignment],
// [ExpandedPlacements] and [OppositeAxisPlacements] generate the fallback
// candidates that placement-search middleware iterate over.
//
// # Padding
//
// [Padding] is either uniform or per side; [Padding.Sides] normalizes it into a
// [SideObject] so callers never branch on the representation.
package geom
