package middleware

import (
	"math"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/position"
)

// ArrowOptions configures Arrow.
type ArrowOptions struct {
	// Element is the arrow glyph. Nil makes Arrow a no-op.
	Element platform.Element

	// Padding keeps the arrow away from the floating element's corners.
	Padding geom.Padding
}

// ArrowData positions the arrow inside the floating element. Only the
// coordinate on the placement's alignment axis is set.
type ArrowData struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`

	// CenterOffset is how far the arrow is from pointing at the reference's
	// center; non-zero means it was clamped.
	CenterOffset float64 `json:"center_offset"`

	// AlignmentOffset is set once Arrow nudged the whole floating element so
	// the arrow can still point at a small reference.
	AlignmentOffset *float64 `json:"alignment_offset,omitempty"`
}

// Offset returns the arrow coordinate along axis.
func (d ArrowData) Offset(axis geom.Axis) (float64, bool) {
	v := d.X
	if axis == geom.AxisY {
		v = d.Y
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// ArrowDataOf returns the arrow record, if any.
func ArrowDataOf(d position.MiddlewareData) (ArrowData, bool) {
	return position.DataOf[ArrowData](d, NameArrow)
}

type arrow struct {
	opts ArrowOptions
}

// Arrow centers an arrow element on the reference along the alignment axis,
// kept inside the floating element by Padding.
func Arrow(opts ArrowOptions) position.Middleware {
	return arrow{opts: opts}
}

func (arrow) Name() string { return NameArrow }

func (m arrow) Compute(s position.State) (position.Return, error) {
	if m.opts.Element == nil {
		return position.Return{}, nil
	}

	pad := m.opts.Padding.Sides()
	axis := s.Placement.AlignmentAxis()
	ref, fl := s.Rects.Reference, s.Rects.Floating
	coord := s.Coords().Axis(axis)

	dims, err := s.Platform.GetDimensions(m.opts.Element)
	if err != nil {
		return position.Return{}, errors.Wrap(errors.ErrCodePlatform, err, "arrow dimensions")
	}
	if err := errors.ValidateDimensions("arrow", dims.Width, dims.Height); err != nil {
		return position.Return{}, err
	}
	arrowLen := dims.Length(axis)

	minSide, maxSide := geom.MinSide(axis), geom.MaxSide(axis)
	endDiff := ref.Length(axis) + ref.Start(axis) - coord - fl.Length(axis)
	startDiff := coord - ref.Start(axis)

	clientSize := arrowClientSize(s, m.opts.Element, axis)

	centerToReference := endDiff/2 - startDiff/2
	largestPad := clientSize/2 - arrowLen/2 - 1
	minPad := math.Min(pad.Get(minSide), largestPad)
	maxPad := math.Min(pad.Get(maxSide), largestPad)

	lo := minPad
	hi := clientSize - arrowLen - maxPad
	center := clientSize/2 - arrowLen/2 + centerToReference
	offset := geom.Clamp(lo, center, hi)

	prev, hasPrev := ArrowDataOf(s.MiddlewareData)

	// Arrow is not pointing at the reference: the reference is too small
	// for the padding of an aligned placement.
	edgePad := maxPad
	if center < lo {
		edgePad = minPad
	}
	shouldNudge := !hasPrev &&
		s.Placement.Alignment() != geom.AlignNone &&
		center != offset &&
		ref.Length(axis)/2-edgePad-arrowLen/2 < 0

	var alignmentOffset float64
	if shouldNudge {
		if center < lo {
			alignmentOffset = center - lo
		} else {
			alignmentOffset = center - hi
		}
	}

	data := ArrowData{CenterOffset: center - offset - alignmentOffset}
	if axis == geom.AxisX {
		data.X = ptr(offset)
	} else {
		data.Y = ptr(offset)
	}
	switch {
	case shouldNudge:
		data.AlignmentOffset = ptr(alignmentOffset)
	case hasPrev:
		data.AlignmentOffset = prev.AlignmentOffset
	}

	ret := position.Return{
		Coords: ptr(s.Coords().WithAxis(axis, coord+alignmentOffset)),
		Data:   data,
	}
	if shouldNudge {
		ret.Reset = &position.Reset{}
	}
	return ret, nil
}

// arrowClientSize is the inner length the arrow can move in: its offset
// parent's, else the floating element's, else the floating rect's.
func arrowClientSize(s position.State, el platform.Element, axis geom.Axis) float64 {
	if parent, ok := platform.OffsetParent(s.Platform, el); ok && platform.IsElement(s.Platform, parent) {
		if n := platform.ClientLength(s.Platform, parent, axis); n != 0 {
			return n
		}
	}
	if n := platform.ClientLength(s.Platform, s.Elements.Floating, axis); n != 0 {
		return n
	}
	return s.Rects.Floating.Length(axis)
}
