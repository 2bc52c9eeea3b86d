package middleware

import (
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

// OffsetOptions are the distances Offset applies.
type OffsetOptions struct {
	// MainAxis is the gap between reference and floating element along the
	// placement's side axis.
	MainAxis float64 `json:"main_axis"`

	// CrossAxis skids the floating element along the alignment axis.
	CrossAxis float64 `json:"cross_axis"`

	// AlignmentAxis overrides CrossAxis for aligned placements and is
	// inverted for end alignment. Nil disables it.
	AlignmentAxis *float64 `json:"alignment_axis,omitempty"`
}

// OffsetData records the applied delta and the placement it was applied for.
type OffsetData struct {
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Placement geom.Placement `json:"placement"`
}

// OffsetDataOf returns the offset record, if any.
func OffsetDataOf(d position.MiddlewareData) (OffsetData, bool) {
	return position.DataOf[OffsetData](d, NameOffset)
}

type offset struct {
	options func(position.State) OffsetOptions
}

// Offset moves the floating element v units away from the reference.
func Offset(v float64) position.Middleware {
	return OffsetAxes(OffsetOptions{MainAxis: v})
}

// OffsetAxes applies separate main, cross and alignment axis distances.
func OffsetAxes(opts OffsetOptions) position.Middleware {
	return offset{options: func(position.State) OffsetOptions { return opts }}
}

// OffsetFunc derives the distances from the current state on every pass,
// e.g. to keep the gap proportional to the floating element's size.
func OffsetFunc(fn func(position.State) OffsetOptions) position.Middleware {
	return offset{options: fn}
}

func (offset) Name() string { return NameOffset }

func (m offset) Compute(s position.State) (position.Return, error) {
	// An arrow alignment reset replays with coordinates that already include
	// this offset.
	if prev, ok := OffsetDataOf(s.MiddlewareData); ok && prev.Placement == s.Placement {
		if arrow, ok := ArrowDataOf(s.MiddlewareData); ok && arrow.AlignmentOffset != nil && *arrow.AlignmentOffset != 0 {
			return position.Return{}, nil
		}
	}

	delta := offsetDelta(s, m.options(s))
	return position.Return{
		Coords: &geom.Coords{X: s.X + delta.X, Y: s.Y + delta.Y},
		Data:   OffsetData{X: delta.X, Y: delta.Y, Placement: s.Placement},
	}, nil
}

func offsetDelta(s position.State, opts OffsetOptions) geom.Coords {
	side := s.Placement.Side()
	alignment := s.Placement.Alignment()
	isVertical := s.Placement.SideAxis() == geom.AxisY

	mainMulti := 1.0
	if side.IsOrigin() {
		mainMulti = -1
	}
	crossMulti := 1.0
	if isVertical && s.IsRTL() {
		crossMulti = -1
	}

	mainAxis, crossAxis := opts.MainAxis, opts.CrossAxis
	if alignment != geom.AlignNone && opts.AlignmentAxis != nil {
		crossAxis = *opts.AlignmentAxis
		if alignment == geom.AlignEnd {
			crossAxis = -crossAxis
		}
	}

	if isVertical {
		return geom.Coords{X: crossAxis * crossMulti, Y: mainAxis * mainMulti}
	}
	return geom.Coords{X: mainAxis * mainMulti, Y: crossAxis * crossMulti}
}
