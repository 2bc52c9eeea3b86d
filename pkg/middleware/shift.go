package middleware

import (
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

// Limiter post-processes the coordinates Shift produced. The state it
// receives already carries the shifted coordinates.
type Limiter interface {
	Limit(s position.State) geom.Coords
}

// ShiftOptions configures Shift.
type ShiftOptions struct {
	// SkipMainAxis disables shifting along the alignment axis (default false = shift).
	SkipMainAxis bool

	// CrossAxis also shifts along the side axis, letting the floating
	// element overlap the reference.
	CrossAxis bool

	// Limiter bounds the shift. Nil keeps the clamped coordinates as is.
	Limiter Limiter

	Overflow position.OverflowOptions
}

// ShiftEnabled reports which axes Shift checked.
type ShiftEnabled struct {
	X bool `json:"x"`
	Y bool `json:"y"`
}

// ShiftData records how far Shift moved the floating element.
type ShiftData struct {
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Enabled ShiftEnabled `json:"enabled"`
}

// ShiftDataOf returns the shift record, if any.
func ShiftDataOf(d position.MiddlewareData) (ShiftData, bool) {
	return position.DataOf[ShiftData](d, NameShift)
}

type shift struct {
	opts ShiftOptions
}

// Shift keeps the floating element inside its clipping boundary by sliding
// it along the alignment axis (and optionally the side axis).
func Shift(opts ShiftOptions) position.Middleware {
	return shift{opts: opts}
}

func (shift) Name() string { return NameShift }

func (m shift) Compute(s position.State) (position.Return, error) {
	overflow, err := position.DetectOverflow(s, m.opts.Overflow)
	if err != nil {
		return position.Return{}, err
	}

	crossAxis := s.Placement.SideAxis()
	mainAxis := crossAxis.Opposite()
	checkMain := !m.opts.SkipMainAxis
	checkCross := m.opts.CrossAxis

	coords := s.Coords()
	if checkMain {
		coords = coords.WithAxis(mainAxis, clampAxis(coords.Axis(mainAxis), overflow, mainAxis))
	}
	if checkCross {
		coords = coords.WithAxis(crossAxis, clampAxis(coords.Axis(crossAxis), overflow, crossAxis))
	}

	limited := coords
	if m.opts.Limiter != nil {
		limited = m.opts.Limiter.Limit(s.WithCoords(coords))
	}

	enabled := ShiftEnabled{}
	if mainAxis == geom.AxisX {
		enabled.X, enabled.Y = checkMain, checkCross
	} else {
		enabled.X, enabled.Y = checkCross, checkMain
	}

	return position.Return{
		Coords: &limited,
		Data:   ShiftData{X: limited.X - s.X, Y: limited.Y - s.Y, Enabled: enabled},
	}, nil
}

// clampAxis restricts coord so the element no longer overflows on axis.
func clampAxis(coord float64, overflow geom.SideObject, axis geom.Axis) float64 {
	lo := coord + overflow.Get(geom.MinSide(axis))
	hi := coord - overflow.Get(geom.MaxSide(axis))
	return geom.Clamp(lo, coord, hi)
}

// =============================================================================
// LimitShift
// =============================================================================

// LimitShiftOffset shrinks (positive) or grows (negative) the limit window.
type LimitShiftOffset struct {
	MainAxis  float64 `json:"main_axis"`
	CrossAxis float64 `json:"cross_axis"`
}

// LimitShiftOptions configures LimitShift.
type LimitShiftOptions struct {
	Offset LimitShiftOffset

	// OffsetFunc, when set, derives the offset from the state and replaces
	// Offset.
	OffsetFunc func(position.State) LimitShiftOffset

	// SkipMainAxis disables the alignment axis limit (default false = limit).
	SkipMainAxis bool

	// SkipCrossAxis disables the side axis limit (default false = limit).
	SkipCrossAxis bool
}

type limitShift struct {
	opts LimitShiftOptions
}

// LimitShift stops Shift once the floating element would detach from the
// reference: on the alignment axis the two may not stop overlapping, on the
// side axis the floating element may not cross over the reference.
func LimitShift(opts LimitShiftOptions) Limiter {
	return limitShift{opts: opts}
}

func (l limitShift) Limit(s position.State) geom.Coords {
	ref, fl := s.Rects.Reference, s.Rects.Floating
	crossAxis := s.Placement.SideAxis()
	mainAxis := crossAxis.Opposite()

	off := l.opts.Offset
	if l.opts.OffsetFunc != nil {
		off = l.opts.OffsetFunc(s)
	}

	coords := s.Coords()
	mainCoord := coords.Axis(mainAxis)
	crossCoord := coords.Axis(crossAxis)

	if !l.opts.SkipMainAxis {
		limitMin := ref.Start(mainAxis) - fl.Length(mainAxis) + off.MainAxis
		limitMax := ref.Start(mainAxis) + ref.Length(mainAxis) - off.MainAxis
		mainCoord = limitTo(mainCoord, limitMin, limitMax)
	}

	if !l.opts.SkipCrossAxis {
		isOrigin := s.Placement.Side().IsOrigin()
		var applied float64
		if od, ok := OffsetDataOf(s.MiddlewareData); ok {
			applied = od.X
			if crossAxis == geom.AxisY {
				applied = od.Y
			}
		}

		limitMin := ref.Start(crossAxis) - fl.Length(crossAxis)
		limitMax := ref.Start(crossAxis) + ref.Length(crossAxis)
		if isOrigin {
			limitMin += applied
			limitMax -= off.CrossAxis
		} else {
			limitMin += off.CrossAxis
			limitMax += applied
		}
		crossCoord = limitTo(crossCoord, limitMin, limitMax)
	}

	return coords.WithAxis(mainAxis, mainCoord).WithAxis(crossAxis, crossCoord)
}

// limitTo checks the lower bound first, unlike Clamp.
func limitTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
