package middleware

import (
	"math"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

// SizeOptions configures Size.
type SizeOptions struct {
	// Apply receives the space available to the floating element and may
	// resize it on the host. It is the only host mutation the pipeline
	// performs.
	Apply func(s position.State, available geom.Dimensions) error

	Overflow position.OverflowOptions
}

// SizeData records the available space handed to Apply.
type SizeData struct {
	AvailableWidth  float64 `json:"available_width"`
	AvailableHeight float64 `json:"available_height"`
}

// SizeDataOf returns the size record, if any.
func SizeDataOf(d position.MiddlewareData) (SizeData, bool) {
	return position.DataOf[SizeData](d, NameSize)
}

type size struct {
	opts SizeOptions
}

// Size computes how much room the floating element has before it would
// overflow, passes it to Apply, and restarts the pipeline with fresh
// measurements when Apply changed the element's size.
func Size(opts SizeOptions) position.Middleware {
	return size{opts: opts}
}

func (size) Name() string { return NameSize }

func (m size) Compute(s position.State) (position.Return, error) {
	overflow, err := position.DetectOverflow(s, m.opts.Overflow)
	if err != nil {
		return position.Return{}, err
	}

	available := availableSpace(s, overflow)

	if m.opts.Apply != nil {
		if err := m.opts.Apply(s, available); err != nil {
			return position.Return{}, err
		}
	}

	ret := position.Return{Data: SizeData{AvailableWidth: available.Width, AvailableHeight: available.Height}}

	next, err := s.Platform.GetDimensions(s.Elements.Floating)
	if err != nil {
		return position.Return{}, errors.Wrap(errors.ErrCodePlatform, err, "floating dimensions")
	}
	if err := errors.ValidateDimensions("floating", next.Width, next.Height); err != nil {
		return position.Return{}, err
	}
	if next != s.Rects.Floating.Size() {
		ret.Reset = &position.Reset{Remeasure: true}
	}
	return ret, nil
}

func availableSpace(s position.State, overflow geom.SideObject) geom.Dimensions {
	side := s.Placement.Side()
	alignment := s.Placement.Alignment()
	isVertical := s.Placement.SideAxis() == geom.AxisY
	width, height := s.Rects.Floating.Width, s.Rects.Floating.Height

	var heightSide, widthSide geom.Side
	if isVertical {
		heightSide = side
		endAlign := geom.AlignEnd
		if s.IsRTL() {
			endAlign = geom.AlignStart
		}
		widthSide = geom.SideRight
		if alignment == endAlign {
			widthSide = geom.SideLeft
		}
	} else {
		widthSide = side
		heightSide = geom.SideBottom
		if alignment == geom.AlignEnd {
			heightSide = geom.SideTop
		}
	}

	maxClipHeight := height - overflow.Top - overflow.Bottom
	maxClipWidth := width - overflow.Left - overflow.Right
	availHeight := math.Min(height-overflow.Get(heightSide), maxClipHeight)
	availWidth := math.Min(width-overflow.Get(widthSide), maxClipWidth)

	shiftData, shifted := ShiftDataOf(s.MiddlewareData)
	if shifted && shiftData.Enabled.X {
		availWidth = maxClipWidth
	}
	if shifted && shiftData.Enabled.Y {
		availHeight = maxClipHeight
	}

	// Without shift, a centered element grows symmetrically, so both sides
	// need the room.
	if !shifted && alignment == geom.AlignNone {
		if isVertical {
			xMin, xMax := math.Max(overflow.Left, 0), math.Max(overflow.Right, 0)
			if xMin != 0 || xMax != 0 {
				availWidth = width - 2*(xMin+xMax)
			} else {
				availWidth = width - 2*math.Max(overflow.Left, overflow.Right)
			}
		} else {
			yMin, yMax := math.Max(overflow.Top, 0), math.Max(overflow.Bottom, 0)
			if yMin != 0 || yMax != 0 {
				availHeight = height - 2*(yMin+yMax)
			} else {
				availHeight = height - 2*math.Max(overflow.Top, overflow.Bottom)
			}
		}
	}

	return geom.Dimensions{Width: availWidth, Height: availHeight}
}
