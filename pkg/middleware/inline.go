package middleware

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/position"
)

// DefaultInlinePadding widens each line when matching the pointer.
const DefaultInlinePadding = 2

// InlineOptions configures Inline.
type InlineOptions struct {
	// Padding defaults to DefaultInlinePadding on every side.
	Padding *geom.Padding

	// Pointer selects the line under it when the reference wraps onto two
	// disjoint lines (e.g. the mouse position).
	Pointer *geom.Coords
}

// InlineData records the synthetic reference rect Inline chose.
type InlineData struct {
	Rect  geom.Rect `json:"rect"`
	Lines int       `json:"lines"`
}

// InlineDataOf returns the inline record, if any.
func InlineDataOf(d position.MiddlewareData) (InlineData, bool) {
	return position.DataOf[InlineData](d, NameInline)
}

type inline struct {
	opts InlineOptions
}

// Inline replaces a wrapped inline reference (e.g. a link spanning two
// lines) with the part of it the floating element should attach to.
func Inline(opts InlineOptions) position.Middleware {
	return inline{opts: opts}
}

func (inline) Name() string { return NameInline }

func (m inline) Compute(s position.State) (position.Return, error) {
	native := platform.ClientRects(s.Platform, s.Elements.Reference)
	if len(native) == 0 {
		return position.Return{}, nil
	}
	for i, r := range native {
		if err := errors.ValidateRect(fmt.Sprintf("client rect %d", i), r.X, r.Y, r.Width, r.Height); err != nil {
			return position.Return{}, err
		}
	}

	lines := RectsByLine(native)
	pad := geom.UniformPadding(DefaultInlinePadding)
	if m.opts.Padding != nil {
		pad = *m.opts.Padding
	}
	chosen := inlineRect(s.Placement, lines, geom.BoundingRect(native).ClientRect(), pad.Sides(), m.opts.Pointer)

	virtual := platform.VirtualElement{
		BoundingClientRect: func() geom.ClientRect { return chosen },
		ContextElement:     s.Elements.Reference,
	}
	rects, err := s.Platform.GetElementRects(platform.ElementRectsArgs{
		Reference: virtual,
		Floating:  s.Elements.Floating,
		Strategy:  s.Strategy,
	})
	if err != nil {
		return position.Return{}, errors.Wrap(errors.ErrCodePlatform, err, "measure inline reference")
	}

	ret := position.Return{Data: InlineData{Rect: chosen.Rect, Lines: len(lines)}}
	if rects.Reference != s.Rects.Reference {
		ret.Reset = &position.Reset{Rects: &rects}
	}
	return ret, nil
}

// RectsByLine groups client rects into lines: a rect starts a new line when
// its top is more than half the previous rect's height below the previous
// top. Each line is returned as its bounding rect, top to bottom.
func RectsByLine(rects []geom.ClientRect) []geom.ClientRect {
	sorted := slices.Clone(rects)
	slices.SortStableFunc(sorted, func(a, b geom.ClientRect) int { return cmp.Compare(a.Y, b.Y) })

	var groups [][]geom.ClientRect
	for i, r := range sorted {
		if i == 0 || r.Y-sorted[i-1].Y > sorted[i-1].Height/2 {
			groups = append(groups, []geom.ClientRect{r})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], r)
	}

	lines := make([]geom.ClientRect, len(groups))
	for i, g := range groups {
		lines[i] = geom.BoundingRect(g).ClientRect()
	}
	return lines
}

func inlineRect(placement geom.Placement, lines []geom.ClientRect, fallback geom.ClientRect, pad geom.SideObject, pointer *geom.Coords) geom.ClientRect {
	if len(lines) == 2 && lines[0].Left > lines[1].Right && pointer != nil {
		for _, l := range lines {
			if pointer.X > l.Left-pad.Left && pointer.X < l.Right+pad.Right &&
				pointer.Y > l.Top-pad.Top && pointer.Y < l.Bottom+pad.Bottom {
				return l
			}
		}
		return fallback
	}

	if len(lines) < 2 {
		return fallback
	}

	if placement.SideAxis() == geom.AxisY {
		first, last := lines[0], lines[len(lines)-1]
		edge := last
		if placement.Side() == geom.SideTop {
			edge = first
		}
		return edges(first.Top, edge.Right, last.Bottom, edge.Left)
	}

	minLeft, maxRight := math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		minLeft = math.Min(minLeft, l.Left)
		maxRight = math.Max(maxRight, l.Right)
	}
	var measure []geom.ClientRect
	for _, l := range lines {
		if placement.Side() == geom.SideLeft && l.Left == minLeft ||
			placement.Side() != geom.SideLeft && l.Right == maxRight {
			measure = append(measure, l)
		}
	}
	if len(measure) == 0 {
		return fallback
	}
	return edges(measure[0].Top, maxRight, measure[len(measure)-1].Bottom, minLeft)
}

func edges(top, right, bottom, left float64) geom.ClientRect {
	return geom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}.ClientRect()
}
