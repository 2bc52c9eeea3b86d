package geom

import (
	"fmt"
	"strings"
)

// =============================================================================
// Axis
// =============================================================================

// Axis is one of the two layout axes.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Opposite returns the other axis.
func (a Axis) Opposite() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// LengthName returns "width" for X and "height" for Y.
func (a Axis) LengthName() string {
	if a == AxisY {
		return "height"
	}
	return "width"
}

// =============================================================================
// Side
// =============================================================================

// Side is an edge of the reference element.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Sides lists all sides in clockwise order starting at the top.
var Sides = []Side{SideTop, SideRight, SideBottom, SideLeft}

// Axis returns the axis a floating element travels along to sit on side s:
// X for left/right, Y for top/bottom.
func (s Side) Axis() Axis {
	if s == SideTop || s == SideBottom {
		return AxisY
	}
	return AxisX
}

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// IsOrigin reports whether s lies toward the coordinate origin (top or left).
func (s Side) IsOrigin() bool { return s == SideTop || s == SideLeft }

// MinSide returns the side at the low end of axis a.
func MinSide(a Axis) Side {
	if a == AxisY {
		return SideTop
	}
	return SideLeft
}

// MaxSide returns the side at the high end of axis a.
func MaxSide(a Axis) Side {
	if a == AxisY {
		return SideBottom
	}
	return SideRight
}

// =============================================================================
// Alignment
// =============================================================================

// Alignment positions the floating element along the reference edge.
// The zero value means centered.
type Alignment string

const (
	AlignNone  Alignment = ""
	AlignStart Alignment = "start"
	AlignEnd   Alignment = "end"
)

// Opposite swaps start and end. Centered stays centered.
func (a Alignment) Opposite() Alignment {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return AlignNone
	}
}

// =============================================================================
// Placement
// =============================================================================

// Placement is a side optionally combined with an alignment, e.g. "top-start".
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
)

// AllPlacements lists the twelve placements, grouped by side, each side
// followed by its start and end variants.
var AllPlacements = []Placement{
	Top, TopStart, TopEnd,
	Right, RightStart, RightEnd,
	Bottom, BottomStart, BottomEnd,
	Left, LeftStart, LeftEnd,
}

// NewPlacement combines a side and an alignment.
func NewPlacement(s Side, a Alignment) Placement {
	if a == AlignNone {
		return Placement(s)
	}
	return Placement(string(s) + "-" + string(a))
}

// ParsePlacement validates s and returns it as a Placement.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.TrimSpace(strings.ToLower(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid placement: %q", s)
	}
	return p, nil
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	for _, v := range AllPlacements {
		if v == p {
			return true
		}
	}
	return false
}

// Side returns the side component.
func (p Placement) Side() Side {
	side, _, _ := strings.Cut(string(p), "-")
	return Side(side)
}

// Alignment returns the alignment component, AlignNone when centered.
func (p Placement) Alignment() Alignment {
	_, align, _ := strings.Cut(string(p), "-")
	return Alignment(align)
}

// IsBase reports whether p has no alignment.
func (p Placement) IsBase() bool { return p.Alignment() == AlignNone }

// SideAxis returns the axis of the placement's side.
func (p Placement) SideAxis() Axis { return p.Side().Axis() }

// AlignmentAxis returns the axis alignment is measured along.
func (p Placement) AlignmentAxis() Axis { return p.SideAxis().Opposite() }

// Opposite mirrors the side and keeps the alignment: "top-start" becomes
// "bottom-start".
func (p Placement) Opposite() Placement {
	return NewPlacement(p.Side().Opposite(), p.Alignment())
}

// OppositeAlignment swaps start and end: "top-start" becomes "top-end".
func (p Placement) OppositeAlignment() Placement {
	return NewPlacement(p.Side(), p.Alignment().Opposite())
}

// ExpandedPlacements returns the fallbacks for an aligned placement: the
// alignment flipped on the same side, then both alignment variants of the
// opposite side.
func ExpandedPlacements(p Placement) []Placement {
	opposite := p.Opposite()
	return []Placement{p.OppositeAlignment(), opposite, opposite.OppositeAlignment()}
}

// AxisSideDirection selects which perpendicular side is tried first when
// placement search crosses over to the other axis.
type AxisSideDirection string

const (
	DirectionNone  AxisSideDirection = "none"
	DirectionStart AxisSideDirection = "start"
	DirectionEnd   AxisSideDirection = "end"
)

func sideList(s Side, isStart, rtl bool) []Side {
	lr := []Side{SideLeft, SideRight}
	rl := []Side{SideRight, SideLeft}
	switch s {
	case SideTop, SideBottom:
		if rtl {
			if isStart {
				return rl
			}
			return lr
		}
		if isStart {
			return lr
		}
		return rl
	case SideLeft, SideRight:
		if isStart {
			return []Side{SideTop, SideBottom}
		}
		return []Side{SideBottom, SideTop}
	}
	return nil
}

// OppositeAxisPlacements returns the placements on the perpendicular axis,
// ordered by direction. Aligned placements keep their alignment and, when
// flipAlignment is set, are followed by their opposite-alignment variants.
func OppositeAxisPlacements(p Placement, flipAlignment bool, direction AxisSideDirection, rtl bool) []Placement {
	align := p.Alignment()
	sides := sideList(p.Side(), direction == DirectionStart, rtl)
	list := make([]Placement, 0, len(sides)*2)
	for _, s := range sides {
		list = append(list, NewPlacement(s, align))
	}
	if align != AlignNone && flipAlignment {
		for _, s := range sides {
			list = append(list, NewPlacement(s, align).OppositeAlignment())
		}
	}
	return list
}

// AlignmentSides returns the two sides on the alignment axis that an aligned
// floating element can overflow, the side it extends toward first. When the
// reference is longer than the floating element on that axis the pair is
// swapped.
func AlignmentSides(p Placement, rects ElementRects, rtl bool) [2]Side {
	align := p.Alignment()
	axis := p.AlignmentAxis()

	var main Side
	if axis == AxisX {
		startAlign := AlignStart
		if rtl {
			startAlign = AlignEnd
		}
		if align == startAlign {
			main = SideRight
		} else {
			main = SideLeft
		}
	} else {
		if align == AlignStart {
			main = SideBottom
		} else {
			main = SideTop
		}
	}

	if rects.Reference.Length(axis) > rects.Floating.Length(axis) {
		main = main.Opposite()
	}
	return [2]Side{main, main.Opposite()}
}

// =============================================================================
// Strategy
// =============================================================================

// Strategy is the CSS-like positioning basis the coordinates are meant for.
type Strategy string

const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyAbsolute || s == StrategyFixed
}
