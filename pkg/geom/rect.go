package geom

import "math"

// =============================================================================
// Points and Sizes
// =============================================================================

// Coords is a position or a position delta.
type Coords struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
}

// Axis returns the component of c on axis a.
func (c Coords) Axis(a Axis) float64 {
	if a == AxisY {
		return c.Y
	}
	return c.X
}

// WithAxis returns a copy of c with the component on axis a replaced by v.
func (c Coords) WithAxis(a Axis, v float64) Coords {
	if a == AxisY {
		c.Y = v
	} else {
		c.X = v
	}
	return c
}

// Dimensions is the measured size of an element.
type Dimensions struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Length returns the extent along axis a (width for X, height for Y).
func (d Dimensions) Length(a Axis) float64 {
	if a == AxisY {
		return d.Height
	}
	return d.Width
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an axis-aligned rectangle stored as origin plus size.
type Rect struct {
	X      float64 `json:"x" toml:"x" yaml:"x"`
	Y      float64 `json:"y" toml:"y" yaml:"y"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Dimensions { return Dimensions{Width: r.Width, Height: r.Height} }

// Origin returns the top-left corner.
func (r Rect) Origin() Coords { return Coords{X: r.X, Y: r.Y} }

// Start returns the origin coordinate on axis a.
func (r Rect) Start(a Axis) float64 { return r.Origin().Axis(a) }

// Length returns the extent along axis a.
func (r Rect) Length(a Axis) float64 { return r.Size().Length(a) }

// Valid reports whether both sizes are non-negative. NaN sizes are invalid.
func (r Rect) Valid() bool {
	return r.Width >= 0 && r.Height >= 0
}

// ClientRect converts r into edge form.
func (r Rect) ClientRect() ClientRect {
	return ClientRect{
		Rect:   r,
		Top:    r.Y,
		Left:   r.X,
		Right:  r.X + r.Width,
		Bottom: r.Y + r.Height,
	}
}

// ClientRect is a Rect together with its four edge coordinates.
type ClientRect struct {
	Rect
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Edge returns the coordinate of side s.
func (c ClientRect) Edge(s Side) float64 {
	switch s {
	case SideTop:
		return c.Top
	case SideRight:
		return c.Right
	case SideBottom:
		return c.Bottom
	default:
		return c.Left
	}
}

// ElementRects holds the reference and floating rectangles of one
// computation. The floating rect's origin is informational; only its size is
// used to derive positions.
type ElementRects struct {
	Reference Rect `json:"reference"`
	Floating  Rect `json:"floating"`
}

// BoundingRect returns the smallest rectangle enclosing all of rects.
// An empty input yields a rectangle built from the reduction sentinels
// (X and Y are +Inf, Width and Height are -Inf); callers that can receive an
// empty slice should check for it first.
func BoundingRect(rects []ClientRect) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rects {
		minX = math.Min(minX, r.Left)
		minY = math.Min(minY, r.Top)
		maxX = math.Max(maxX, r.Right)
		maxY = math.Max(maxY, r.Bottom)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// =============================================================================
// SideObject
// =============================================================================

// SideObject holds one value per side, used for padding and signed overflow.
type SideObject struct {
	Top    float64 `json:"top" toml:"top" yaml:"top"`
	Right  float64 `json:"right" toml:"right" yaml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" toml:"left" yaml:"left"`
}

// Get returns the value for side s.
func (o SideObject) Get(s Side) float64 {
	switch s {
	case SideTop:
		return o.Top
	case SideRight:
		return o.Right
	case SideBottom:
		return o.Bottom
	default:
		return o.Left
	}
}

// AnyAtLeastZero reports whether at least one side is >= 0.
func (o SideObject) AnyAtLeastZero() bool {
	return o.Top >= 0 || o.Right >= 0 || o.Bottom >= 0 || o.Left >= 0
}

// =============================================================================
// Helpers
// =============================================================================

// Clamp restricts value to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(lo, value, hi float64) float64 {
	return math.Max(lo, math.Min(value, hi))
}
