package geom

// Padding is spacing applied to each side of a boundary. It is either uniform
// or specified per side; the zero value is no padding.
type Padding struct {
	uniform float64
	sides   *SideObject
}

// UniformPadding applies v to all four sides.
func UniformPadding(v float64) Padding {
	return Padding{uniform: v}
}

// SidePadding applies a separate value to each side.
func SidePadding(o SideObject) Padding {
	return Padding{sides: &o}
}

// Sides normalizes p into one value per side.
func (p Padding) Sides() SideObject {
	if p.sides != nil {
		return *p.sides
	}
	return SideObject{Top: p.uniform, Right: p.uniform, Bottom: p.uniform, Left: p.uniform}
}

// IsUniform reports whether every side has the same value.
func (p Padding) IsUniform() bool {
	s := p.Sides()
	return s.Top == s.Right && s.Right == s.Bottom && s.Bottom == s.Left
}
