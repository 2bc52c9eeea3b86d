package platform

import "github.com/matzehuels/floatpos/pkg/geom"

// IsRTL reports whether el is laid out right to left. Default: false.
func IsRTL(p Platform, el Element) bool {
	if d, ok := p.(RTLDetector); ok {
		return d.IsRTL(el)
	}
	return false
}

// Scale returns the rendering scale of el. Default: (1, 1).
// Non-positive or NaN factors reported by the host are replaced by 1.
func Scale(p Platform, el Element) geom.Coords {
	s, ok := p.(ScaleProvider)
	if !ok {
		return geom.Coords{X: 1, Y: 1}
	}
	c := s.Scale(el)
	if !(c.X > 0) {
		c.X = 1
	}
	if !(c.Y > 0) {
		c.Y = 1
	}
	return c
}

// OffsetParent returns the nearest positioned ancestor of el. Default: none.
func OffsetParent(p Platform, el Element) (Element, bool) {
	if r, ok := p.(OffsetParentResolver); ok {
		return r.OffsetParent(el)
	}
	return nil, false
}

// ClientRects returns the boxes el consists of. Default: none.
func ClientRects(p Platform, el Element) []geom.ClientRect {
	if c, ok := p.(ClientRectsProvider); ok {
		return c.ClientRects(el)
	}
	return nil
}

// ClientLength returns the inner length of el on axis. Default: 0 (unknown).
func ClientLength(p Platform, el Element, axis geom.Axis) float64 {
	if c, ok := p.(ClientLengthProvider); ok {
		return c.ClientLength(el, axis)
	}
	return 0
}

// IsElement reports whether v is a real host element. Without an
// [ElementChecker], every non-nil handle that is not a [VirtualElement]
// counts as one.
func IsElement(p Platform, v any) bool {
	if c, ok := p.(ElementChecker); ok {
		return c.IsElement(v)
	}
	switch v.(type) {
	case nil, VirtualElement, *VirtualElement:
		return false
	}
	return true
}

// ToViewportRect converts an offset-parent-relative rect into viewport
// space. Default: identity.
func ToViewportRect(p Platform, args ConvertRectArgs) geom.Rect {
	if c, ok := p.(RectConverter); ok {
		return c.ToViewportRect(args)
	}
	return args.Rect
}

// ClippingElement resolves which handle a clipping lookup should use: el
// itself when it is a host element, otherwise the virtual element's context
// element, otherwise the floating element.
func ClippingElement(p Platform, el Element, floating Element) Element {
	if IsElement(p, el) {
		return el
	}
	switch v := el.(type) {
	case VirtualElement:
		if v.ContextElement != nil {
			return v.ContextElement
		}
	case *VirtualElement:
		if v != nil && v.ContextElement != nil {
			return v.ContextElement
		}
	}
	return floating
}
