// Package static provides an in-memory [platform.Platform] whose geometry is
// declared up front instead of measured from a live host.
//
// It implements every optional capability, which makes it the host double
// for tests and the host behind scene files and the CLI playground.
//
// All box rectangles are viewport-relative. Rectangles handed to the engine
// are relative to the floating element's offset parent (if it has one), and
// [Platform.ToViewportRect] maps them back, so the pair round-trips.
//
//	vp := geom.Rect{Width: 800, Height: 600}
//	p := static.New(vp)
//	ref := p.Add(&static.Box{Name: "button", Rect: geom.Rect{X: 100, Y: 100, Width: 80, Height: 24}})
//	tip := p.Add(&static.Box{Name: "tooltip", Rect: geom.Rect{Width: 120, Height: 40}})
package static

import (
	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// Box is a host element with declared geometry. Boxes are handed to the
// engine as *Box handles.
type Box struct {
	Name string

	// Rect is the viewport-relative border box. Only the size matters for
	// the floating element.
	Rect geom.Rect

	// Lines are the client rects of a wrapped inline element. Empty means
	// the box is a single rect.
	Lines []geom.Rect

	// Clip is the intersection of the box's clipping ancestors. Nil means
	// only the root boundary clips.
	Clip *geom.Rect

	// OffsetParent is the nearest positioned ancestor, if any.
	OffsetParent *Box

	// Scroll is the box's own scroll offset (only meaningful for offset
	// parents).
	Scroll geom.Coords

	// Scale is the rendering scale; zero components mean 1.
	Scale geom.Coords

	// ClientWidth and ClientHeight are the inner sizes; zero means unknown.
	ClientWidth  float64
	ClientHeight float64

	RTL bool
}

// SetSize changes the box's size, keeping its origin.
func (b *Box) SetSize(d geom.Dimensions) {
	b.Rect.Width = d.Width
	b.Rect.Height = d.Height
}

func (b *Box) scale() geom.Coords {
	s := b.Scale
	if s.X <= 0 {
		s.X = 1
	}
	if s.Y <= 0 {
		s.Y = 1
	}
	return s
}

// Platform is a declared-geometry host.
type Platform struct {
	// Viewport is the root clipping rect.
	Viewport geom.Rect

	// Document is the scrollable document rect used for the "document" root
	// boundary. Zero means the viewport.
	Document geom.Rect

	boxes []*Box
}

// New creates a platform with the given viewport.
func New(viewport geom.Rect) *Platform {
	return &Platform{Viewport: viewport}
}

// Add registers b and returns it for use as an element handle.
func (p *Platform) Add(b *Box) *Box {
	p.boxes = append(p.boxes, b)
	return b
}

// Boxes returns the registered boxes in insertion order.
func (p *Platform) Boxes() []*Box {
	return p.boxes
}

// Box looks up a registered box by name.
func (p *Platform) Box(name string) (*Box, bool) {
	for _, b := range p.boxes {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// =============================================================================
// Required capabilities
// =============================================================================

// GetElementRects measures the reference relative to the floating element's
// offset parent. The floating rect has a zero origin.
func (p *Platform) GetElementRects(args platform.ElementRectsArgs) (geom.ElementRects, error) {
	floating, err := asBox(args.Floating, "floating")
	if err != nil {
		return geom.ElementRects{}, err
	}

	var ref geom.Rect
	switch v := args.Reference.(type) {
	case platform.VirtualElement:
		ref = v.BoundingClientRect().Rect
	case *platform.VirtualElement:
		if v == nil || v.BoundingClientRect == nil {
			return geom.ElementRects{}, errors.New(errors.ErrCodePlatform, "reference: nil virtual element")
		}
		ref = v.BoundingClientRect().Rect
	default:
		b, err := asBox(args.Reference, "reference")
		if err != nil {
			return geom.ElementRects{}, err
		}
		ref = b.Rect
	}

	if parent := floating.OffsetParent; parent != nil {
		ref = toParentSpace(ref, parent)
	}

	return geom.ElementRects{
		Reference: ref,
		Floating:  geom.Rect{Width: floating.Rect.Width, Height: floating.Rect.Height},
	}, nil
}

// GetClippingRect intersects the boundary with the root boundary.
func (p *Platform) GetClippingRect(args platform.ClippingRectArgs) (geom.Rect, error) {
	root := p.Viewport
	switch {
	case args.RootBoundary.Rect != nil:
		root = *args.RootBoundary.Rect
	case args.RootBoundary.Kind == platform.RootDocument && p.Document != (geom.Rect{}):
		root = p.Document
	}

	clip := root
	switch {
	case args.Boundary.Rect != nil:
		clip = intersect(clip, *args.Boundary.Rect)
	case len(args.Boundary.Elements) > 0:
		for _, el := range args.Boundary.Elements {
			b, err := asBox(el, "boundary")
			if err != nil {
				return geom.Rect{}, err
			}
			clip = intersect(clip, b.Rect)
		}
	default:
		if b, ok := args.Element.(*Box); ok && b != nil && b.Clip != nil {
			clip = intersect(clip, *b.Clip)
		}
	}
	return clip, nil
}

// GetDimensions returns the size of a box.
func (p *Platform) GetDimensions(el platform.Element) (geom.Dimensions, error) {
	b, err := asBox(el, "element")
	if err != nil {
		return geom.Dimensions{}, err
	}
	return b.Rect.Size(), nil
}

// =============================================================================
// Optional capabilities
// =============================================================================

// ToViewportRect maps an offset-parent-relative rect back to viewport space.
func (p *Platform) ToViewportRect(args platform.ConvertRectArgs) geom.Rect {
	parent, ok := args.OffsetParent.(*Box)
	if !ok || parent == nil {
		return args.Rect
	}
	s := parent.scale()
	return geom.Rect{
		X:      (args.Rect.X-parent.Scroll.X)*s.X + parent.Rect.X,
		Y:      (args.Rect.Y-parent.Scroll.Y)*s.Y + parent.Rect.Y,
		Width:  args.Rect.Width * s.X,
		Height: args.Rect.Height * s.Y,
	}
}

// OffsetParent returns the box's offset parent.
func (p *Platform) OffsetParent(el platform.Element) (platform.Element, bool) {
	b, ok := el.(*Box)
	if !ok || b == nil || b.OffsetParent == nil {
		return nil, false
	}
	return b.OffsetParent, true
}

// ClientRects returns the box's line rects, or its border box.
func (p *Platform) ClientRects(el platform.Element) []geom.ClientRect {
	b, ok := el.(*Box)
	if !ok || b == nil {
		return nil
	}
	if len(b.Lines) == 0 {
		return []geom.ClientRect{b.Rect.ClientRect()}
	}
	out := make([]geom.ClientRect, len(b.Lines))
	for i, r := range b.Lines {
		out[i] = r.ClientRect()
	}
	return out
}

// IsRTL reports the box's direction.
func (p *Platform) IsRTL(el platform.Element) bool {
	b, ok := el.(*Box)
	return ok && b != nil && b.RTL
}

// Scale returns the box's scale.
func (p *Platform) Scale(el platform.Element) geom.Coords {
	b, ok := el.(*Box)
	if !ok || b == nil {
		return geom.Coords{X: 1, Y: 1}
	}
	return b.scale()
}

// ClientLength returns the declared inner size on axis.
func (p *Platform) ClientLength(el platform.Element, axis geom.Axis) float64 {
	b, ok := el.(*Box)
	if !ok || b == nil {
		return 0
	}
	if axis == geom.AxisY {
		return b.ClientHeight
	}
	return b.ClientWidth
}

// IsElement reports whether v is a non-nil *Box.
func (p *Platform) IsElement(v any) bool {
	b, ok := v.(*Box)
	return ok && b != nil
}

// =============================================================================
// Helpers
// =============================================================================

func asBox(el platform.Element, label string) (*Box, error) {
	b, ok := el.(*Box)
	if !ok || b == nil {
		return nil, errors.New(errors.ErrCodePlatform, "%s: unsupported element handle %T", label, el)
	}
	return b, nil
}

// toParentSpace is the inverse of ToViewportRect.
func toParentSpace(r geom.Rect, parent *Box) geom.Rect {
	s := parent.scale()
	return geom.Rect{
		X:      (r.X-parent.Rect.X)/s.X + parent.Scroll.X,
		Y:      (r.Y-parent.Rect.Y)/s.Y + parent.Scroll.Y,
		Width:  r.Width / s.X,
		Height: r.Height / s.Y,
	}
}

func intersect(a, b geom.Rect) geom.Rect {
	left := max(a.X, b.X)
	top := max(a.Y, b.Y)
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	return geom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

var (
	_ platform.Platform             = (*Platform)(nil)
	_ platform.RectConverter        = (*Platform)(nil)
	_ platform.OffsetParentResolver = (*Platform)(nil)
	_ platform.ClientRectsProvider  = (*Platform)(nil)
	_ platform.RTLDetector          = (*Platform)(nil)
	_ platform.ScaleProvider        = (*Platform)(nil)
	_ platform.ClientLengthProvider = (*Platform)(nil)
	_ platform.ElementChecker       = (*Platform)(nil)
)
