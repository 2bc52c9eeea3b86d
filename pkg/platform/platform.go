// Package platform defines the boundary between the positioning engine and
// the host environment that owns the real elements.
//
// A host implements [Platform] (three required measurements) and may
// additionally implement any of the optional capability interfaces. The
// engine never calls an optional method directly; it goes through the helper
// functions in this package ([IsRTL], [Scale], [OffsetParent], ...) which
// fall back to a documented default when the capability is missing. A minimal
// test double therefore only needs the three required methods.
//
// Every method must be a synchronous, side-effect-free read of current host
// geometry.
package platform

import (
	"github.com/matzehuels/floatpos/pkg/geom"
)

// Element is an opaque handle to a host element. The engine never inspects
// it; it only passes it back to the platform.
type Element any

// VirtualElement stands in for a reference that has no host element of its
// own, such as a synthetic bounding box computed by a middleware.
// Platforms must accept it wherever a reference element is accepted.
type VirtualElement struct {
	// BoundingClientRect returns the viewport-relative rectangle.
	BoundingClientRect func() geom.ClientRect

	// ContextElement is the host element the virtual one belongs to, used
	// for clipping lookups. Optional.
	ContextElement Element
}

// Elements groups the two handles of one computation.
type Elements struct {
	Reference Element
	Floating  Element
}

// ElementContext selects which element an overflow check applies to.
type ElementContext string

const (
	ContextFloating  ElementContext = "floating"
	ContextReference ElementContext = "reference"
)

// Opposite returns the other context.
func (c ElementContext) Opposite() ElementContext {
	if c == ContextReference {
		return ContextFloating
	}
	return ContextReference
}

// Of returns the element for context c.
func (e Elements) Of(c ElementContext) Element {
	if c == ContextReference {
		return e.Reference
	}
	return e.Floating
}

// Boundary is the clipping region an element is checked against. The zero
// value means the element's clipping ancestors.
type Boundary struct {
	// Elements replaces the clipping ancestors with explicit elements.
	Elements []Element
	// Rect replaces the clipping ancestors with a fixed rectangle.
	Rect *geom.Rect
}

// IsClippingAncestors reports whether b is the default boundary.
func (b Boundary) IsClippingAncestors() bool {
	return len(b.Elements) == 0 && b.Rect == nil
}

// RootKind names the outermost clipping area.
type RootKind string

const (
	RootViewport RootKind = "viewport"
	RootDocument RootKind = "document"
)

// RootBoundary is the outermost clipping area. The zero value is the viewport.
type RootBoundary struct {
	Kind RootKind
	Rect *geom.Rect
}

// ElementRectsArgs are the inputs to [Platform.GetElementRects].
type ElementRectsArgs struct {
	Reference Element
	Floating  Element
	Strategy  geom.Strategy
}

// ClippingRectArgs are the inputs to [Platform.GetClippingRect].
type ClippingRectArgs struct {
	Element      Element
	Boundary     Boundary
	RootBoundary RootBoundary
	Strategy     geom.Strategy
}

// ConvertRectArgs are the inputs to [RectConverter.ToViewportRect].
type ConvertRectArgs struct {
	Elements     Elements
	Rect         geom.Rect
	OffsetParent Element
	Strategy     geom.Strategy
}

// =============================================================================
// Required capabilities
// =============================================================================

// Platform is the set of host queries the engine cannot work without.
type Platform interface {
	// GetElementRects measures the reference relative to the floating
	// element's offset parent, and the floating element's size.
	GetElementRects(args ElementRectsArgs) (geom.ElementRects, error)

	// GetClippingRect returns the visible area an element is clipped to.
	GetClippingRect(args ClippingRectArgs) (geom.Rect, error)

	// GetDimensions returns the element's current size.
	GetDimensions(el Element) (geom.Dimensions, error)
}

// =============================================================================
// Optional capabilities
// =============================================================================

// RectConverter converts an offset-parent-relative rect into viewport space.
type RectConverter interface {
	ToViewportRect(args ConvertRectArgs) geom.Rect
}

// OffsetParentResolver finds the nearest positioned ancestor.
type OffsetParentResolver interface {
	OffsetParent(el Element) (Element, bool)
}

// ClientRectsProvider enumerates the boxes a (possibly wrapped inline)
// element is made of.
type ClientRectsProvider interface {
	ClientRects(el Element) []geom.ClientRect
}

// RTLDetector reports right-to-left layout direction.
type RTLDetector interface {
	IsRTL(el Element) bool
}

// ScaleProvider reports the element's rendering scale.
type ScaleProvider interface {
	Scale(el Element) geom.Coords
}

// ClientLengthProvider reports an element's inner size along an axis
// (clientWidth / clientHeight). A zero length means unknown.
type ClientLengthProvider interface {
	ClientLength(el Element, axis geom.Axis) float64
}

// ElementChecker distinguishes real host elements from other handles such as
// virtual elements or windows.
type ElementChecker interface {
	IsElement(v any) bool
}
