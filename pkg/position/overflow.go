package position

import (
	"math"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// OverflowOptions configures DetectOverflow. The zero value checks the
// floating element against its clipping ancestors within the viewport.
type OverflowOptions struct {
	// Boundary is the clipping area. Zero value: clipping ancestors.
	Boundary platform.Boundary

	// RootBoundary is the outermost clipping area. Zero value: viewport.
	RootBoundary platform.RootBoundary

	// ElementContext selects the element whose overflow is measured.
	// Default: floating.
	ElementContext platform.ElementContext

	// AltBoundary measures against the other element's clipping area.
	AltBoundary bool

	// Padding shrinks the clipping area (virtual padding).
	Padding geom.Padding
}

// DetectOverflow returns, per side, how far the element selected by
// opts.ElementContext extends past its clipping rect. Positive values mean
// overflow by that many units, zero means flush, negative means room to
// spare. For the floating element the current state coordinates are used.
func DetectOverflow(s State, opts OverflowOptions) (geom.SideObject, error) {
	ctx := opts.ElementContext
	if ctx == "" {
		ctx = platform.ContextFloating
	}
	lookup := ctx
	if opts.AltBoundary {
		lookup = ctx.Opposite()
	}
	pad := opts.Padding.Sides()

	el := platform.ClippingElement(s.Platform, s.Elements.Of(lookup), s.Elements.Floating)
	clip, err := s.Platform.GetClippingRect(platform.ClippingRectArgs{
		Element:      el,
		Boundary:     opts.Boundary,
		RootBoundary: opts.RootBoundary,
		Strategy:     s.Strategy,
	})
	if err != nil {
		return geom.SideObject{}, errors.Wrap(errors.ErrCodePlatform, err, "clipping rect")
	}
	// Disjoint boundaries legitimately produce negative sizes; only NaN is a
	// broken measurement.
	if math.IsNaN(clip.X) || math.IsNaN(clip.Y) || math.IsNaN(clip.Width) || math.IsNaN(clip.Height) {
		return geom.SideObject{}, errors.New(errors.ErrCodePlatformContract, "clipping rect has NaN components")
	}
	clipping := clip.ClientRect()

	rect := s.Rects.Reference
	if ctx == platform.ContextFloating {
		rect = geom.Rect{X: s.X, Y: s.Y, Width: s.Rects.Floating.Width, Height: s.Rects.Floating.Height}
	}

	parent, hasParent := platform.OffsetParent(s.Platform, s.Elements.Floating)
	scale := geom.Coords{X: 1, Y: 1}
	if hasParent && platform.IsElement(s.Platform, parent) {
		scale = platform.Scale(s.Platform, parent)
	}
	var offsetParent platform.Element
	if hasParent {
		offsetParent = parent
	}
	elementRect := platform.ToViewportRect(s.Platform, platform.ConvertRectArgs{
		Elements:     s.Elements,
		Rect:         rect,
		OffsetParent: offsetParent,
		Strategy:     s.Strategy,
	}).ClientRect()

	return geom.SideObject{
		Top:    (clipping.Top - elementRect.Top + pad.Top) / scale.Y,
		Bottom: (elementRect.Bottom - clipping.Bottom + pad.Bottom) / scale.Y,
		Left:   (clipping.Left - elementRect.Left + pad.Left) / scale.X,
		Right:  (elementRect.Right - clipping.Right + pad.Right) / scale.X,
	}, nil
}
