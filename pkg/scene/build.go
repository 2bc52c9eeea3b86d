package scene

import (
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/middleware"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/platform/static"
	"github.com/matzehuels/floatpos/pkg/position"
)

// Box names used for the elements a scene declares.
const (
	BoxReference    = "reference"
	BoxFloating     = "floating"
	BoxArrow        = "arrow"
	BoxOffsetParent = "offset-parent"
)

// Built is a scene turned into a host and a pipeline configuration. The
// boxes are live: moving Reference and calling Compute again repositions
// the floating element.
type Built struct {
	Platform  *static.Platform
	Config    position.Config
	Reference *static.Box
	Floating  *static.Box
	Arrow     *static.Box

	// floatingSize is the declared size the size middleware shrinks from.
	floatingSize geom.Dimensions
}

// Build validates s and creates its host and configuration.
func (s *Scene) Build() (*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := static.New(s.Viewport)
	if s.Document != nil {
		p.Document = *s.Document
	}

	b := &Built{
		Platform: p,
		Reference: p.Add(&static.Box{
			Name:  BoxReference,
			Rect:  s.Reference.Rect(),
			Lines: cloneRects(s.Reference.Lines),
			Clip:  cloneRect(s.Reference.Clip),
		}),
		Floating: p.Add(&static.Box{
			Name: BoxFloating,
			Rect: geom.Rect{Width: s.Floating.Width, Height: s.Floating.Height},
			Clip: cloneRect(s.Floating.Clip),
			RTL:  s.RTL,
		}),
		floatingSize: geom.Dimensions{Width: s.Floating.Width, Height: s.Floating.Height},
	}

	if op := s.OffsetParent; op != nil {
		parent := &static.Box{
			Name:   BoxOffsetParent,
			Rect:   geom.Rect{X: op.X, Y: op.Y, Width: op.Width, Height: op.Height},
			Scroll: op.Scroll,
		}
		if op.Scale != nil {
			parent.Scale = *op.Scale
		}
		b.Floating.OffsetParent = p.Add(parent)
	}
	if s.Arrow != nil {
		b.Arrow = p.Add(&static.Box{
			Name: BoxArrow,
			Rect: geom.Rect{Width: s.Arrow.Width, Height: s.Arrow.Height},
		})
	}

	mws := make([]position.Middleware, 0, len(s.Middleware))
	for _, spec := range s.Middleware {
		mw, err := b.middleware(spec)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}

	b.Config = position.Config{
		Placement:  geom.Placement(s.Placement),
		Strategy:   geom.Strategy(s.Strategy),
		Middleware: mws,
		Platform:   p,
		MaxResets:  s.MaxResets,
	}
	return b, nil
}

// Compute restores the floating element's declared size and runs the
// pipeline.
func (b *Built) Compute() (position.Result, error) {
	b.Floating.SetSize(b.floatingSize)
	return position.ComputePosition(b.Reference, b.Floating, b.Config)
}

func (b *Built) middleware(spec MiddlewareSpec) (position.Middleware, error) {
	overflow := spec.overflow()

	switch spec.Name {
	case middleware.NameOffset:
		return middleware.OffsetAxes(middleware.OffsetOptions{
			MainAxis:      spec.MainAxis,
			CrossAxis:     spec.CrossAxis,
			AlignmentAxis: spec.AlignmentAxis,
		}), nil

	case middleware.NameShift:
		opts := middleware.ShiftOptions{
			SkipMainAxis: spec.SkipMainAxis,
			CrossAxis:    spec.CheckCrossAxis,
			Overflow:     overflow,
		}
		if spec.Limit {
			opts.Limiter = middleware.LimitShift(middleware.LimitShiftOptions{
				Offset: middleware.LimitShiftOffset{MainAxis: spec.LimitMainAxis, CrossAxis: spec.LimitCrossAxis},
			})
		}
		return middleware.Shift(opts), nil

	case middleware.NameFlip:
		fallbacks, err := parsePlacements(spec.FallbackPlacements)
		if err != nil {
			return nil, err
		}
		return middleware.Flip(middleware.FlipOptions{
			SkipMainAxis:              spec.SkipMainAxis,
			CrossAxis:                 middleware.CrossAxisMode(spec.CrossAxisMode),
			FallbackPlacements:        fallbacks,
			FallbackStrategy:          middleware.FallbackStrategy(spec.FallbackStrategy),
			FallbackAxisSideDirection: geom.AxisSideDirection(spec.FallbackAxisSideDirection),
			NoFlipAlignment:           spec.NoFlipAlignment,
			Overflow:                  overflow,
		}), nil

	case middleware.NameSize:
		opts := middleware.SizeOptions{Overflow: overflow}
		if spec.Fit {
			opts.Apply = b.fit
		}
		return middleware.Size(opts), nil

	case middleware.NameArrow:
		return middleware.Arrow(middleware.ArrowOptions{
			Element: b.Arrow,
			Padding: spec.padding(),
		}), nil

	case middleware.NameAutoPlacement:
		allowed, err := parsePlacements(spec.AllowedPlacements)
		if err != nil {
			return nil, err
		}
		return middleware.AutoPlacement(middleware.AutoPlacementOptions{
			CrossAxis:         spec.CheckCrossAxis,
			Alignment:         geom.Alignment(spec.Alignment),
			AllowedPlacements: allowed,
			NoAutoAlignment:   spec.NoAutoAlignment,
			Overflow:          overflow,
		}), nil

	case middleware.NameHide:
		return middleware.Hide(middleware.HideOptions{
			Strategy: middleware.HideStrategy(spec.Strategy),
			Overflow: overflow,
		}), nil

	case middleware.NameInline:
		opts := middleware.InlineOptions{Pointer: spec.Pointer}
		if spec.Padding != nil || spec.PaddingSides != nil {
			pad := spec.padding()
			opts.Padding = &pad
		}
		return middleware.Inline(opts), nil
	}
	return nil, invalid("unknown middleware %q", spec.Name)
}

// fit shrinks the floating element so it never exceeds the available space.
func (b *Built) fit(_ position.State, available geom.Dimensions) error {
	b.Floating.SetSize(geom.Dimensions{
		Width:  max(0, min(b.floatingSize.Width, available.Width)),
		Height: max(0, min(b.floatingSize.Height, available.Height)),
	})
	return nil
}

func (m MiddlewareSpec) padding() geom.Padding {
	switch {
	case m.PaddingSides != nil:
		return geom.SidePadding(*m.PaddingSides)
	case m.Padding != nil:
		return geom.UniformPadding(*m.Padding)
	}
	return geom.Padding{}
}

func (m MiddlewareSpec) overflow() position.OverflowOptions {
	opts := position.OverflowOptions{
		RootBoundary:   platform.RootBoundary{Kind: platform.RootKind(m.RootBoundary)},
		ElementContext: platform.ElementContext(m.ElementContext),
		AltBoundary:    m.AltBoundary,
		Padding:        m.padding(),
	}
	if m.Boundary != nil {
		opts.Boundary.Rect = cloneRect(m.Boundary)
	}
	return opts
}

func cloneRect(r *geom.Rect) *geom.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func cloneRects(rs []geom.Rect) []geom.Rect {
	if len(rs) == 0 {
		return nil
	}
	return append([]geom.Rect(nil), rs...)
}
