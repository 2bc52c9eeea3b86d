package position

import (
	"maps"

	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// =============================================================================
// Middleware Contract
// =============================================================================

// Middleware is one named step of the positioning pipeline.
type Middleware interface {
	// Name keys the middleware's record in MiddlewareData.
	Name() string

	// Compute inspects the snapshot and returns adjustments. It must not
	// mutate host state.
	Compute(s State) (Return, error)
}

type funcMiddleware struct {
	name string
	fn   func(State) (Return, error)
}

func (f funcMiddleware) Name() string                    { return f.name }
func (f funcMiddleware) Compute(s State) (Return, error) { return f.fn(s) }

// MiddlewareFunc adapts a function into a Middleware.
func MiddlewareFunc(name string, fn func(State) (Return, error)) Middleware {
	return funcMiddleware{name: name, fn: fn}
}

// State is the read-only snapshot a middleware receives.
type State struct {
	// X and Y are the current candidate coordinates.
	X, Y float64

	// InitialPlacement is the placement the caller asked for.
	InitialPlacement geom.Placement

	// Placement is the current placement, possibly changed by a reset.
	Placement geom.Placement

	Strategy geom.Strategy

	// MiddlewareData holds records from earlier steps and earlier passes.
	MiddlewareData MiddlewareData

	Elements platform.Elements
	Rects    geom.ElementRects
	Platform platform.Platform
}

// Coords returns the current candidate coordinates.
func (s State) Coords() geom.Coords {
	return geom.Coords{X: s.X, Y: s.Y}
}

// WithCoords returns a copy of s at c.
func (s State) WithCoords(c geom.Coords) State {
	s.X, s.Y = c.X, c.Y
	return s
}

// IsRTL reports whether the floating element is laid out right to left.
func (s State) IsRTL() bool {
	return platform.IsRTL(s.Platform, s.Elements.Floating)
}

// Return is what a middleware hands back to the pipeline.
type Return struct {
	// Coords replaces the candidate coordinates when non-nil.
	Coords *geom.Coords

	// Data is stored under the middleware's name when non-nil, replacing any
	// earlier record.
	Data any

	// Reset restarts the pipeline when non-nil.
	Reset *Reset
}

// Reset asks the pipeline to restart at the first middleware.
//
// A reset that changes the placement or the rects recomputes the base
// coordinates from scratch. An empty reset restarts with the current
// coordinates.
type Reset struct {
	// Placement replaces the current placement when non-empty.
	Placement geom.Placement

	// Rects replaces the measured rects when non-nil.
	Rects *geom.ElementRects

	// Remeasure re-fetches the rects from the platform. Ignored when Rects
	// is set.
	Remeasure bool
}

func (r Reset) changesLayout() bool {
	return r.Placement != "" || r.Rects != nil || r.Remeasure
}

// =============================================================================
// Middleware Data
// =============================================================================

// MiddlewareData maps middleware names to their last data record. Each
// middleware owns the concrete type of its record; unknown records pass
// through untouched.
type MiddlewareData map[string]any

// Clone returns a shallow copy.
func (d MiddlewareData) Clone() MiddlewareData {
	if d == nil {
		return MiddlewareData{}
	}
	return maps.Clone(d)
}

// Has reports whether a record exists under name.
func (d MiddlewareData) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// DataOf returns the record stored under name if it has type T.
func DataOf[T any](d MiddlewareData, name string) (T, bool) {
	v, ok := d[name].(T)
	return v, ok
}
