// Package position computes where a floating element should be placed next to
// a reference element.
//
// # Architecture
//
// [ComputePosition] is a linear pipeline with rewind:
//
//  1. Measure the reference and floating rects through the [platform.Platform].
//  2. Derive base coordinates from the placement alone
//     ([ComputeCoordsFromPlacement]); no overflow knowledge yet.
//  3. Run each [Middleware] in order. A middleware sees a [State] snapshot and
//     returns a [Return]: optional new coordinates, an optional data record
//     stored under its name, and an optional [Reset].
//  4. A reset restarts the pipeline at the first middleware, optionally with a
//     new placement and/or new rects. [MiddlewareData] survives resets, which
//     is how placement-search middleware remember what they already tried.
//
// Resets are capped by [Config.MaxResets]; a pipeline that keeps resetting
// fails with an errors.ErrCodeResetLimit error instead of looping forever.
//
// # Usage
//
//	cfg := position.Config{
//	    Placement: geom.Top,
//	    Platform:  host,
//	    Middleware: []position.Middleware{
//	        middleware.Offset(8),
//	        middleware.Flip(middleware.FlipOptions{}),
//	        middleware.Shift(middleware.ShiftOptions{}),
//	    },
//	}
//	res, err := position.ComputePosition(button, tooltip, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.X, res.Y, res.Placement)
//
// # Custom middleware
//
// Any type implementing [Middleware] can join the pipeline; [MiddlewareFunc]
// adapts a plain function:
//
//	round := position.MiddlewareFunc("round", func(s position.State) (position.Return, error) {
//	    return position.Return{Coords: &geom.Coords{X: math.Round(s.X), Y: math.Round(s.Y)}}, nil
//	})
//
// # Overflow
//
// [DetectOverflow] is the shared primitive most middleware build on: it
// reports, per side, how far the candidate rect extends past its clipping
// boundary (positive means clipped).
package position
