// Package pkg holds the public libraries of floatpos.
//
// # Overview
//
// floatpos computes where a floating element (tooltip, popover, dropdown)
// should sit next to a reference element. The pkg directory is organized as:
//
//  1. [geom] - Rects, sides, placements and the placement algebra
//  2. [platform] - The host measurement contract plus the in-memory [platform/static] host
//  3. [position] - The pipeline driver and overflow detection
//  4. [middleware] - Offset, shift, flip, size, arrow, autoPlacement, hide and inline
//  5. [scene] - Scene files (TOML, YAML, JSON) that declare a host and a chain
//  6. [errors], [observability], [buildinfo] - Coded errors, hooks and version info
//
// # Architecture
//
// The typical data flow:
//
//	Host geometry (live host or scene file)
//	         ↓
//	    [platform] package (measure reference and floating element)
//	         ↓
//	    [position] package (base coordinates, then the middleware pipeline)
//	         ↓
//	    [middleware] package (adjust coordinates, request resets, record data)
//	         ↓
//	    x, y, final placement and per-middleware data
//
// # Quick Start
//
//	host := static.New(geom.Rect{Width: 800, Height: 600})
//	button := host.Add(&static.Box{Name: "button", Rect: geom.Rect{X: 100, Y: 10, Width: 80, Height: 24}})
//	tip := host.Add(&static.Box{Name: "tooltip", Rect: geom.Rect{Width: 120, Height: 40}})
//
//	res, err := position.ComputePosition(button, tip, position.Config{
//	    Placement: geom.Top,
//	    Platform:  host,
//	    Middleware: []position.Middleware{
//	        middleware.Offset(8),
//	        middleware.Flip(middleware.FlipOptions{}),
//	        middleware.Shift(middleware.ShiftOptions{}),
//	    },
//	})
//
// [geom]: github.com/matzehuels/floatpos/pkg/geom
// [platform]: github.com/matzehuels/floatpos/pkg/platform
// [platform/static]: github.com/matzehuels/floatpos/pkg/platform/static
// [position]: github.com/matzehuels/floatpos/pkg/position
// [middleware]: github.com/matzehuels/floatpos/pkg/middleware
// [scene]: github.com/matzehuels/floatpos/pkg/scene
// [errors]: github.com/matzehuels/floatpos/pkg/errors
// [observability]: github.com/matzehuels/floatpos/pkg/observability
// [buildinfo]: github.com/matzehuels/floatpos/pkg/buildinfo
package pkg
