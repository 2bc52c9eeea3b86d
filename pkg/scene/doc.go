// Package scene reads and writes scene files: a declared host geometry plus
// a middleware chain that together make one positioning run reproducible
// outside a live host.
//
// # Format
//
// Scenes are TOML, YAML or JSON; the decoder is picked by file extension.
// Unknown keys are rejected so typos surface as errors instead of silently
// ignored options.
//
//	placement = "top"
//	strategy = "absolute"
//
//	[viewport]
//	x = 0
//	y = 0
//	width = 800
//	height = 600
//
//	[reference]
//	x = 100
//	y = 100
//	width = 80
//	height = 20
//
//	[floating]
//	width = 120
//	height = 40
//
//	[[middleware]]
//	name = "offset"
//	main_axis = 8
//
//	[[middleware]]
//	name = "flip"
//
//	[[middleware]]
//	name = "shift"
//	padding = 4
//
// # Elements
//
// The reference may carry [[reference.lines]] (the client rects of a wrapped
// inline element, used by the inline middleware) and a [reference.clip]
// rect standing in for its clipping ancestors. An optional [arrow] element
// feeds the arrow middleware and an optional [offset_parent] places the
// floating element inside a scrolled or scaled container.
//
// # Middleware Options
//
// Each [[middleware]] entry names one of the built-in middleware and sets
// only the options that middleware reads. Options shared by every
// overflow-checking middleware are padding, padding_sides, boundary,
// root_boundary, element_context and alt_boundary. See [MiddlewareSpec] for
// the full list.
//
// # Running
//
// [Scene.Build] turns a validated scene into a static host and a
// [position.Config]; [Built.Compute] runs the pipeline and [WriteResult]
// exports the result as JSON.
package scene
