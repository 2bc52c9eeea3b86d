package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/observability"
)

const tooltipTOML = `
placement = "top"

[viewport]
x = 0
y = 0
width = 800
height = 600

[reference]
x = 100
y = 100
width = 80
height = 20

[floating]
width = 120
height = 40

[[middleware]]
name = "offset"
main_axis = 8

[[middleware]]
name = "flip"
fallback_placements = ["bottom", "right"]

[[middleware]]
name = "shift"
padding = 4
limit = true
`

const tooltipYAML = `
placement: top
viewport: {x: 0, y: 0, width: 800, height: 600}
reference: {x: 100, y: 100, width: 80, height: 20}
floating: {width: 120, height: 40}
middleware:
  - name: offset
    main_axis: 8
  - name: flip
    fallback_placements: [bottom, right]
  - name: shift
    padding: 4
    limit: true
`

const tooltipJSON = `{
  "placement": "top",
  "viewport": {"x": 0, "y": 0, "width": 800, "height": 600},
  "reference": {"x": 100, "y": 100, "width": 80, "height": 20},
  "floating": {"width": 120, "height": 40},
  "middleware": [
    {"name": "offset", "main_axis": 8},
    {"name": "flip", "fallback_placements": ["bottom", "right"]},
    {"name": "shift", "padding": 4, "limit": true}
  ]
}`

func tooltipScene() *Scene {
	pad := 4.0
	return &Scene{
		Placement: "top",
		Viewport:  geom.Rect{Width: 800, Height: 600},
		Reference: Element{X: 100, Y: 100, Width: 80, Height: 20},
		Floating:  Element{Width: 120, Height: 40},
		Middleware: []MiddlewareSpec{
			{Name: "offset", MainAxis: 8},
			{Name: "flip", FallbackPlacements: []string{"bottom", "right"}},
			{Name: "shift", Padding: &pad, Limit: true},
		},
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatTOML, tooltipTOML},
		{FormatYAML, tooltipYAML},
		{FormatJSON, tooltipJSON},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tooltipScene(), got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatTOML, "placement = \"top\"\nplacment = \"left\"\n[viewport]\nwidth = 10\nheight = 10\n"},
		{FormatYAML, "placement: top\nplacment: left\nviewport: {width: 10, height: 10}\n"},
		{FormatJSON, `{"placement": "top", "placment": "left", "viewport": {"width": 10, "height": 10}}`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidScene) {
				t.Errorf("Parse() error = %v, want %s", err, errors.ErrCodeInvalidScene)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := tooltipScene()
	want.Reference.Lines = []geom.Rect{{X: 100, Y: 100, Width: 40, Height: 10}, {X: 0, Y: 110, Width: 80, Height: 10}}
	want.Reference.Clip = &geom.Rect{Width: 400, Height: 300}
	want.Arrow = &Element{Width: 8, Height: 8}
	want.OffsetParent = &OffsetParent{X: 10, Y: 20, Scale: &geom.Coords{X: 2, Y: 2}}
	want.Middleware = append(want.Middleware,
		MiddlewareSpec{Name: "arrow", PaddingSides: &geom.SideObject{Left: 2, Right: 2}},
		MiddlewareSpec{Name: "hide", Strategy: "escaped", Boundary: &geom.Rect{Width: 50, Height: 50}},
	)

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(want, format)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := Parse(data, format)
			if err != nil {
				t.Fatalf("Parse() error = %v\n%s", err, data)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Scene)
	}{
		{"unknown placement", func(s *Scene) { s.Placement = "middle" }},
		{"unknown strategy", func(s *Scene) { s.Strategy = "sticky" }},
		{"negative max resets", func(s *Scene) { s.MaxResets = -1 }},
		{"empty viewport", func(s *Scene) { s.Viewport = geom.Rect{} }},
		{"negative floating size", func(s *Scene) { s.Floating.Width = -1 }},
		{"negative line", func(s *Scene) { s.Reference.Lines = []geom.Rect{{Width: -5, Height: 1}} }},
		{"unknown middleware", func(s *Scene) { s.Middleware[0].Name = "nudge" }},
		{"bad fallback placement", func(s *Scene) { s.Middleware[1].FallbackPlacements = []string{"north"} }},
		{"bad cross axis mode", func(s *Scene) { s.Middleware[1].CrossAxisMode = "sometimes" }},
		{"bad root boundary", func(s *Scene) { s.Middleware[2].RootBoundary = "screen" }},
		{"bad element context", func(s *Scene) { s.Middleware[2].ElementContext = "arrow" }},
		{"bad hide strategy", func(s *Scene) { s.Middleware = append(s.Middleware, MiddlewareSpec{Name: "hide", Strategy: "gone"}) }},
		{"arrow without element", func(s *Scene) { s.Middleware = append(s.Middleware, MiddlewareSpec{Name: "arrow"}) }},
		{"NaN main axis", func(s *Scene) { s.Middleware[0].MainAxis = math.NaN() }},
		{"NaN alignment axis", func(s *Scene) { v := math.NaN(); s.Middleware[0].AlignmentAxis = &v }},
		{"NaN limit offset", func(s *Scene) { s.Middleware[2].LimitCrossAxis = math.NaN() }},
		{"NaN padding side", func(s *Scene) { s.Middleware[2].PaddingSides = &geom.SideObject{Left: math.NaN()} }},
		{"NaN pointer", func(s *Scene) {
			s.Middleware = append(s.Middleware, MiddlewareSpec{Name: "inline", Pointer: &geom.Coords{X: math.NaN()}})
		}},
	}
	if err := tooltipScene().Validate(); err != nil {
		t.Fatalf("Validate() on base scene error = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tooltipScene()
			tt.modify(s)
			err := s.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidScene) {
				t.Errorf("Validate() error = %v, want %s", err, errors.ErrCodeInvalidScene)
			}
		})
	}
}

type recordingSceneHooks struct {
	observability.NoopSceneHooks
	path, format string
	err          error
	calls        int
}

func (h *recordingSceneHooks) OnSceneLoad(path, format string, _ time.Duration, err error) {
	h.path, h.format, h.err = path, format, err
	h.calls++
}

func TestLoad(t *testing.T) {
	hooks := &recordingSceneHooks{}
	observability.SetSceneHooks(hooks)
	defer observability.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "tooltip.yml")
	if err := os.WriteFile(path, []byte(tooltipYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(tooltipScene(), s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if hooks.calls != 1 || hooks.path != path || hooks.format != "yaml" || hooks.err != nil {
		t.Errorf("hook saw %+v", hooks)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("placement = \"top\"\n[viewport]\nwidth = 0\nheight = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want errors.Code
	}{
		{"missing file", filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
		{"unsupported extension", filepath.Join(dir, "scene.ini"), errors.ErrCodeInvalidScene},
		{"empty path", "", errors.ErrCodeInvalidScene},
		{"invalid content", broken, errors.ErrCodeInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tooltip.toml")
	if err := Save(tooltipScene(), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(tooltipScene(), got); diff != "" {
		t.Errorf("Save/Load mismatch (-want +got):\n%s", diff)
	}
}
