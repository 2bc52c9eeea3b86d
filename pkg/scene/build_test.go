package scene

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/middleware"
	"github.com/matzehuels/floatpos/pkg/position"
)

func mustBuild(t *testing.T, s *Scene) *Built {
	t.Helper()
	b, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return b
}

func mustCompute(t *testing.T, b *Built) position.Result {
	t.Helper()
	res, err := b.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return res
}

func TestBuildCompute(t *testing.T) {
	tests := []struct {
		name      string
		refY      float64
		placement geom.Placement
		want      geom.Coords
	}{
		{"fits on top", 100, geom.Top, geom.Coords{X: 80, Y: 52}},
		{"flips to bottom", 10, geom.Bottom, geom.Coords{X: 80, Y: 38}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tooltipScene()
			s.Reference.Y = tt.refY
			res := mustCompute(t, mustBuild(t, s))
			if res.Placement != tt.placement || res.Coords() != tt.want {
				t.Errorf("got %s %v, want %s %v", res.Placement, res.Coords(), tt.placement, tt.want)
			}
		})
	}
}

func TestBuiltTracksMovedReference(t *testing.T) {
	b := mustBuild(t, tooltipScene())
	first := mustCompute(t, b)

	b.Reference.Rect.Y = 10
	moved := mustCompute(t, b)
	if first.Placement != geom.Top || moved.Placement != geom.Bottom {
		t.Errorf("placements = %s then %s, want top then bottom", first.Placement, moved.Placement)
	}
}

func TestBuildElements(t *testing.T) {
	s := tooltipScene()
	s.RTL = true
	s.Document = &geom.Rect{Width: 800, Height: 2000}
	s.Arrow = &Element{Width: 8, Height: 8}
	s.OffsetParent = &OffsetParent{X: 10, Y: 20, Scroll: geom.Coords{Y: 5}}
	b := mustBuild(t, s)

	if !b.Floating.RTL {
		t.Error("floating box is not RTL")
	}
	if b.Platform.Document != *s.Document {
		t.Errorf("Document = %v", b.Platform.Document)
	}
	if b.Arrow == nil || b.Arrow.Rect.Size() != (geom.Dimensions{Width: 8, Height: 8}) {
		t.Errorf("Arrow = %+v", b.Arrow)
	}
	if op := b.Floating.OffsetParent; op == nil || op.Name != BoxOffsetParent || op.Scroll.Y != 5 {
		t.Errorf("OffsetParent = %+v", b.Floating.OffsetParent)
	}
	for _, name := range []string{BoxReference, BoxFloating, BoxArrow, BoxOffsetParent} {
		if _, ok := b.Platform.Box(name); !ok {
			t.Errorf("box %q not registered", name)
		}
	}
	if len(b.Config.Middleware) != len(s.Middleware) {
		t.Errorf("built %d middleware, want %d", len(b.Config.Middleware), len(s.Middleware))
	}
}

func TestBuildEveryMiddleware(t *testing.T) {
	s := tooltipScene()
	s.Arrow = &Element{Width: 8, Height: 8}
	s.Reference.Lines = []geom.Rect{{X: 100, Y: 100, Width: 80, Height: 20}}
	s.Middleware = nil
	names := []string{
		middleware.NameInline, middleware.NameOffset, middleware.NameAutoPlacement,
		middleware.NameShift, middleware.NameSize, middleware.NameArrow, middleware.NameHide,
	}
	for _, n := range names {
		s.Middleware = append(s.Middleware, MiddlewareSpec{Name: n})
	}

	b := mustBuild(t, s)
	for i, mw := range b.Config.Middleware {
		if mw.Name() != names[i] {
			t.Errorf("middleware[%d] = %s, want %s", i, mw.Name(), names[i])
		}
	}
	mustCompute(t, b)
}

func TestSizeFitShrinksFloating(t *testing.T) {
	s := tooltipScene()
	s.Placement = "bottom"
	s.Floating.Height = 600
	s.Middleware = []MiddlewareSpec{{Name: "size", Fit: true}}
	b := mustBuild(t, s)

	for i := 0; i < 2; i++ {
		res := mustCompute(t, b)
		data, ok := middleware.SizeDataOf(res.MiddlewareData)
		if !ok {
			t.Fatal("no size data")
		}
		if data.AvailableHeight != 480 {
			t.Errorf("AvailableHeight = %v, want 480", data.AvailableHeight)
		}
		if b.Floating.Rect.Height != 480 {
			t.Errorf("floating height = %v, want 480", b.Floating.Rect.Height)
		}
		if res.Resets != 1 {
			t.Errorf("Resets = %d, want 1", res.Resets)
		}
	}
}

func TestWriteResult(t *testing.T) {
	res := mustCompute(t, mustBuild(t, tooltipScene()))

	var buf bytes.Buffer
	if err := WriteResult(res, &buf); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	var decoded struct {
		X              float64                    `json:"x"`
		Y              float64                    `json:"y"`
		Placement      string                     `json:"placement"`
		MiddlewareData map[string]json.RawMessage `json:"middleware_data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.X != 80 || decoded.Y != 52 || decoded.Placement != "top" {
		t.Errorf("decoded = %+v", decoded)
	}
	for _, name := range []string{middleware.NameOffset, middleware.NameShift} {
		if _, ok := decoded.MiddlewareData[name]; !ok {
			t.Errorf("middleware_data has no %q entry: %s", name, buf.String())
		}
	}
}

func TestExampleScenes(t *testing.T) {
	tests := []struct {
		file      string
		placement geom.Placement
	}{
		{"tooltip.toml", geom.Top},
		{"dropdown.yaml", geom.TopStart},
		{"inline-link.json", geom.Bottom},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Load(filepath.Join("..", "..", "examples", "scenes", tt.file))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			res := mustCompute(t, mustBuild(t, s))
			if res.Placement != tt.placement {
				t.Errorf("placement = %s, want %s", res.Placement, tt.placement)
			}
		})
	}
}

func TestExportResult(t *testing.T) {
	res := mustCompute(t, mustBuild(t, tooltipScene()))

	path := filepath.Join(t.TempDir(), "result.json")
	if err := ExportResult(res, path); err != nil {
		t.Fatalf("ExportResult() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded position.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported file is not JSON: %v\n%s", err, data)
	}
	if decoded.Coords() != res.Coords() || decoded.Placement != res.Placement {
		t.Errorf("exported %v %s, want %v %s", decoded.Coords(), decoded.Placement, res.Coords(), res.Placement)
	}

	if err := ExportResult(res, filepath.Join(t.TempDir(), "missing", "result.json")); err == nil {
		t.Error("ExportResult() into a missing directory returned nil error")
	}
}
