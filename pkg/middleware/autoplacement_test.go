package middleware

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floatpos/pkg/geom"
)

func TestAutoPlacementPlacements(t *testing.T) {
	tests := []struct {
		name string
		opts AutoPlacementOptions
		want []geom.Placement
	}{
		{"default", AutoPlacementOptions{}, []geom.Placement{geom.Top, geom.Right, geom.Bottom, geom.Left}},
		{
			"start alignment",
			AutoPlacementOptions{Alignment: geom.AlignStart},
			[]geom.Placement{
				geom.TopStart, geom.RightStart, geom.BottomStart, geom.LeftStart,
				geom.TopEnd, geom.RightEnd, geom.BottomEnd, geom.LeftEnd,
			},
		},
		{
			"start alignment only",
			AutoPlacementOptions{Alignment: geom.AlignStart, NoAutoAlignment: true},
			[]geom.Placement{geom.TopStart, geom.RightStart, geom.BottomStart, geom.LeftStart},
		},
		{
			"allowed as given",
			AutoPlacementOptions{AllowedPlacements: []geom.Placement{geom.BottomEnd, geom.Top}},
			[]geom.Placement{geom.BottomEnd, geom.Top},
		},
		{
			"allowed with alignment",
			AutoPlacementOptions{Alignment: geom.AlignEnd, AllowedPlacements: []geom.Placement{geom.Top, geom.TopStart, geom.TopEnd}},
			[]geom.Placement{geom.TopEnd, geom.TopStart},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoPlacement(tt.opts).(autoPlacement).Placements()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Placements() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAutoPlacementPicksMostSpace(t *testing.T) {
	sc := newScene(geom.Rect{Width: 400, Height: 100}, geom.Rect{X: 300, Y: 40, Width: 20, Height: 20}, geom.Dimensions{Width: 50, Height: 30})
	passes := &passCounter{}

	res := sc.compute(t, geom.Top, passes, AutoPlacement(AutoPlacementOptions{}))
	if res.Placement != geom.Left {
		t.Errorf("Placement = %s, want left", res.Placement)
	}
	// Starting on the first candidate and ending on the last one needs
	// exactly one pass per candidate.
	if passes.n != 4 {
		t.Errorf("passes = %d, want 4", passes.n)
	}
	data, _ := AutoPlacementDataOf(res.MiddlewareData)
	if len(data.Overflows) != 4 {
		t.Errorf("measured %d candidates, want 4", len(data.Overflows))
	}
}

func TestAutoPlacementTerminates(t *testing.T) {
	optsList := []AutoPlacementOptions{
		{},
		{CrossAxis: true},
		{Alignment: geom.AlignStart},
		{Alignment: geom.AlignEnd, NoAutoAlignment: true},
		{AllowedPlacements: []geom.Placement{geom.Top, geom.Bottom}},
	}
	viewports := []geom.Rect{
		{Width: 10, Height: 10},
		{Width: 400, Height: 100},
		{Width: 100, Height: 400},
	}
	for _, opts := range optsList {
		list := AutoPlacement(opts).(autoPlacement).Placements()
		for _, vp := range viewports {
			for _, initial := range geom.AllPlacements {
				sc := newScene(vp, geom.Rect{X: 30, Y: 30, Width: 20, Height: 20}, geom.Dimensions{Width: 50, Height: 30})
				passes := &passCounter{}

				res := sc.compute(t, initial, passes, AutoPlacement(opts))
				if !slices.Contains(list, res.Placement) {
					t.Errorf("%+v: placement %s not in %v", opts, res.Placement, list)
				}
				data, _ := AutoPlacementDataOf(res.MiddlewareData)
				if len(data.Overflows) != len(list) {
					t.Errorf("%+v: measured %d candidates, want %d", opts, len(data.Overflows), len(list))
				}
				// One measuring pass per candidate, plus at most one pass to
				// move onto the first candidate and one for the final choice.
				if passes.n > len(list)+2 {
					t.Errorf("%+v from %s: %d passes for %d candidates", opts, initial, passes.n, len(list))
				}
			}
		}
	}
}
