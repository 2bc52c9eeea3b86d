package middleware

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

func TestFlipTopToBottom(t *testing.T) {
	sc := newScene(geom.Rect{Width: 100, Height: 100}, geom.Rect{X: 25, Y: 0, Width: 50, Height: 20}, geom.Dimensions{Width: 50, Height: 50})
	passes := &passCounter{}

	res := sc.compute(t, geom.Top, passes, Flip(FlipOptions{}))
	if res.Placement != geom.Bottom {
		t.Errorf("Placement = %s, want bottom", res.Placement)
	}
	if res.Y != 20 {
		t.Errorf("Y = %v, want 20", res.Y)
	}
	if passes.n > 2 {
		t.Errorf("passes = %d, want at most 2", passes.n)
	}

	data, ok := FlipDataOf(res.MiddlewareData)
	if !ok {
		t.Fatal("no flip data")
	}
	if data.Index != 1 || len(data.Overflows) != 1 || data.Overflows[0].Placement != geom.Top {
		t.Errorf("FlipData = %+v", data)
	}
	if data.Overflows[0].Overflows[0] != 50 {
		t.Errorf("top overflow = %v, want 50", data.Overflows[0].Overflows[0])
	}
}

func TestFlipCandidates(t *testing.T) {
	tests := []struct {
		name    string
		opts    FlipOptions
		initial geom.Placement
		want    []geom.Placement
	}{
		{"base", FlipOptions{}, geom.Top, []geom.Placement{geom.Top, geom.Bottom}},
		{"aligned", FlipOptions{}, geom.TopStart, []geom.Placement{geom.TopStart, geom.TopEnd, geom.BottomStart, geom.BottomEnd}},
		{"aligned no flip alignment", FlipOptions{NoFlipAlignment: true}, geom.TopStart, []geom.Placement{geom.TopStart, geom.BottomStart}},
		{"direction start", FlipOptions{FallbackAxisSideDirection: geom.DirectionStart}, geom.Top, []geom.Placement{geom.Top, geom.Bottom, geom.Left, geom.Right}},
		{"explicit", FlipOptions{FallbackPlacements: []geom.Placement{geom.Right}}, geom.Top, []geom.Placement{geom.Top, geom.Right}},
		{"explicit empty", FlipOptions{FallbackPlacements: []geom.Placement{}}, geom.Top, []geom.Placement{geom.Top}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Flip(tt.opts).(flip)
			got := m.candidates(tt.initial, false)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("candidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlipTerminates(t *testing.T) {
	// Nothing fits in a 10x10 viewport, so every candidate gets measured.
	for _, initial := range geom.AllPlacements {
		for _, opts := range []FlipOptions{
			{},
			{FallbackStrategy: FallbackInitialPlacement},
			{FallbackAxisSideDirection: geom.DirectionEnd},
			{CrossAxis: CrossAxisAlignment, FallbackAxisSideDirection: geom.DirectionStart},
		} {
			sc := newScene(geom.Rect{Width: 10, Height: 10}, geom.Rect{X: 2, Y: 2, Width: 6, Height: 6}, geom.Dimensions{Width: 50, Height: 50})
			candidates := Flip(opts).(flip).candidates(initial, false)
			passes := &passCounter{}

			res := sc.compute(t, initial, passes, Flip(opts))
			if passes.n > len(candidates)+1 {
				t.Errorf("%s %+v: %d passes for %d candidates", initial, opts, passes.n, len(candidates))
			}
			if !slices.Contains(candidates, res.Placement) {
				t.Errorf("%s %+v: placement %s not a candidate", initial, opts, res.Placement)
			}
		}
	}
}

func TestFlipFallbackStrategies(t *testing.T) {
	// Top overflows by 30, bottom by 10.
	viewport := geom.Rect{Width: 100, Height: 60}
	ref := geom.Rect{X: 25, Y: 10, Width: 50, Height: 20}
	fl := geom.Dimensions{Width: 50, Height: 40}

	sc := newScene(viewport, ref, fl)
	if res := sc.compute(t, geom.Top, Flip(FlipOptions{})); res.Placement != geom.Bottom {
		t.Errorf("bestFit placement = %s, want bottom", res.Placement)
	}
	if res := sc.compute(t, geom.Top, Flip(FlipOptions{FallbackStrategy: FallbackInitialPlacement})); res.Placement != geom.Top {
		t.Errorf("initialPlacement placement = %s, want top", res.Placement)
	}
}

func TestFlipAxisSideDirection(t *testing.T) {
	sc := newScene(geom.Rect{Width: 300, Height: 60}, geom.Rect{X: 100, Y: 20, Width: 20, Height: 20}, geom.Dimensions{Width: 50, Height: 50})

	res := sc.compute(t, geom.Top, Flip(FlipOptions{FallbackAxisSideDirection: geom.DirectionStart}))
	if res.Placement != geom.Left {
		t.Errorf("Placement = %s, want left", res.Placement)
	}
}

func TestFlipExplicitFallback(t *testing.T) {
	sc := newScene(geom.Rect{Width: 300, Height: 60}, geom.Rect{X: 100, Y: 20, Width: 20, Height: 20}, geom.Dimensions{Width: 50, Height: 50})

	res := sc.compute(t, geom.Top, Flip(FlipOptions{FallbackPlacements: []geom.Placement{geom.Right}}))
	if res.Placement != geom.Right {
		t.Errorf("Placement = %s, want right", res.Placement)
	}
}

func TestFlipInvalidFallback(t *testing.T) {
	sc := newScene(bigViewport, geom.Rect{Width: 10, Height: 10}, geom.Dimensions{Width: 5, Height: 5})
	_, err := Flip(FlipOptions{FallbackPlacements: []geom.Placement{"upward"}}).Compute(sc.state(t, geom.Top, nil))
	if !errors.Is(err, errors.ErrCodeInvalidPlacement) {
		t.Errorf("error = %v, want INVALID_PLACEMENT", err)
	}
}

func TestFlipSkipsAfterArrowAlignment(t *testing.T) {
	sc := newScene(geom.Rect{Width: 100, Height: 100}, geom.Rect{X: 25, Y: 0, Width: 50, Height: 20}, geom.Dimensions{Width: 50, Height: 50})
	data := position.MiddlewareData{NameArrow: ArrowData{AlignmentOffset: ptr(2.0)}}

	ret, err := Flip(FlipOptions{}).Compute(sc.state(t, geom.Top, data))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if ret.Reset != nil || ret.Data != nil {
		t.Errorf("Compute() = %+v, want no-op", ret)
	}
}
