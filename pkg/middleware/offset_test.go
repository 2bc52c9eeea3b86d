package middleware

import (
	"testing"

	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

func TestOffsetBottomScenario(t *testing.T) {
	sc := newScene(bigViewport, geom.Rect{Width: 100, Height: 100}, geom.Dimensions{Width: 50, Height: 50})

	base := sc.compute(t, geom.Bottom)
	res := sc.compute(t, geom.Bottom, Offset(10))

	if res.Y-base.Y != 10 {
		t.Errorf("Y delta = %v, want 10", res.Y-base.Y)
	}
	if res.X != base.X {
		t.Errorf("X = %v, want unchanged %v", res.X, base.X)
	}
	data, ok := OffsetDataOf(res.MiddlewareData)
	if !ok {
		t.Fatal("no offset data")
	}
	if data != (OffsetData{X: 0, Y: 10, Placement: geom.Bottom}) {
		t.Errorf("OffsetData = %+v", data)
	}
}

func TestOffsetDelta(t *testing.T) {
	three := 3.0
	tests := []struct {
		name      string
		placement geom.Placement
		rtl       bool
		opts      OffsetOptions
		want      geom.Coords
	}{
		{"top", geom.Top, false, OffsetOptions{MainAxis: 10}, geom.Coords{Y: -10}},
		{"bottom", geom.Bottom, false, OffsetOptions{MainAxis: 10}, geom.Coords{Y: 10}},
		{"left", geom.Left, false, OffsetOptions{MainAxis: 10}, geom.Coords{X: -10}},
		{"right", geom.Right, false, OffsetOptions{MainAxis: 10}, geom.Coords{X: 10}},
		{"cross axis", geom.Top, false, OffsetOptions{MainAxis: 10, CrossAxis: 5}, geom.Coords{X: 5, Y: -10}},
		{"cross axis rtl", geom.Top, true, OffsetOptions{MainAxis: 10, CrossAxis: 5}, geom.Coords{X: -5, Y: -10}},
		{"cross axis horizontal rtl", geom.Right, true, OffsetOptions{CrossAxis: 5}, geom.Coords{Y: 5}},
		{"alignment axis start", geom.TopStart, false, OffsetOptions{CrossAxis: 5, AlignmentAxis: &three}, geom.Coords{X: 3}},
		{"alignment axis end", geom.TopEnd, false, OffsetOptions{CrossAxis: 5, AlignmentAxis: &three}, geom.Coords{X: -3}},
		{"alignment axis ignored for base", geom.Top, false, OffsetOptions{CrossAxis: 5, AlignmentAxis: &three}, geom.Coords{X: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScene(bigViewport, geom.Rect{Width: 10, Height: 10}, geom.Dimensions{Width: 5, Height: 5})
			sc.fl.RTL = tt.rtl
			if got := offsetDelta(sc.state(t, tt.placement, nil), tt.opts); got != tt.want {
				t.Errorf("offsetDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffsetFuncSeesState(t *testing.T) {
	sc := newScene(bigViewport, geom.Rect{Width: 100, Height: 100}, geom.Dimensions{Width: 50, Height: 40})
	res := sc.compute(t, geom.Top, OffsetFunc(func(s position.State) OffsetOptions {
		return OffsetOptions{MainAxis: s.Rects.Floating.Height / 4}
	}))
	if res.Y != -50 {
		t.Errorf("Y = %v, want -50", res.Y)
	}
}

func TestOffsetSkipsAfterArrowAlignment(t *testing.T) {
	sc := newScene(bigViewport, geom.Rect{Width: 100, Height: 100}, geom.Dimensions{Width: 50, Height: 50})
	data := position.MiddlewareData{
		NameOffset: OffsetData{Y: 10, Placement: geom.Bottom},
		NameArrow:  ArrowData{AlignmentOffset: ptr(-4.0)},
	}

	ret, err := Offset(10).Compute(sc.state(t, geom.Bottom, data))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if ret.Coords != nil || ret.Data != nil {
		t.Errorf("Compute() = %+v, want no-op", ret)
	}

	// A different placement means the offset has not been applied yet.
	ret, err = Offset(10).Compute(sc.state(t, geom.Top, data))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if ret.Coords == nil {
		t.Error("Compute() skipped for a changed placement")
	}
}
