package middleware

import (
	"testing"

	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/platform/static"
	"github.com/matzehuels/floatpos/pkg/position"
)

var bigViewport = geom.Rect{X: -1000, Y: -1000, Width: 3000, Height: 3000}

type scene struct {
	p   *static.Platform
	ref *static.Box
	fl  *static.Box
}

func newScene(viewport, ref geom.Rect, fl geom.Dimensions) scene {
	p := static.New(viewport)
	return scene{
		p:   p,
		ref: p.Add(&static.Box{Name: "ref", Rect: ref}),
		fl:  p.Add(&static.Box{Name: "fl", Rect: geom.Rect{Width: fl.Width, Height: fl.Height}}),
	}
}

// state builds the snapshot a middleware would see as the first step of the
// first pass.
func (sc scene) state(t *testing.T, placement geom.Placement, data position.MiddlewareData) position.State {
	t.Helper()
	rects, err := sc.p.GetElementRects(platform.ElementRectsArgs{Reference: sc.ref, Floating: sc.fl})
	if err != nil {
		t.Fatalf("GetElementRects() error = %v", err)
	}
	if data == nil {
		data = position.MiddlewareData{}
	}
	c := position.ComputeCoordsFromPlacement(rects, placement, sc.fl.RTL)
	return position.State{
		X:                c.X,
		Y:                c.Y,
		InitialPlacement: placement,
		Placement:        placement,
		Strategy:         geom.StrategyAbsolute,
		MiddlewareData:   data,
		Elements:         platform.Elements{Reference: sc.ref, Floating: sc.fl},
		Rects:            rects,
		Platform:         sc.p,
	}
}

func (sc scene) compute(t *testing.T, placement geom.Placement, mws ...position.Middleware) position.Result {
	t.Helper()
	res, err := position.ComputePosition(sc.ref, sc.fl, position.Config{
		Placement:  placement,
		Platform:   sc.p,
		Middleware: mws,
	})
	if err != nil {
		t.Fatalf("ComputePosition() error = %v", err)
	}
	return res
}

// passCounter counts pipeline passes when placed first in the chain.
type passCounter struct {
	n int
}

func (*passCounter) Name() string { return "passes" }

func (c *passCounter) Compute(position.State) (position.Return, error) {
	c.n++
	return position.Return{}, nil
}
