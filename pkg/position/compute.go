package position

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/observability"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// ComputePosition runs the positioning pipeline for one reference/floating
// pair and returns the final coordinates, placement and middleware data.
//
// The call is a pure function of its inputs and the platform's answers: it
// performs no writes to the host.
func ComputePosition(reference, floating platform.Element, cfg Config) (Result, error) {
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return Result{}, err
	}

	hooks := observability.Position()
	start := time.Now()
	hooks.OnComputeStart(string(cfg.Placement), len(cfg.Middleware))

	p := &pipeline{
		cfg:      cfg,
		elements: platform.Elements{Reference: reference, Floating: floating},
		hooks:    hooks,
		logger:   cfg.Logger,
	}
	res, err := p.run()

	hooks.OnComputeComplete(string(res.Placement), res.Resets, time.Since(start), err)
	if err != nil {
		p.logger.Debug("compute failed", "placement", cfg.Placement, "resets", res.Resets, "err", err)
		return Result{}, err
	}
	p.logger.Debug("compute done", "x", res.X, "y", res.Y, "placement", res.Placement, "resets", res.Resets)
	return res, nil
}

// ComputeCoordsFromPlacement returns the coordinates that put the floating
// rect flush against the reference on the placement's side, aligned
// according to its alignment. No overflow is considered.
func ComputeCoordsFromPlacement(rects geom.ElementRects, placement geom.Placement, rtl bool) geom.Coords {
	ref, fl := rects.Reference, rects.Floating
	sideAxis := placement.SideAxis()
	alignAxis := placement.AlignmentAxis()
	isVertical := sideAxis == geom.AxisY

	commonX := ref.X + ref.Width/2 - fl.Width/2
	commonY := ref.Y + ref.Height/2 - fl.Height/2
	commonAlign := ref.Length(alignAxis)/2 - fl.Length(alignAxis)/2

	var coords geom.Coords
	switch placement.Side() {
	case geom.SideTop:
		coords = geom.Coords{X: commonX, Y: ref.Y - fl.Height}
	case geom.SideBottom:
		coords = geom.Coords{X: commonX, Y: ref.Y + ref.Height}
	case geom.SideRight:
		coords = geom.Coords{X: ref.X + ref.Width, Y: commonY}
	case geom.SideLeft:
		coords = geom.Coords{X: ref.X - fl.Width, Y: commonY}
	default:
		coords = geom.Coords{X: ref.X, Y: ref.Y}
	}

	dir := 1.0
	if rtl && isVertical {
		dir = -1
	}
	switch placement.Alignment() {
	case geom.AlignStart:
		coords = coords.WithAxis(alignAxis, coords.Axis(alignAxis)-commonAlign*dir)
	case geom.AlignEnd:
		coords = coords.WithAxis(alignAxis, coords.Axis(alignAxis)+commonAlign*dir)
	}
	return coords
}

// =============================================================================
// Pipeline
// =============================================================================

type pipeline struct {
	cfg      Config
	elements platform.Elements
	hooks    observability.PositionHooks
	logger   *log.Logger
}

func (p *pipeline) run() (Result, error) {
	cfg := p.cfg
	rtl := platform.IsRTL(cfg.Platform, p.elements.Floating)

	rects, err := p.measure()
	if err != nil {
		return Result{Placement: cfg.Placement, Strategy: cfg.Strategy}, err
	}

	placement := cfg.Placement
	coords := ComputeCoordsFromPlacement(rects, placement, rtl)
	data := MiddlewareData{}
	resets := 0
	pass := 1

	steps := make([]Middleware, 0, len(cfg.Middleware))
	for _, m := range cfg.Middleware {
		if m != nil {
			steps = append(steps, m)
		}
	}

	fail := func(err error) (Result, error) {
		return Result{Placement: placement, Strategy: cfg.Strategy, Resets: resets}, err
	}

	for i := 0; i < len(steps); i++ {
		m := steps[i]
		name := m.Name()

		state := State{
			X:                coords.X,
			Y:                coords.Y,
			InitialPlacement: cfg.Placement,
			Placement:        placement,
			Strategy:         cfg.Strategy,
			MiddlewareData:   data.Clone(),
			Elements:         p.elements,
			Rects:            rects,
			Platform:         cfg.Platform,
		}

		stepStart := time.Now()
		ret, err := m.Compute(state)
		p.hooks.OnMiddleware(name, pass, time.Since(stepStart), err)
		if err != nil {
			return fail(errors.Wrap(errors.ErrCodeMiddleware, err, "middleware %q failed", name))
		}

		if ret.Coords != nil {
			coords = *ret.Coords
		}
		if ret.Data != nil {
			data[name] = ret.Data
		}
		p.logger.Debug("middleware", "name", name, "pass", pass, "x", coords.X, "y", coords.Y)

		if ret.Reset == nil {
			continue
		}

		resets++
		if resets > cfg.MaxResets {
			limitErr := &errors.ResetLimitError{Limit: cfg.MaxResets, Middleware: name}
			return fail(errors.Wrap(errors.ErrCodeResetLimit, limitErr, "pipeline did not converge"))
		}

		reset := *ret.Reset
		if reset.Placement != "" {
			if !reset.Placement.Valid() {
				return fail(errors.New(errors.ErrCodeMiddleware, "middleware %q requested invalid placement %q", name, reset.Placement))
			}
			placement = reset.Placement
		}
		switch {
		case reset.Rects != nil:
			if err := validateRects(*reset.Rects); err != nil {
				return fail(errors.Wrap(errors.ErrCodeMiddleware, err, "middleware %q supplied invalid rects", name))
			}
			rects = *reset.Rects
		case reset.Remeasure:
			if rects, err = p.measure(); err != nil {
				return fail(err)
			}
		}
		if reset.changesLayout() {
			coords = ComputeCoordsFromPlacement(rects, placement, rtl)
		}

		p.hooks.OnReset(name, string(placement), reset.Rects != nil || reset.Remeasure)
		p.logger.Debug("reset", "by", name, "placement", placement, "rects", reset.Rects != nil || reset.Remeasure)

		pass++
		i = -1
	}

	return Result{
		X:              coords.X,
		Y:              coords.Y,
		Placement:      placement,
		Strategy:       cfg.Strategy,
		MiddlewareData: data,
		Resets:         resets,
	}, nil
}

func (p *pipeline) measure() (geom.ElementRects, error) {
	rects, err := p.cfg.Platform.GetElementRects(platform.ElementRectsArgs{
		Reference: p.elements.Reference,
		Floating:  p.elements.Floating,
		Strategy:  p.cfg.Strategy,
	})
	if err != nil {
		return geom.ElementRects{}, errors.Wrap(errors.ErrCodePlatform, err, "measure element rects")
	}
	if err := validateRects(rects); err != nil {
		return geom.ElementRects{}, err
	}
	return rects, nil
}

func validateRects(rects geom.ElementRects) error {
	r, f := rects.Reference, rects.Floating
	if err := errors.ValidateRect("reference", r.X, r.Y, r.Width, r.Height); err != nil {
		return err
	}
	return errors.ValidateRect("floating", f.X, f.Y, f.Width, f.Height)
}
