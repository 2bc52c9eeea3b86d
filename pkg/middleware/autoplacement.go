package middleware

import (
	"cmp"
	"slices"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

// AutoPlacementOptions configures AutoPlacement.
type AutoPlacementOptions struct {
	// CrossAxis ranks aligned candidates by main plus first alignment side
	// overflow instead of main side overflow alone.
	CrossAxis bool

	// Alignment restricts (and orders) candidates by alignment. Empty means
	// base placements only when AllowedPlacements is empty.
	Alignment geom.Alignment

	// AllowedPlacements defaults to every placement.
	AllowedPlacements []geom.Placement

	// NoAutoAlignment drops candidates with the other alignment when
	// Alignment is set (default false = keep them after the preferred ones).
	NoAutoAlignment bool

	Overflow position.OverflowOptions
}

// AutoPlacementData is the search history of AutoPlacement.
type AutoPlacementData struct {
	Index     int                 `json:"index"`
	Overflows []PlacementOverflow `json:"overflows"`
}

// AutoPlacementDataOf returns the autoPlacement record, if any.
func AutoPlacementDataOf(d position.MiddlewareData) (AutoPlacementData, bool) {
	return position.DataOf[AutoPlacementData](d, NameAutoPlacement)
}

type autoPlacement struct {
	opts AutoPlacementOptions
}

// AutoPlacement measures every candidate placement and picks the one with
// the most space, ignoring the requested placement.
func AutoPlacement(opts AutoPlacementOptions) position.Middleware {
	return autoPlacement{opts: opts}
}

func (autoPlacement) Name() string { return NameAutoPlacement }

// Placements returns the candidates in the order they are measured.
func (m autoPlacement) Placements() []geom.Placement {
	allowed := m.opts.AllowedPlacements
	if len(allowed) == 0 {
		return placementList(m.opts.Alignment, !m.opts.NoAutoAlignment, geom.AllPlacements)
	}
	if m.opts.Alignment != geom.AlignNone {
		return placementList(m.opts.Alignment, !m.opts.NoAutoAlignment, allowed)
	}
	return allowed
}

func placementList(alignment geom.Alignment, autoAlignment bool, allowed []geom.Placement) []geom.Placement {
	if alignment == geom.AlignNone {
		var bases []geom.Placement
		for _, p := range allowed {
			if p.IsBase() {
				bases = append(bases, p)
			}
		}
		return bases
	}

	var preferred, rest []geom.Placement
	for _, p := range allowed {
		if p.Alignment() == alignment {
			preferred = append(preferred, p)
		} else if autoAlignment && !p.IsBase() {
			rest = append(rest, p)
		}
	}
	return append(preferred, rest...)
}

func (m autoPlacement) Compute(s position.State) (position.Return, error) {
	list := m.Placements()
	for _, p := range list {
		if !p.Valid() {
			return position.Return{}, errors.New(errors.ErrCodeInvalidPlacement, "invalid allowed placement: %q", p)
		}
	}

	prev, _ := AutoPlacementDataOf(s.MiddlewareData)
	if prev.Index >= len(list) {
		return position.Return{}, nil
	}
	current := list[prev.Index]
	if s.Placement != current {
		return position.Return{Reset: &position.Reset{Placement: list[0]}}, nil
	}

	overflow, err := position.DetectOverflow(s, m.opts.Overflow)
	if err != nil {
		return position.Return{}, err
	}
	sides := geom.AlignmentSides(current, s.Rects, s.IsRTL())
	measured := PlacementOverflow{
		Placement: current,
		Overflows: []float64{overflow.Get(current.Side()), overflow.Get(sides[0]), overflow.Get(sides[1])},
	}
	history := append(slices.Clone(prev.Overflows), measured)
	data := AutoPlacementData{Index: prev.Index + 1, Overflows: history}

	if prev.Index+1 < len(list) {
		return position.Return{Data: data, Reset: &position.Reset{Placement: list[prev.Index+1]}}, nil
	}

	ret := position.Return{Data: data}
	if chosen := m.choose(history); chosen != s.Placement {
		ret.Reset = &position.Reset{Placement: chosen}
	}
	return ret, nil
}

// choose prefers candidates that fit on every checked side, ranked by space.
func (m autoPlacement) choose(history []PlacementOverflow) geom.Placement {
	type ranked struct {
		o     PlacementOverflow
		score float64
	}
	all := make([]ranked, len(history))
	for i, h := range history {
		score := h.at(0)
		if !h.Placement.IsBase() && m.opts.CrossAxis {
			score = h.at(0) + h.at(1)
		}
		all[i] = ranked{o: h, score: score}
	}
	slices.SortStableFunc(all, func(a, b ranked) int { return cmp.Compare(a.score, b.score) })

	for _, r := range all {
		checked := 3
		if !r.o.Placement.IsBase() {
			checked = 2
		}
		if fits(r.o.Overflows[:min(checked, len(r.o.Overflows))]) {
			return r.o.Placement
		}
	}
	return all[0].o.Placement
}
