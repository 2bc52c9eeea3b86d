package middleware

import (
	"cmp"
	"slices"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/position"
)

// CrossAxisMode selects whether Flip also checks the alignment sides.
type CrossAxisMode string

const (
	// CrossAxisAll checks the alignment sides for every candidate.
	CrossAxisAll CrossAxisMode = "all"

	// CrossAxisAlignment checks them, but moving to a candidate on the other
	// axis only happens once every candidate on the initial axis overflows
	// its main side.
	CrossAxisAlignment CrossAxisMode = "alignment"

	// CrossAxisNone checks only the main side.
	CrossAxisNone CrossAxisMode = "none"
)

// FallbackStrategy chooses the placement when no candidate fits.
type FallbackStrategy string

const (
	// FallbackBestFit picks the candidate with the least total overflow.
	FallbackBestFit FallbackStrategy = "bestFit"

	// FallbackInitialPlacement returns to the initial placement.
	FallbackInitialPlacement FallbackStrategy = "initialPlacement"
)

// FlipOptions configures Flip.
type FlipOptions struct {
	// SkipMainAxis ignores main side overflow (default false = check).
	SkipMainAxis bool

	// CrossAxis defaults to CrossAxisAll.
	CrossAxis CrossAxisMode

	// FallbackPlacements replaces the derived candidate list.
	FallbackPlacements []geom.Placement

	// FallbackStrategy defaults to FallbackBestFit.
	FallbackStrategy FallbackStrategy

	// FallbackAxisSideDirection appends placements on the perpendicular
	// axis to the derived candidates. Default: none.
	FallbackAxisSideDirection geom.AxisSideDirection

	// NoFlipAlignment keeps the alignment when deriving candidates (default
	// false = also try the opposite alignment).
	NoFlipAlignment bool

	Overflow position.OverflowOptions
}

// FlipData is the search history of Flip.
type FlipData struct {
	// Index is the position of the current candidate in the list that
	// starts with the initial placement.
	Index int `json:"index"`

	Overflows []PlacementOverflow `json:"overflows"`
}

// FlipDataOf returns the flip record, if any.
func FlipDataOf(d position.MiddlewareData) (FlipData, bool) {
	return position.DataOf[FlipData](d, NameFlip)
}

type flip struct {
	opts FlipOptions
}

// Flip changes the placement to the opposite side (or another fallback) when
// the floating element overflows at the current one.
func Flip(opts FlipOptions) position.Middleware {
	if opts.CrossAxis == "" {
		opts.CrossAxis = CrossAxisAll
	}
	if opts.FallbackStrategy == "" {
		opts.FallbackStrategy = FallbackBestFit
	}
	if opts.FallbackAxisSideDirection == "" {
		opts.FallbackAxisSideDirection = geom.DirectionNone
	}
	return flip{opts: opts}
}

func (flip) Name() string { return NameFlip }

// candidates returns the placements Flip tries, the initial one first.
func (m flip) candidates(initial geom.Placement, rtl bool) []geom.Placement {
	fallbacks := slices.Clone(m.opts.FallbackPlacements)
	if fallbacks == nil {
		if initial.IsBase() || m.opts.NoFlipAlignment {
			fallbacks = []geom.Placement{initial.Opposite()}
		} else {
			fallbacks = geom.ExpandedPlacements(initial)
		}
		if m.opts.FallbackAxisSideDirection != geom.DirectionNone {
			fallbacks = append(fallbacks, geom.OppositeAxisPlacements(initial, !m.opts.NoFlipAlignment, m.opts.FallbackAxisSideDirection, rtl)...)
		}
	}
	return append([]geom.Placement{initial}, fallbacks...)
}

func (m flip) Compute(s position.State) (position.Return, error) {
	if arrow, ok := ArrowDataOf(s.MiddlewareData); ok && arrow.AlignmentOffset != nil && *arrow.AlignmentOffset != 0 {
		return position.Return{}, nil
	}
	for _, p := range m.opts.FallbackPlacements {
		if !p.Valid() {
			return position.Return{}, errors.New(errors.ErrCodeInvalidPlacement, "invalid fallback placement: %q", p)
		}
	}

	rtl := s.IsRTL()
	initialAxis := s.InitialPlacement.SideAxis()
	placements := m.candidates(s.InitialPlacement, rtl)

	overflow, err := position.DetectOverflow(s, m.opts.Overflow)
	if err != nil {
		return position.Return{}, err
	}

	var overflows []float64
	if !m.opts.SkipMainAxis {
		overflows = append(overflows, overflow.Get(s.Placement.Side()))
	}
	if m.opts.CrossAxis != CrossAxisNone {
		sides := geom.AlignmentSides(s.Placement, s.Rects, rtl)
		overflows = append(overflows, overflow.Get(sides[0]), overflow.Get(sides[1]))
	}

	prev, _ := FlipDataOf(s.MiddlewareData)
	history := append(slices.Clone(prev.Overflows), PlacementOverflow{Placement: s.Placement, Overflows: overflows})

	if fits(overflows) {
		return position.Return{}, nil
	}

	next := prev.Index + 1
	if next < len(placements) {
		nextPlacement := placements[next]
		ignoreCross := m.opts.CrossAxis == CrossAxisAlignment && initialAxis != nextPlacement.SideAxis()
		initialAxisExhausted := true
		for _, h := range history {
			if h.Placement.SideAxis() == initialAxis && h.at(0) <= 0 {
				initialAxisExhausted = false
				break
			}
		}
		if !ignoreCross || initialAxisExhausted {
			return position.Return{
				Data:  FlipData{Index: next, Overflows: history},
				Reset: &position.Reset{Placement: nextPlacement},
			}, nil
		}
	}

	resolved := m.resolve(history, s.InitialPlacement)
	if resolved != "" && resolved != s.Placement {
		return position.Return{Reset: &position.Reset{Placement: resolved}}, nil
	}
	return position.Return{}, nil
}

// resolve picks the final placement once the candidate list is exhausted.
func (m flip) resolve(history []PlacementOverflow, initial geom.Placement) geom.Placement {
	mainFits := make([]PlacementOverflow, 0, len(history))
	for _, h := range history {
		if h.at(0) <= 0 {
			mainFits = append(mainFits, h)
		}
	}
	if len(mainFits) > 0 {
		slices.SortStableFunc(mainFits, func(a, b PlacementOverflow) int {
			return cmp.Compare(a.at(1), b.at(1))
		})
		return mainFits[0].Placement
	}

	switch m.opts.FallbackStrategy {
	case FallbackInitialPlacement:
		return initial
	default:
		initialAxis := initial.SideAxis()
		candidates := make([]PlacementOverflow, 0, len(history))
		for _, h := range history {
			if m.opts.FallbackAxisSideDirection != geom.DirectionNone {
				axis := h.Placement.SideAxis()
				if axis != initialAxis && axis != geom.AxisY {
					continue
				}
			}
			candidates = append(candidates, h)
		}
		if len(candidates) == 0 {
			return ""
		}
		slices.SortStableFunc(candidates, func(a, b PlacementOverflow) int {
			return cmp.Compare(a.positiveSum(), b.positiveSum())
		})
		return candidates[0].Placement
	}
}
