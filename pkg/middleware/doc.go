// Package middleware provides the built-in positioning steps for
// [position.ComputePosition].
//
// Each constructor returns a [position.Middleware] that records its results
// in the result's MiddlewareData under a fixed name:
//
//	Name           Constructor            Record
//	offset         Offset, OffsetAxes     OffsetData
//	shift          Shift (+ LimitShift)   ShiftData
//	flip           Flip                   FlipData
//	size           Size                   SizeData
//	arrow          Arrow                  ArrowData
//	autoPlacement  AutoPlacement          AutoPlacementData
//	hide           Hide                   HideData
//	inline         Inline                 InlineData
//
// Records are recovered with the typed accessors ([OffsetDataOf],
// [ShiftDataOf], ...). Unknown records written by custom middleware are
// passed through untouched.
//
// # Ordering
//
// Order matters. A typical tooltip chain is:
//
//	[]position.Middleware{
//	    middleware.Inline(middleware.InlineOptions{}),
//	    middleware.Offset(8),
//	    middleware.Flip(middleware.FlipOptions{}),
//	    middleware.Shift(middleware.ShiftOptions{Limiter: middleware.LimitShift(middleware.LimitShiftOptions{})}),
//	    middleware.Size(middleware.SizeOptions{Apply: resize}),
//	    middleware.Arrow(middleware.ArrowOptions{Element: arrowEl}),
//	    middleware.Hide(middleware.HideOptions{}),
//	}
//
// Offset goes first so later steps see the gap. Flip and AutoPlacement are
// alternatives; use one of them. Arrow goes after Shift so it points at the
// reference from the final position. Hide only annotates and goes last.
//
// # Placement search
//
// Flip and AutoPlacement drive their search through resets: each pass
// measures the current placement, appends it to the history stored in their
// record, and resets to the next candidate. The history survives resets, so
// the search terminates after every candidate was measured once plus at most
// one pass for the final choice.
package middleware

import (
	"github.com/matzehuels/floatpos/pkg/geom"
)

// Middleware names, used as MiddlewareData keys.
const (
	NameOffset        = "offset"
	NameShift         = "shift"
	NameFlip          = "flip"
	NameSize          = "size"
	NameArrow         = "arrow"
	NameAutoPlacement = "autoPlacement"
	NameHide          = "hide"
	NameInline        = "inline"
)

// PlacementOverflow is one measured candidate of a placement search.
type PlacementOverflow struct {
	Placement geom.Placement `json:"placement"`

	// Overflows are the checked sides' overflow values; the main side first.
	Overflows []float64 `json:"overflows"`
}

func (o PlacementOverflow) at(i int) float64 {
	if i < len(o.Overflows) {
		return o.Overflows[i]
	}
	return 0
}

// positiveSum adds up the overflowing (positive) values.
func (o PlacementOverflow) positiveSum() float64 {
	var sum float64
	for _, v := range o.Overflows {
		if v > 0 {
			sum += v
		}
	}
	return sum
}

func fits(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return false
		}
	}
	return true
}

func ptr[T any](v T) *T { return &v }
