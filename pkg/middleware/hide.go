package middleware

import (
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
	"github.com/matzehuels/floatpos/pkg/position"
)

// HideStrategy selects what Hide checks.
type HideStrategy string

const (
	// HideReferenceHidden reports when the reference is clipped away.
	HideReferenceHidden HideStrategy = "referenceHidden"

	// HideEscaped reports when the floating element left the reference's
	// clipping context.
	HideEscaped HideStrategy = "escaped"
)

// HideOptions configures Hide.
type HideOptions struct {
	// Strategy defaults to HideReferenceHidden.
	Strategy HideStrategy

	Overflow position.OverflowOptions
}

// HideData holds the results of every Hide strategy that ran. Offsets are
// nil for strategies that did not run.
type HideData struct {
	ReferenceHidden        bool             `json:"reference_hidden"`
	ReferenceHiddenOffsets *geom.SideObject `json:"reference_hidden_offsets,omitempty"`
	Escaped                bool             `json:"escaped"`
	EscapedOffsets         *geom.SideObject `json:"escaped_offsets,omitempty"`
}

// HideDataOf returns the hide record, if any.
func HideDataOf(d position.MiddlewareData) (HideData, bool) {
	return position.DataOf[HideData](d, NameHide)
}

type hide struct {
	opts HideOptions
}

// Hide annotates whether the floating element should be visually hidden.
// It never moves the element. Run it twice to check both strategies; the
// second run keeps the first one's result.
func Hide(opts HideOptions) position.Middleware {
	if opts.Strategy == "" {
		opts.Strategy = HideReferenceHidden
	}
	return hide{opts: opts}
}

func (hide) Name() string { return NameHide }

func (m hide) Compute(s position.State) (position.Return, error) {
	data, _ := HideDataOf(s.MiddlewareData)
	overflowOpts := m.opts.Overflow

	switch m.opts.Strategy {
	case HideEscaped:
		overflowOpts.AltBoundary = true
		overflow, err := position.DetectOverflow(s, overflowOpts)
		if err != nil {
			return position.Return{}, err
		}
		offsets := sideOffsets(overflow, s.Rects.Floating)
		data.Escaped = offsets.AnyAtLeastZero()
		data.EscapedOffsets = &offsets
	default:
		overflowOpts.ElementContext = platform.ContextReference
		overflow, err := position.DetectOverflow(s, overflowOpts)
		if err != nil {
			return position.Return{}, err
		}
		offsets := sideOffsets(overflow, s.Rects.Reference)
		data.ReferenceHidden = offsets.AnyAtLeastZero()
		data.ReferenceHiddenOffsets = &offsets
	}
	return position.Return{Data: data}, nil
}

// sideOffsets subtracts the element size: a side at or above zero is
// clipped by at least the whole element.
func sideOffsets(overflow geom.SideObject, r geom.Rect) geom.SideObject {
	return geom.SideObject{
		Top:    overflow.Top - r.Height,
		Right:  overflow.Right - r.Width,
		Bottom: overflow.Bottom - r.Height,
		Left:   overflow.Left - r.Width,
	}
}
