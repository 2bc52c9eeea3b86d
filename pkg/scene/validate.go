package scene

import (
	"math"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/middleware"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// knownMiddleware lists the names a [[middleware]] entry may use.
var knownMiddleware = map[string]bool{
	middleware.NameOffset:        true,
	middleware.NameShift:         true,
	middleware.NameFlip:          true,
	middleware.NameSize:          true,
	middleware.NameArrow:         true,
	middleware.NameAutoPlacement: true,
	middleware.NameHide:          true,
	middleware.NameInline:        true,
}

// Validate checks the scene for values the engine would reject or that
// cannot describe a real host.
//
// Validation rules:
//   - placement and strategy, when set, must be known
//   - the viewport must have a positive size
//   - every rect must have non-negative, non-NaN sizes
//   - middleware names and enumerated options must be known
//   - the arrow middleware needs an [arrow] element
func (s *Scene) Validate() error {
	if s.Placement != "" && !geom.Placement(s.Placement).Valid() {
		return invalid("unknown placement %q", s.Placement)
	}
	if s.Strategy != "" && !geom.Strategy(s.Strategy).Valid() {
		return invalid("unknown strategy %q", s.Strategy)
	}
	if s.MaxResets < 0 {
		return invalid("max_resets cannot be negative")
	}

	if err := checkRect("viewport", s.Viewport); err != nil {
		return err
	}
	if s.Viewport.Width == 0 || s.Viewport.Height == 0 {
		return invalid("viewport must have a positive size")
	}
	if s.Document != nil {
		if err := checkRect("document", *s.Document); err != nil {
			return err
		}
	}
	if err := s.Reference.validate("reference"); err != nil {
		return err
	}
	if err := s.Floating.validate("floating"); err != nil {
		return err
	}
	if s.Arrow != nil {
		if err := s.Arrow.validate("arrow"); err != nil {
			return err
		}
	}
	if op := s.OffsetParent; op != nil {
		if err := checkRect("offset_parent", geom.Rect{X: op.X, Y: op.Y, Width: op.Width, Height: op.Height}); err != nil {
			return err
		}
		if op.Scale != nil && (op.Scale.X < 0 || op.Scale.Y < 0) {
			return invalid("offset_parent scale cannot be negative")
		}
	}

	for i, m := range s.Middleware {
		if err := m.validate(s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "middleware[%d] (%s)", i, m.Name)
		}
	}
	return nil
}

func (e Element) validate(label string) error {
	if err := checkRect(label, e.Rect()); err != nil {
		return err
	}
	for i, l := range e.Lines {
		if err := checkRect(label+" line", l); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "line %d", i)
		}
	}
	if e.Clip != nil {
		return checkRect(label+" clip", *e.Clip)
	}
	return nil
}

func (m MiddlewareSpec) validate(s *Scene) error {
	if !knownMiddleware[m.Name] {
		return invalid("unknown middleware %q", m.Name)
	}

	switch m.RootBoundary {
	case "", string(platform.RootViewport), string(platform.RootDocument):
	default:
		return invalid("unknown root_boundary %q", m.RootBoundary)
	}
	switch m.ElementContext {
	case "", string(platform.ContextFloating), string(platform.ContextReference):
	default:
		return invalid("unknown element_context %q", m.ElementContext)
	}
	if m.Boundary != nil {
		if err := checkRect("boundary", *m.Boundary); err != nil {
			return err
		}
	}
	for _, n := range m.numbers() {
		if math.IsNaN(n.value) {
			return invalid("%s is NaN", n.key)
		}
	}

	switch m.Name {
	case middleware.NameFlip:
		switch middleware.CrossAxisMode(m.CrossAxisMode) {
		case "", middleware.CrossAxisAll, middleware.CrossAxisAlignment, middleware.CrossAxisNone:
		default:
			return invalid("unknown cross_axis_mode %q", m.CrossAxisMode)
		}
		switch middleware.FallbackStrategy(m.FallbackStrategy) {
		case "", middleware.FallbackBestFit, middleware.FallbackInitialPlacement:
		default:
			return invalid("unknown fallback_strategy %q", m.FallbackStrategy)
		}
		switch geom.AxisSideDirection(m.FallbackAxisSideDirection) {
		case "", geom.DirectionNone, geom.DirectionStart, geom.DirectionEnd:
		default:
			return invalid("unknown fallback_axis_side_direction %q", m.FallbackAxisSideDirection)
		}
		if _, err := parsePlacements(m.FallbackPlacements); err != nil {
			return err
		}
	case middleware.NameAutoPlacement:
		switch geom.Alignment(m.Alignment) {
		case geom.AlignNone, geom.AlignStart, geom.AlignEnd:
		default:
			return invalid("unknown alignment %q", m.Alignment)
		}
		if _, err := parsePlacements(m.AllowedPlacements); err != nil {
			return err
		}
	case middleware.NameHide:
		switch middleware.HideStrategy(m.Strategy) {
		case "", middleware.HideReferenceHidden, middleware.HideEscaped:
		default:
			return invalid("unknown hide strategy %q", m.Strategy)
		}
	case middleware.NameArrow:
		if s.Arrow == nil {
			return invalid("arrow middleware needs an [arrow] element")
		}
	}
	return nil
}

func parsePlacements(names []string) ([]geom.Placement, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]geom.Placement, len(names))
	for i, n := range names {
		p, err := geom.ParsePlacement(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPlacement, err, "placement %d", i)
		}
		out[i] = p
	}
	return out, nil
}

func checkRect(label string, r geom.Rect) error {
	if err := errors.ValidateRect(label, r.X, r.Y, r.Width, r.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", label)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidScene, format, args...)
}

type namedNumber struct {
	key   string
	value float64
}

// numbers lists the numeric options that are set, keyed as in scene files.
func (m MiddlewareSpec) numbers() []namedNumber {
	nums := []namedNumber{
		{"main_axis", m.MainAxis},
		{"cross_axis", m.CrossAxis},
		{"limit_main_axis", m.LimitMainAxis},
		{"limit_cross_axis", m.LimitCrossAxis},
	}
	if m.AlignmentAxis != nil {
		nums = append(nums, namedNumber{"alignment_axis", *m.AlignmentAxis})
	}
	if m.Padding != nil {
		nums = append(nums, namedNumber{"padding", *m.Padding})
	}
	if p := m.PaddingSides; p != nil {
		nums = append(nums,
			namedNumber{"padding_sides.top", p.Top},
			namedNumber{"padding_sides.right", p.Right},
			namedNumber{"padding_sides.bottom", p.Bottom},
			namedNumber{"padding_sides.left", p.Left},
		)
	}
	if p := m.Pointer; p != nil {
		nums = append(nums, namedNumber{"pointer.x", p.X}, namedNumber{"pointer.y", p.Y})
	}
	return nums
}
