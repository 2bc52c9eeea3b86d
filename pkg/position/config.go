package position

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/platform"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPlacement is used when Config.Placement is empty.
	DefaultPlacement = geom.Bottom

	// DefaultStrategy is used when Config.Strategy is empty.
	DefaultStrategy = geom.StrategyAbsolute

	// DefaultMaxResets bounds how many resets one computation may perform.
	// Built-in middleware converge well below this; hitting it means two
	// middleware keep undoing each other.
	DefaultMaxResets = 50
)

// =============================================================================
// Config
// =============================================================================

// Config contains all inputs of one position computation besides the two
// elements.
type Config struct {
	// Placement is the preferred placement. Default: bottom.
	Placement geom.Placement

	// Strategy is the positioning basis. Default: absolute.
	Strategy geom.Strategy

	// Middleware runs in order. Nil entries are skipped.
	Middleware []Middleware

	// Platform answers geometry queries. Required.
	Platform platform.Platform

	// MaxResets caps pipeline restarts. Default: DefaultMaxResets.
	MaxResets int

	// Logger receives debug output for each pipeline step. Default: discard.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Every call rechecks the fields, so a config may be edited between calls.
func (c *Config) ValidateAndSetDefaults() error {
	if c.Platform == nil {
		return errors.New(errors.ErrCodeInvalidInput, "platform is required")
	}

	if c.Placement == "" {
		c.Placement = DefaultPlacement
	}
	if !c.Placement.Valid() {
		return errors.New(errors.ErrCodeInvalidPlacement, "invalid placement: %q", c.Placement)
	}

	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	if !c.Strategy.Valid() {
		return errors.New(errors.ErrCodeInvalidStrategy, "invalid strategy: %q (must be absolute or fixed)", c.Strategy)
	}

	if c.MaxResets <= 0 {
		c.MaxResets = DefaultMaxResets
	}

	for _, m := range c.Middleware {
		if m == nil {
			continue
		}
		if err := errors.ValidateName(m.Name()); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "middleware name")
		}
	}

	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a position computation.
type Result struct {
	// X and Y are the floating element's coordinates relative to its offset
	// parent.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Placement is the final placement, which middleware may have changed.
	Placement geom.Placement `json:"placement"`

	Strategy geom.Strategy `json:"strategy"`

	// MiddlewareData holds every middleware's last data record by name.
	MiddlewareData MiddlewareData `json:"middleware_data"`

	// Resets counts pipeline restarts.
	Resets int `json:"resets"`
}

// Coords returns the result position.
func (r Result) Coords() geom.Coords {
	return geom.Coords{X: r.X, Y: r.Y}
}
