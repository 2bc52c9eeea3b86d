package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floatpos/pkg/errors"
	"github.com/matzehuels/floatpos/pkg/geom"
	"github.com/matzehuels/floatpos/pkg/observability"
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateScenePath(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

// =============================================================================
// Model
// =============================================================================

// Scene is the decoded form of a scene file.
type Scene struct {
	Placement string `toml:"placement,omitempty" yaml:"placement,omitempty" json:"placement,omitempty"`
	Strategy  string `toml:"strategy,omitempty" yaml:"strategy,omitempty" json:"strategy,omitempty"`

	// RTL marks the floating element as right-to-left.
	RTL bool `toml:"rtl,omitempty" yaml:"rtl,omitempty" json:"rtl,omitempty"`

	// MaxResets overrides the pipeline's reset limit. Zero keeps the default.
	MaxResets int `toml:"max_resets,omitempty" yaml:"max_resets,omitempty" json:"max_resets,omitempty"`

	// Viewport is the root clipping rect.
	Viewport geom.Rect `toml:"viewport" yaml:"viewport" json:"viewport"`

	// Document is the scrollable document rect for root_boundary = "document".
	Document *geom.Rect `toml:"document,omitempty" yaml:"document,omitempty" json:"document,omitempty"`

	Reference Element `toml:"reference" yaml:"reference" json:"reference"`
	Floating  Element `toml:"floating" yaml:"floating" json:"floating"`

	Arrow        *Element      `toml:"arrow,omitempty" yaml:"arrow,omitempty" json:"arrow,omitempty"`
	OffsetParent *OffsetParent `toml:"offset_parent,omitempty" yaml:"offset_parent,omitempty" json:"offset_parent,omitempty"`

	Middleware []MiddlewareSpec `toml:"middleware,omitempty" yaml:"middleware,omitempty" json:"middleware,omitempty"`
}

// Element is a declared box. Only width and height matter for the floating
// element and the arrow.
type Element struct {
	X      float64 `toml:"x,omitempty" yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `toml:"y,omitempty" yaml:"y,omitempty" json:"y,omitempty"`
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`

	Lines []geom.Rect `toml:"lines,omitempty" yaml:"lines,omitempty" json:"lines,omitempty"`
	Clip  *geom.Rect  `toml:"clip,omitempty" yaml:"clip,omitempty" json:"clip,omitempty"`
}

// Rect returns the element's border box.
func (e Element) Rect() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// OffsetParent is the positioned container of the floating element.
type OffsetParent struct {
	X      float64     `toml:"x,omitempty" yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64     `toml:"y,omitempty" yaml:"y,omitempty" json:"y,omitempty"`
	Width  float64     `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Height float64     `toml:"height,omitempty" yaml:"height,omitempty" json:"height,omitempty"`
	Scroll geom.Coords `toml:"scroll,omitempty" yaml:"scroll,omitempty" json:"scroll,omitempty"`

	// Scale defaults to 1 on each axis.
	Scale *geom.Coords `toml:"scale,omitempty" yaml:"scale,omitempty" json:"scale,omitempty"`
}

// MiddlewareSpec is one [[middleware]] entry. Every middleware reads only
// the fields listed next to it.
type MiddlewareSpec struct {
	Name string `toml:"name" yaml:"name" json:"name"`

	// offset
	MainAxis      float64  `toml:"main_axis,omitempty" yaml:"main_axis,omitempty" json:"main_axis,omitempty"`
	CrossAxis     float64  `toml:"cross_axis,omitempty" yaml:"cross_axis,omitempty" json:"cross_axis,omitempty"`
	AlignmentAxis *float64 `toml:"alignment_axis,omitempty" yaml:"alignment_axis,omitempty" json:"alignment_axis,omitempty"`

	// shift, flip
	SkipMainAxis bool `toml:"skip_main_axis,omitempty" yaml:"skip_main_axis,omitempty" json:"skip_main_axis,omitempty"`

	// shift, autoPlacement
	CheckCrossAxis bool `toml:"check_cross_axis,omitempty" yaml:"check_cross_axis,omitempty" json:"check_cross_axis,omitempty"`

	// shift
	Limit          bool    `toml:"limit,omitempty" yaml:"limit,omitempty" json:"limit,omitempty"`
	LimitMainAxis  float64 `toml:"limit_main_axis,omitempty" yaml:"limit_main_axis,omitempty" json:"limit_main_axis,omitempty"`
	LimitCrossAxis float64 `toml:"limit_cross_axis,omitempty" yaml:"limit_cross_axis,omitempty" json:"limit_cross_axis,omitempty"`

	// flip
	CrossAxisMode             string   `toml:"cross_axis_mode,omitempty" yaml:"cross_axis_mode,omitempty" json:"cross_axis_mode,omitempty"`
	FallbackPlacements        []string `toml:"fallback_placements,omitempty" yaml:"fallback_placements,omitempty" json:"fallback_placements,omitempty"`
	FallbackStrategy          string   `toml:"fallback_strategy,omitempty" yaml:"fallback_strategy,omitempty" json:"fallback_strategy,omitempty"`
	FallbackAxisSideDirection string   `toml:"fallback_axis_side_direction,omitempty" yaml:"fallback_axis_side_direction,omitempty" json:"fallback_axis_side_direction,omitempty"`
	NoFlipAlignment           bool     `toml:"no_flip_alignment,omitempty" yaml:"no_flip_alignment,omitempty" json:"no_flip_alignment,omitempty"`

	// autoPlacement
	Alignment         string   `toml:"alignment,omitempty" yaml:"alignment,omitempty" json:"alignment,omitempty"`
	AllowedPlacements []string `toml:"allowed_placements,omitempty" yaml:"allowed_placements,omitempty" json:"allowed_placements,omitempty"`
	NoAutoAlignment   bool     `toml:"no_auto_alignment,omitempty" yaml:"no_auto_alignment,omitempty" json:"no_auto_alignment,omitempty"`

	// hide
	Strategy string `toml:"strategy,omitempty" yaml:"strategy,omitempty" json:"strategy,omitempty"`

	// size: shrink the floating element to the available space.
	Fit bool `toml:"fit,omitempty" yaml:"fit,omitempty" json:"fit,omitempty"`

	// inline
	Pointer *geom.Coords `toml:"pointer,omitempty" yaml:"pointer,omitempty" json:"pointer,omitempty"`

	// Padding is the overflow padding, the arrow's corner padding or the
	// inline hit padding, depending on the middleware. PaddingSides wins
	// over Padding.
	Padding      *float64         `toml:"padding,omitempty" yaml:"padding,omitempty" json:"padding,omitempty"`
	PaddingSides *geom.SideObject `toml:"padding_sides,omitempty" yaml:"padding_sides,omitempty" json:"padding_sides,omitempty"`

	// Overflow detection.
	Boundary       *geom.Rect `toml:"boundary,omitempty" yaml:"boundary,omitempty" json:"boundary,omitempty"`
	RootBoundary   string     `toml:"root_boundary,omitempty" yaml:"root_boundary,omitempty" json:"root_boundary,omitempty"`
	ElementContext string     `toml:"element_context,omitempty" yaml:"element_context,omitempty" json:"element_context,omitempty"`
	AltBoundary    bool       `toml:"alt_boundary,omitempty" yaml:"alt_boundary,omitempty" json:"alt_boundary,omitempty"`
}

// =============================================================================
// Decoding
// =============================================================================

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	start := time.Now()
	format, err := FormatFromPath(path)
	if err != nil {
		observability.Scene().OnSceneLoad(path, "", time.Since(start), err)
		return nil, err
	}
	s, err := load(path, format)
	observability.Scene().OnSceneLoad(path, string(format), time.Since(start), err)
	return s, err
}

func load(path string, format Format) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "read %s", path)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	if err := decode(data, format, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode %s scene", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decode(data []byte, format Format, s *Scene) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), s)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(s)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(s)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Marshal encodes s in the given format.
func Marshal(s *Scene, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown format %q", format)
	}
	return buf.Bytes(), nil
}

// Save writes s to path in the format its extension names.
func Save(s *Scene, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
