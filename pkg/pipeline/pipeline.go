// Package pipeline provides the load → layout → render pipeline for circlegrid.
//
// The CLI's layout, render and visualize commands all run through a
// [Runner], so caching, defaults and validation live in one place.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: parse CSV records, nest them by the key fields and deal the
//     groups into clusters
//  2. Layout: pack every cluster into its grid cell
//  3. Render: produce SVG, PNG, PDF or JSON output
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:    "data.csv",
//	    Clusters: 4,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/circlegrid/pkg/cache"
	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

const (
	// DefaultWidth is the default drawing width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default drawing height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin is the blank border added around the drawing.
	DefaultMargin = 20.0

	// DefaultKeyField is the column records are grouped by.
	DefaultKeyField = "groupid"

	// DefaultValueField is the column summed per group.
	DefaultValueField = "value"

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0
)

// EngineVersion identifies the packing algorithm. Bump it whenever layouts
// for the same input change, so cached layouts from older builds are ignored.
const EngineVersion = 2

// EngineScope returns the cache key scope for [EngineVersion].
func EngineScope() string {
	return fmt.Sprintf("engine-v%d", EngineVersion)
}

// Visualization types.
const (
	VizCircles = "circles"
	VizTree    = "tree"
)

// Size modes.
const (
	// SizeValue sizes each leaf by its summed value.
	SizeValue = "value"
	// SizeConstant gives every leaf the same area.
	SizeConstant = "constant"
)

// Palettes.
const (
	PaletteDefault = "default"
	PaletteMono    = "mono"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizCircles

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizCircles: true,
	VizTree:    true,
}

// ValidSizes is the set of supported size modes.
var ValidSizes = map[string]bool{
	SizeValue:    true,
	SizeConstant: true,
}

// palettes maps palette names to fill colors.
var palettes = map[string][]string{
	PaletteDefault: circles.DefaultPalette,
	PaletteMono:    circles.MonoPalette,
}

// Options contains all configuration for the pipeline.
// Field tags double as config file keys (see internal/cli).
type Options struct {
	// Load options
	Input      string   `json:"input,omitempty" toml:"input" yaml:"input"`
	KeyFields  []string `json:"key_fields,omitempty" toml:"key_fields" yaml:"key_fields"`
	ValueField string   `json:"value_field,omitempty" toml:"value_field" yaml:"value_field"`
	Clusters   int      `json:"clusters,omitempty" toml:"clusters" yaml:"clusters"`

	// Layout options
	Width   float64 `json:"width,omitempty" toml:"width" yaml:"width"`
	Height  float64 `json:"height,omitempty" toml:"height" yaml:"height"`
	Margin  float64 `json:"margin,omitempty" toml:"margin" yaml:"margin"`
	Padding float64 `json:"padding,omitempty" toml:"padding" yaml:"padding"`
	Size    string  `json:"size,omitempty" toml:"size" yaml:"size"`

	// Render options
	VizType  string   `json:"viz_type,omitempty" toml:"viz_type" yaml:"viz_type"`
	Formats  []string `json:"formats,omitempty" toml:"formats" yaml:"formats"`
	Palette  string   `json:"palette,omitempty" toml:"palette" yaml:"palette"`
	Grid     bool     `json:"grid,omitempty" toml:"grid" yaml:"grid"`
	Labels   bool     `json:"labels,omitempty" toml:"labels" yaml:"labels"`
	Outlines bool     `json:"outlines,omitempty" toml:"outlines" yaml:"outlines"`
	Detailed bool     `json:"detailed,omitempty" toml:"detailed" yaml:"detailed"`
	Scale    float64  `json:"scale,omitempty" toml:"scale" yaml:"scale"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty" toml:"refresh" yaml:"refresh"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// InputHash is the content hash of the input file.
	InputHash string

	// Layout is the computed circle layout.
	Layout circles.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Formats lists the requested formats in order.
	Formats []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Clusters   int
	Circles    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: circles, tree)", vizType)
	}
	return nil
}

// ValidatePalette checks that a palette name is known.
func ValidatePalette(name string) error {
	if _, ok := palettes[name]; !ok {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid palette: %q (must be one of: default, mono)", name)
	}
	return nil
}

// ValidateSize checks that a size mode is valid.
func ValidateSize(size string) error {
	if !ValidSizes[size] {
		return errors.InvalidInput("invalid size mode: %q (must be one of: value, constant)", size)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.InvalidInput("input file is required")
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if len(o.KeyFields) == 0 {
		o.KeyFields = []string{DefaultKeyField}
	}
	if o.ValueField == "" {
		o.ValueField = DefaultValueField
	}
	if o.Clusters == 0 {
		o.Clusters = 1
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Size == "" {
		o.Size = SizeValue
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Clusters < 0 {
		return errors.InvalidInput("cluster count must be positive (got %d)", o.Clusters)
	}
	for _, k := range o.KeyFields {
		if err := errors.ValidateFieldName(k); err != nil {
			return err
		}
	}
	if err := errors.ValidateFieldName(o.ValueField); err != nil {
		return err
	}
	if err := errors.ValidateArea("layout", o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("margin", o.Margin); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("padding", o.Padding); err != nil {
		return err
	}
	return ValidateSize(o.Size)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Palette == "" {
		o.Palette = PaletteDefault
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidatePalette(o.Palette); err != nil {
		return err
	}
	return errors.ValidateNonNegative("scale", o.Scale)
}

// IsTree returns true if this is a tree visualization.
func (o *Options) IsTree() bool {
	return o.VizType == VizTree
}

// SizeFunc returns the leaf size function selected by Size.
func (o *Options) SizeFunc() hierarchy.SizeFunc {
	if o.Size == SizeConstant {
		return hierarchy.DefaultSize
	}
	return hierarchy.Identity
}

// CircleOptions returns the circle sink options selected by the render flags.
func (o *Options) CircleOptions() []circles.Option {
	opts := []circles.Option{circles.WithPalette(palettes[o.Palette])}
	if o.Grid {
		opts = append(opts, circles.WithGrid())
	}
	if o.Labels {
		opts = append(opts, circles.WithLabels())
	}
	if o.Outlines {
		opts = append(opts, circles.WithOutlines())
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		KeyFields:  o.KeyFields,
		ValueField: o.ValueField,
		Size:       o.Size,
		Clusters:   o.Clusters,
		Width:      o.Width,
		Height:     o.Height,
		Margin:     o.Margin,
		Padding:    o.Padding,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		VizType:  o.VizType,
		Format:   format,
		Palette:  o.Palette,
		Grid:     o.Grid,
		Labels:   o.Labels,
		Outlines: o.Outlines,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}

