// Package config loads and validates scenario files: board size, solver
// settings, electrodes, probe points and an optional sample lattice.
//
// Files are YAML, decoded strictly (unknown keys are errors):
//
//	size: {width: 20, height: 16}
//	iterations: 2000
//	workers: 4
//	clamp: false
//	electrodes:
//	  - {kind: point, x: 1, y: 8, value: 10}
//	  - {kind: column, x: 19, value: 0}
//	probes:
//	  - {x: 10, y: 8}
//	sample: {cols: 200, rows: 160, min: 0, max: 10}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/katalvlaran/laplace/electrode"
	"github.com/katalvlaran/laplace/potential"
)

// Sentinel errors returned by Validate (wrapped with context).
var (
	ErrInvalidSize          = errors.New("config: size must be finite, non-negative and within the node limit")
	ErrInvalidIterations    = errors.New("config: iterations must be >= 0")
	ErrInvalidWorkers       = errors.New("config: workers must be >= 1")
	ErrElectrodeOutOfBounds = errors.New("config: electrode outside the board")
	ErrInvalidSample        = errors.New("config: sample cols and rows must be >= 1")
)

// Reference scenario defaults.
const (
	DefaultWidth     = 20
	DefaultHeight    = 16
	DefaultSampleMin = 0
	DefaultSampleMax = 10
)

// Size is the board extent; it is truncated to integers by the field.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Probe is a measurement point in field coordinates.
type Probe struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Sample describes a dense sample lattice and its normalization range.
type Sample struct {
	Cols int     `yaml:"cols"`
	Rows int     `yaml:"rows"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// Config is one scenario.
type Config struct {
	Size       Size                  `yaml:"size"`
	Iterations int                   `yaml:"iterations"`
	Workers    int                   `yaml:"workers"`
	Clamp      bool                  `yaml:"clamp"`
	Electrodes []electrode.Electrode `yaml:"electrodes"`
	Probes     []Probe               `yaml:"probes"`
	Sample     *Sample               `yaml:"sample"`
}

// Default returns the reference scenario: a 20×16 board with a 10 V point
// source at (1,8), a 0 V point sink at (19,8), and one probe midway.
func Default() Config {
	return Config{
		Size:       Size{Width: DefaultWidth, Height: DefaultHeight},
		Iterations: potential.DefaultIterations,
		Workers:    potential.DefaultWorkers,
		Electrodes: []electrode.Electrode{
			{Kind: electrode.Point, X: 1, Y: 8, Value: 10},
			{Kind: electrode.Point, X: 19, Y: 8, Value: 0},
		},
		Probes: []Probe{{X: 10, Y: 8}},
	}
}

// file is the on-disk shape. Pointer fields tell "omitted" from zero.
type file struct {
	Size       Size                  `yaml:"size"`
	Iterations *int                  `yaml:"iterations"`
	Workers    *int                  `yaml:"workers"`
	Clamp      bool                  `yaml:"clamp"`
	Electrodes []electrode.Electrode `yaml:"electrodes"`
	Probes     []Probe               `yaml:"probes"`
	Sample     *Sample               `yaml:"sample"`
}

func (f file) config() Config {
	c := Config{
		Size:       f.Size,
		Iterations: potential.DefaultIterations,
		Workers:    potential.DefaultWorkers,
		Clamp:      f.Clamp,
		Electrodes: f.Electrodes,
		Probes:     f.Probes,
		Sample:     f.Sample,
	}
	if f.Iterations != nil {
		c.Iterations = *f.Iterations
	}
	if f.Workers != nil {
		c.Workers = *f.Workers
	}

	return c
}

// Load reads and parses the scenario at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML scenario over the defaults, applies clamping when
// requested, and validates the result.
func Parse(data []byte) (Config, error) {
	var raw file
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg := raw.config()
	if cfg.Sample != nil {
		cfg.Sample.fillRange()
	}
	if cfg.Clamp && potential.CheckSize(cfg.Size.Width, cfg.Size.Height) == nil {
		cfg.ClampElectrodes()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// fillRange substitutes the reference 0..10 range when both ends are zero.
func (s *Sample) fillRange() {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = DefaultSampleMin, DefaultSampleMax
	}
}

// GridSize returns the integer board size (W, H) the field will use.
func (c Config) GridSize() (w, h int) {
	return int(c.Size.Width), int(c.Size.Height)
}

// ClampElectrodes moves every electrode onto the board.
func (c *Config) ClampElectrodes() {
	w, h := c.GridSize()
	for i := range c.Electrodes {
		c.Electrodes[i] = c.Electrodes[i].Clamp(w, h)
	}
}

// Validate checks the scenario in order: size, iterations, workers,
// electrodes, sample. The first violation is returned.
func (c Config) Validate() error {
	if err := potential.CheckSize(c.Size.Width, c.Size.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.Iterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	w, h := c.GridSize()
	for i, e := range c.Electrodes {
		if err := e.Validate(w, h); err != nil {
			if errors.Is(err, electrode.ErrOutOfGrid) {
				return fmt.Errorf("%w: electrode[%d]: %w", ErrElectrodeOutOfBounds, i, err)
			}
			return fmt.Errorf("config: electrode[%d]: %w", i, err)
		}
	}
	if c.Sample != nil && (c.Sample.Cols < 1 || c.Sample.Rows < 1) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSample, c.Sample.Cols, c.Sample.Rows)
	}

	return nil
}

// Build validates c, creates the field it describes and places its
// electrodes. The field is configured but not solved. Extra opts apply
// after the scenario's own iterations and workers.
func (c Config) Build(opts ...potential.Option) (*potential.Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	all := append([]potential.Option{
		potential.WithIterations(c.Iterations),
		potential.WithWorkers(c.Workers),
	}, opts...)
	f, err := potential.New(c.Size.Width, c.Size.Height, all...)
	if err != nil {
		return nil, fmt.Errorf("config: build field: %w", err)
	}
	if err := electrode.Place(f, c.Electrodes...); err != nil {
		return nil, fmt.Errorf("config: place electrodes: %w", err)
	}

	return f, nil
}
