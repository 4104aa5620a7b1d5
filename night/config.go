// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package night

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"math"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/mapviz/projection"
)

// ProjectionConfig specifies the projection the overlay is drawn with.
// A zero Scale fits the projection to the map's width and height.
type ProjectionConfig struct {
	Name   string    `yaml:"name"`
	Scale  float64   `yaml:"scale"`
	Rotate []float64 `yaml:"rotate"`
}

// StyleConfig is the YAML representation of Style.
type StyleConfig struct {
	Fill      string            `yaml:"fill"`
	Stroke    string            `yaml:"stroke"`
	NightFill string            `yaml:"night_fill"`
	Attrs     map[string]string `yaml:"attrs"`
}

// Config represents the YAML configuration of an overlay, for example:
//
//	always_recompute: false
//	precision: 0.01
//	projection:
//	  name: orthographic
//	  rotate: [-10, -30]
//	style:
//	  fill: "rgb(0,0,0,0.5)"
//	  attrs:
//	    pointer-events: none
type Config struct {
	AlwaysRecompute bool             `yaml:"always_recompute"`
	Precision       float64          `yaml:"precision"`
	Step            float64          `yaml:"step"`
	Projection      ProjectionConfig `yaml:"projection"`
	Style           StyleConfig      `yaml:"style"`
}

// DefaultConfig returns the configuration used for any fields not
// specified in a YAML configuration.
func DefaultConfig() Config {
	s := DefaultStyle()
	return Config{
		Precision:  0.01,
		Projection: ProjectionConfig{Name: projection.Equirectangular.String()},
		Style: StyleConfig{
			Fill:   s.Fill,
			Stroke: s.Stroke,
			Attrs:  s.Attrs,
		},
	}
}

// ParseConfig parses a YAML configuration, applying defaults for fields
// that are not specified and validating the result. Unknown fields are
// reported as errors.
func ParseConfig(spec []byte) (Config, error) {
	cfg := DefaultConfig()
	// Attrs in the configuration replace rather than merge with the default.
	cfg.Style.Attrs = nil
	if len(bytes.TrimSpace(spec)) == 0 {
		return finish(cfg)
	}
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// ParseConfigFile is like ParseConfig but reads the configuration from
// the named file.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Style.Attrs = nil
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	if cfg.Style.Attrs == nil {
		cfg.Style.Attrs = DefaultStyle().Attrs
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error describing every invalid field in cfg.
func (cfg Config) Validate() error {
	var errs errors.M
	if cfg.Precision < 0 || math.IsNaN(cfg.Precision) {
		errs.Append(fmt.Errorf("precision must be non-negative: %v", cfg.Precision))
	}
	if cfg.Step < 0 || cfg.Step > 90 || math.IsNaN(cfg.Step) {
		errs.Append(fmt.Errorf("step must be in the range [0, 90]: %v", cfg.Step))
	}
	if _, err := projection.ParseKind(cfg.Projection.Name); err != nil {
		errs.Append(fmt.Errorf("projection: %w", err))
	}
	if cfg.Projection.Scale < 0 || math.IsNaN(cfg.Projection.Scale) {
		errs.Append(fmt.Errorf("projection: scale must be non-negative: %v", cfg.Projection.Scale))
	}
	if n := len(cfg.Projection.Rotate); n > 3 {
		errs.Append(fmt.Errorf("projection: rotate has %v angles, at most 3 are allowed", n))
	}
	for i, a := range cfg.Projection.Rotate {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			errs.Append(fmt.Errorf("projection: rotate[%v] is not a finite angle: %v", i, a))
		}
	}
	if len(cfg.Style.Fill) == 0 {
		errs.Append(fmt.Errorf("style: fill must be specified"))
	}
	return errs.Err()
}

// Rotation returns the configured rotation.
func (cfg Config) Rotation() projection.Rotation {
	var r projection.Rotation
	copy(r[:], cfg.Projection.Rotate)
	return r
}

// NewProjection returns the configured projection, fitted to a map of
// the given width and height unless an explicit scale is configured.
func (cfg Config) NewProjection(width, height float64) (projection.Projection, error) {
	kind, err := projection.ParseKind(cfg.Projection.Name)
	if err != nil {
		return nil, err
	}
	opts := projection.Fit(kind, width, height)
	if cfg.Projection.Scale > 0 {
		opts = append(opts, projection.WithScale(cfg.Projection.Scale))
	}
	opts = append(opts, projection.WithRotation(cfg.Rotation()))
	return projection.New(kind, opts...), nil
}

// NewOverlay returns a new overlay using cfg.
func (cfg Config) NewOverlay() *Overlay {
	return New(
		WithStyle(Style{
			Fill:      cfg.Style.Fill,
			Stroke:    cfg.Style.Stroke,
			NightFill: cfg.Style.NightFill,
			Attrs:     maps.Clone(cfg.Style.Attrs),
		}),
		WithAlwaysRecompute(cfg.AlwaysRecompute),
		WithPrecision(cfg.Precision),
		WithStep(cfg.Step),
	)
}
