// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package night_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/mapviz/night"
	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
)

const orthographicConfig = `
always_recompute: true
precision: 0.1
projection:
  name: orthographic
  rotate: [-10, -30]
style:
  fill: "rgb(0,0,0,0.5)"
  night_fill: "#222"
  attrs:
    opacity: "0.8"
`

func TestParseConfig(t *testing.T) {
	cfg, err := night.ParseConfig([]byte(orthographicConfig))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.AlwaysRecompute || cfg.Precision != 0.1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if got, want := cfg.Rotation(), (projection.Rotation{-10, -30, 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Style.Stroke, night.DefaultStroke; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Style.Attrs, map[string]string{"opacity": "0.8"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	o := cfg.NewOverlay()
	if !o.ShouldUpdate() {
		t.Errorf("always_recompute was not applied")
	}
	if got, want := o.Style().NightFill, "#222"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	proj, err := cfg.NewProjection(800, 400)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := proj.Rotation(), cfg.Rotation(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The rotation brings 10°E, 30°N to the center of the map.
	if got := proj.Project(orb.Point{10, 30}); got[0] < 399.999 || got[0] > 400.001 || got[1] < 199.999 || got[1] > 200.001 {
		t.Errorf("got %v", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	for _, spec := range []string{"", "\n", "precision: 0.01\n"} {
		cfg, err := night.ParseConfig([]byte(spec))
		if err != nil {
			t.Fatalf("%q: %v", spec, err)
		}
		if got, want := cfg, night.DefaultConfig(); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: got %+v, want %+v", spec, got, want)
		}
	}
	o := night.DefaultConfig().NewOverlay()
	if got, want := o.Style(), night.DefaultStyle(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	proj, err := night.DefaultConfig().NewProjection(960, 480)
	if err != nil {
		t.Fatal(err)
	}
	if got := proj.Project(orb.Point{180, -90}); math.Abs(got[0]-960) > 1e-9 || math.Abs(got[1]-480) > 1e-9 {
		t.Errorf("got %v", got)
	}
}

func TestConfigErrors(t *testing.T) {
	spec := `
precision: -1
step: 120
projection:
  name: conic
  scale: -3
  rotate: [1, 2, 3, 4]
style:
  fill: ""
`
	_, err := night.ParseConfig([]byte(spec))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{
		"precision must be non-negative",
		"step must be in the range",
		"conic",
		"scale must be non-negative",
		"rotate has 4 angles",
		"fill must be specified",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q is missing from %v", want, err)
		}
	}

	if _, err := night.ParseConfig([]byte("colour: red\n")); err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("expected an error for an unknown field: %v", err)
	}
	if _, err := night.ParseConfig([]byte("precision: [1\n")); err == nil {
		t.Errorf("expected a syntax error")
	}
}

func TestParseConfigFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "night.yaml")
	if err := os.WriteFile(filename, []byte(orthographicConfig), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := night.ParseConfigFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Projection.Name, "orthographic"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := night.ParseConfigFile(ctx, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
