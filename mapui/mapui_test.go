// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mapui_test

import (
	"math"
	"reflect"
	"testing"

	"cloudeng.io/mapviz/mapui"
	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
)

func TestReplaceStrokeWidth(t *testing.T) {
	in := mapui.Styles{"strokeWidth": "2", "fill": "#fff"}
	got := mapui.ReplaceStrokeWidth(in)
	if want := (mapui.Styles{"strokeWidth": "inherit", "fill": "#fff"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := in["strokeWidth"], "2"; got != want {
		t.Errorf("input was modified: got %v, want %v", got, want)
	}
	got = mapui.ReplaceStrokeWidth(mapui.Styles{"stroke": "#000"})
	if want := (mapui.Styles{"stroke": "#000"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCreateChoroplethStyles(t *testing.T) {
	in := mapui.Styles{"fill": "#fff", "stroke": "#000"}
	got := mapui.CreateChoroplethStyles(in, &mapui.ChoroplethValue{Value: "#f00"})
	if want := (mapui.Styles{"fill": "#f00", "stroke": "#000"}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := in["fill"], "#fff"; got != want {
		t.Errorf("input was modified: got %v, want %v", got, want)
	}
	if got := mapui.CreateChoroplethStyles(in, nil); !reflect.DeepEqual(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}
	got = mapui.CreateChoroplethStyles(mapui.Styles{"stroke": "#000"}, &mapui.ChoroplethValue{Value: "#f00"})
	if _, ok := got["fill"]; ok {
		t.Errorf("fill should not be added: %v", got)
	}
}

func TestCalculateResizeFactor(t *testing.T) {
	for _, tc := range []struct {
		actual, base, want float64
	}{
		{800, 800, 1},
		{400, 800, 2},
		{1600, 800, 0.5},
	} {
		if got := mapui.CalculateResizeFactor(tc.actual, tc.base); got != tc.want {
			t.Errorf("%v, %v: got %v, want %v", tc.actual, tc.base, got, tc.want)
		}
	}
}

func TestCalculateMousePosition(t *testing.T) {
	proj := projection.New(projection.Equirectangular).WithRotation(projection.Rotation{-10, 0, 0})
	center := orb.Point{10, 20}
	x := mapui.CalculateMousePosition(mapui.X, proj, center, 960, 500, 2, 1)
	y := mapui.CalculateMousePosition(mapui.Y, proj, center, 960, 500, 2, 1)
	if math.Abs(x) > 1e-9 {
		t.Errorf("got %v, want 0", x)
	}
	if want := 2 * 150 * 20 * math.Pi / 180; math.Abs(y-want) > 1e-9 {
		t.Errorf("got %v, want %v", y, want)
	}
	// A resize factor of 2 halves the offset.
	half := mapui.CalculateMousePosition(mapui.Y, proj, center, 960, 500, 2, 2)
	if math.Abs(half-y/2) > 1e-9 {
		t.Errorf("got %v, want %v", half, y/2)
	}
	// The projection passed in is not modified.
	if got, want := proj.Rotation(), (projection.Rotation{-10, 0, 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := mapui.Y.String(), "y"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChildKind(t *testing.T) {
	for _, k := range []mapui.ChildKind{mapui.Geographies, mapui.Markers, mapui.Annotations, mapui.Annotation, mapui.Graticule} {
		if got := mapui.ChildKindFor(k.String()); got != k {
			t.Errorf("got %v, want %v", got, k)
		}
	}
	if got, want := mapui.ChildKindFor("Night"), mapui.Other; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := mapui.ChildKind(42).String(), "ChildKind(42)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInjectChildProps(t *testing.T) {
	proj := projection.New(projection.Mercator)
	props := mapui.ZoomProps{Projection: proj, Zoom: 3}
	geographies := &mapui.Child{Kind: mapui.Geographies, Zoom: 1}
	markers := &mapui.Child{Kind: mapui.Markers}
	other := &mapui.Child{Kind: mapui.Other, Key: "mine"}
	graticule := &mapui.Child{Kind: mapui.Graticule}

	out := mapui.InjectChildProps([]*mapui.Child{geographies, nil, markers, other, graticule}, props)
	if got, want := len(out), 5; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if out[1] != nil {
		t.Errorf("nil child was replaced: %v", out[1])
	}
	if out[3] != other {
		t.Errorf("other child was modified")
	}
	if g := out[0]; g.Projection != proj || g.Zoom != 1 || g.Key != "zoomable-child-0" {
		t.Errorf("unexpected geographies child: %+v", g)
	}
	for _, i := range []int{2, 4} {
		c := out[i]
		if c.Projection != proj || c.Zoom != 3 {
			t.Errorf("%v: unexpected child: %+v", i, c)
		}
		if got, want := c.Key, []string{"", "", "zoomable-child-2", "", "zoomable-child-4"}[i]; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if markers.Projection != nil || markers.Key != "" {
		t.Errorf("input child was modified: %+v", markers)
	}

	// A single child is not keyed, graticules are treated like markers.
	out = mapui.InjectChildProps([]*mapui.Child{graticule}, props)
	if c := out[0]; c.Key != "" || c.Zoom != 3 || c.Projection != proj {
		t.Errorf("unexpected child: %+v", c)
	}
	if got := mapui.InjectChildProps(nil, props); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
