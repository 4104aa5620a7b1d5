// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package svgpath_test

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"cloudeng.io/mapviz/projection"
	"cloudeng.io/mapviz/svgpath"
	"github.com/paulmach/orb"
)

func TestRoundPath(t *testing.T) {
	for i, tc := range []struct {
		path      string
		precision float64
		want      string
	}{
		{"M1.2345,2.3456L3.14159,4", 0.01, "M1.23,2.35L3.14,4"},
		{"M1.25,-1.25Z", 0.1, "M1.3,-1.2Z"},
		{"M10.4,20.6", 1, "M10,21"},
		{"M1-2,3", 1, "M1-2,3"},
		{"M1e-5,2", 0.001, "M0,2"},
		{"", 0.1, ""},
		{"M1.234,5", 0, "M1.234,5"},
		{"M0,0 Q -15.55,15 -30,30", 0.1, "M0,0 Q -15.5,15 -30,30"},
	} {
		if got := svgpath.RoundPath(tc.path, tc.precision); got != tc.want {
			t.Errorf("%v: got %q, want %q", i, got, tc.want)
		}
	}
}

var numbers = regexp.MustCompile(`-?[\d.]+`)

func TestRoundPathPrecision(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234))
	for _, precision := range []float64{1, 0.1, 0.01} {
		var sb strings.Builder
		var values []float64
		for i := 0; i < 50; i++ {
			v := (rnd.Float64() - 0.5) * 2000
			values = append(values, v)
			if i == 0 {
				sb.WriteByte('M')
			} else if i%2 == 0 {
				sb.WriteByte('L')
			} else {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
		}
		rounded := numbers.FindAllString(svgpath.RoundPath(sb.String(), precision), -1)
		if got, want := len(rounded), len(values); got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i, r := range rounded {
			v, err := strconv.ParseFloat(r, 64)
			if err != nil {
				t.Fatal(err)
			}
			if d := math.Abs(v - values[i]); d > precision/2+1e-6 {
				t.Errorf("%v: %v rounded to %v", precision, values[i], v)
			}
		}
	}
}

func TestConnectorPath(t *testing.T) {
	for _, tc := range []struct {
		end   orb.Point
		curve float64
		want  string
	}{
		{orb.Point{-30, 30}, 0, "M0,0 Q -15,15 -30,30"},
		{orb.Point{30, -30}, 0.5, "M0,0 Q 22.5,-7.5 30,-30"},
		{orb.Point{30, -30}, -1, "M0,0 Q 0,-30 30,-30"},
		{orb.Point{0, 0}, 0, "M0,0 Q 0,0 0,0"},
	} {
		if got := svgpath.ConnectorPath(tc.end, tc.curve); got != tc.want {
			t.Errorf("%v %v: got %q, want %q", tc.end, tc.curve, got, tc.want)
		}
	}
}

func TestTextAnchor(t *testing.T) {
	for _, tc := range []struct {
		dx   float64
		want string
	}{
		{10, "start"},
		{-0.5, "end"},
		{0, "middle"},
	} {
		if got := svgpath.TextAnchor(tc.dx); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.dx, got, tc.want)
		}
	}
}

func TestBuilder(t *testing.T) {
	b := &svgpath.Builder{Precision: 0.1}
	b.MoveTo(orb.Point{1.26, 2})
	b.LineTo(orb.Point{3, 4.04})
	b.Close()
	if got, want := b.String(), "M1.3,2L3,4Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	b = &svgpath.Builder{}
	b.Ring([]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	b.Line([]orb.Point{{-0.5, 2}, {3, 4}})
	b.Ring(nil)
	if got, want := b.String(), "M0,0L1,0L1,1ZM-0.5,2L3,4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := b.Len(), len(b.String()); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerator(t *testing.T) {
	p := projection.New(projection.Equirectangular, projection.WithScale(1), projection.WithTranslate(0, 0))
	g := svgpath.Generator{Projection: p, Precision: 0.001}

	square := orb.Polygon{{{0, 0}, {90, 0}, {90, 45}, {0, 45}, {0, 0}}}
	if got, want := g.Polygon(square), "M0,0L1.571,0L1.571,-0.785L0,-0.785Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ls := orb.LineString{{170, 0}, {-170, 0}}
	if got, want := strings.Count(g.LineString(ls), "M"), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Centering the map on the antimeridian avoids the split.
	g.Projection = p.WithRotation(projection.Rotation{180, 0, 0})
	if got, want := strings.Count(g.LineString(ls), "M"), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	mls := orb.MultiLineString{{{0, 0}, {10, 0}}, {{20, 0}, {30, 0}}}
	if got, want := strings.Count(g.MultiLineString(mls), "M"), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// {0, 0} lies on the antimeridian of the rotated frame and is drawn
	// on the side of {10, 0}.
	if got, want := g.LineString(orb.LineString{{0, 0}, {10, 0}}), "M-3.142,0L-2.967,0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func ExampleRoundPath() {
	fmt.Println(svgpath.RoundPath("M10.456,20.111L30.95,40.05Z", 0.1))
	// Output:
	// M10.5,20.1L31,40.1Z
}
