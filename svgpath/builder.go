// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package svgpath

import (
	"strings"

	"cloudeng.io/mapviz/geo"
	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
)

// Builder accumulates path data using absolute move, line and close
// commands. Coordinates are rounded to Precision when it is positive.
type Builder struct {
	Precision float64
	sb        strings.Builder
}

func (b *Builder) point(cmd byte, p orb.Point) {
	b.sb.WriteByte(cmd)
	b.sb.WriteString(FormatNumber(Round(p[0], b.Precision)))
	b.sb.WriteByte(',')
	b.sb.WriteString(FormatNumber(Round(p[1], b.Precision)))
}

// MoveTo starts a new sub-path at p.
func (b *Builder) MoveTo(p orb.Point) {
	b.point('M', p)
}

// LineTo draws a line to p.
func (b *Builder) LineTo(p orb.Point) {
	b.point('L', p)
}

// Close closes the current sub-path.
func (b *Builder) Close() {
	b.sb.WriteByte('Z')
}

// Line appends an open sub-path through pts.
func (b *Builder) Line(pts []orb.Point) {
	for i, p := range pts {
		if i == 0 {
			b.MoveTo(p)
			continue
		}
		b.LineTo(p)
	}
}

// Ring appends a closed sub-path through pts, a repeated final point is
// dropped in favor of the close command.
func (b *Builder) Ring(pts []orb.Point) {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) == 0 {
		return
	}
	b.Line(pts)
	b.Close()
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// String returns the accumulated path data.
func (b *Builder) String() string {
	return b.sb.String()
}

// Generator projects geographic geometries and renders them as path data.
// Lines are split where they cross the antimeridian of the projection's
// rotated frame; polygons are assumed to have been constructed so as to
// not cross it, see geo.Hemisphere.
type Generator struct {
	Projection projection.Projection
	Precision  float64
}

func (g Generator) project(pts []orb.Point) []orb.Point {
	out := make([]orb.Point, len(pts))
	for i, p := range pts {
		out[i] = g.Projection.Project(p)
	}
	return out
}

// LineString returns the path data for ls.
func (g Generator) LineString(ls orb.LineString) string {
	b := &Builder{Precision: g.Precision}
	for _, part := range geo.SplitAntimeridian(ls, g.Projection.Rotation()) {
		b.Line(g.project(part))
	}
	return b.String()
}

// MultiLineString returns the path data for mls.
func (g Generator) MultiLineString(mls orb.MultiLineString) string {
	b := &Builder{Precision: g.Precision}
	rot := g.Projection.Rotation()
	for _, ls := range mls {
		for _, part := range geo.SplitAntimeridian(ls, rot) {
			b.Line(g.project(part))
		}
	}
	return b.String()
}

// Polygon returns the path data for p, one closed sub-path per ring.
func (g Generator) Polygon(p orb.Polygon) string {
	b := &Builder{Precision: g.Precision}
	for _, r := range p {
		b.Ring(g.project(r))
	}
	return b.String()
}

// MultiPolygon returns the path data for mp.
func (g Generator) MultiPolygon(mp orb.MultiPolygon) string {
	b := &Builder{Precision: g.Precision}
	for _, p := range mp {
		for _, r := range p {
			b.Ring(g.project(r))
		}
	}
	return b.String()
}
