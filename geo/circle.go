// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package geo provides spherical geometry on orb types for drawing
// hemispheres and their boundaries on projected maps.
package geo

import (
	"math"

	"cloudeng.io/mapviz/projection"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// DefaultPrecision is the default angular step, in degrees, between the
// vertices of a generated circle.
const DefaultPrecision = 6.0

// Circle represents a small (or great) circle on the sphere: the set of
// points at an angular distance of Radius degrees from Center.
type Circle struct {
	Center    orb.Point
	Radius    float64
	Precision float64 // Vertex spacing in degrees, DefaultPrecision if zero.
}

// Ring returns the circle as a closed ring of geographic points. The
// first and last points are identical.
func (c Circle) Ring() orb.Ring {
	step := c.Precision
	if step <= 0 {
		step = DefaultPrecision
	}
	n := int(math.Ceil(360/step - 1e-9))
	sinR, cosR := math.Sincos(c.Radius * radians)
	rot := projection.Rotation{-c.Center[0], -c.Center[1], 0}
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		t := 2*math.Pi - float64(i)*2*math.Pi/float64(n)
		sinT, cosT := math.Sincos(t)
		x, y, z := cosR, -sinR*cosT, -sinR*sinT
		p := orb.Point{math.Atan2(y, x) * degrees, math.Asin(z) * degrees}
		ring = append(ring, rot.Invert(p))
	}
	return append(ring, ring[0])
}

// Polygons returns the area inside the circle as seen in the frame of the
// rotation rot, split at the frame's antimeridian into closed polygons.
// Pieces that leave and return on the same side of the antimeridian are
// closed along it. A circle that winds around a pole of the frame is
// closed along the antimeridian and that pole. The coordinates are
// geographic, as for Hemisphere.
func (c Circle) Polygons(rot projection.Rotation) orb.MultiPolygon {
	ring := c.Ring()
	unique := ring[:len(ring)-1]
	frame := make(orb.LineString, len(unique))
	for i, p := range unique {
		frame[i] = rot.Apply(p)
	}
	m := len(frame)
	// Prefer a crossing between vertices that are not on the seam.
	start := -1
	for i := range frame {
		j := (i + 1) % m
		if math.Abs(frame[j][0]-frame[i][0]) <= 180 {
			continue
		}
		if !onSeam(frame[i]) && !onSeam(frame[j]) {
			start = j
			break
		}
		if start < 0 {
			start = j
		}
	}
	if start < 0 {
		return orb.MultiPolygon{{ring}}
	}
	// Start just after a crossing and finish by crossing back to the
	// starting vertex so that every piece begins and ends on the seam.
	seq := make(orb.LineString, 0, m+1)
	for i := 0; i <= m; i++ {
		seq = append(seq, frame[(start+i)%m])
	}
	pieces := splitFrame(seq)
	if len(pieces) == 1 {
		r := orb.Ring(pieces[0])
		invert(r, rot)
		return orb.MultiPolygon{{r}}
	}
	last := pieces[len(pieces)-1]
	pieces[0] = append(last[:len(last)-1:len(last)-1], pieces[0]...)
	pieces = pieces[:len(pieces)-1]

	pole := 90 - edge
	if !c.Contains(rot.Invert(orb.Point{0, 90})) {
		pole = -pole
	}
	out := make(orb.MultiPolygon, 0, len(pieces))
	for _, piece := range pieces {
		first, end := piece[0], piece[len(piece)-1]
		r := orb.Ring(piece)
		if (first[0] < 0) != (end[0] < 0) {
			r = append(r, orb.Point{end[0], pole}, orb.Point{first[0], pole})
		}
		r = append(r, first)
		invert(r, rot)
		out = append(out, orb.Polygon{r})
	}
	return out
}

// Cap returns the circle as an s2.Cap.
func (c Circle) Cap() s2.Cap {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(c.Center[1], c.Center[0]))
	return s2.CapFromCenterAngle(center, s1.Angle(c.Radius)*s1.Degree)
}

// Contains returns true if p lies within the circle.
func (c Circle) Contains(p orb.Point) bool {
	return c.Cap().ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0])))
}

// Distance returns the great circle distance, in degrees, between a and b.
func Distance(a, b orb.Point) float64 {
	return s2.LatLngFromDegrees(a[1], a[0]).Distance(s2.LatLngFromDegrees(b[1], b[0])).Degrees()
}
