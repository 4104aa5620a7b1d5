// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
)

// edge is how close, in degrees, generated vertices come to the
// antimeridian and the poles of a rotated frame. Vertices exactly on
// them do not survive a round trip through a rotation.
const edge = 1e-6

// minCenterLatitude avoids the degenerate case of a hemisphere centered
// on the equator, whose boundary is a pair of meridians.
const minCenterLatitude = 1e-6

// Hemisphere returns the polygon covering the hemisphere centered on
// center as seen in the frame of the rotation rot. The polygon's boundary
// is the great circle 90° from center, sampled every step degrees of
// longitude in the rotated frame, closed along the frame's antimeridian
// and pole. Its coordinates are geographic (un-rotated) so that projecting
// them with a projection using rot yields a shape that never crosses the
// projection's antimeridian. step defaults to DefaultPrecision.
func Hemisphere(center orb.Point, rot projection.Rotation, step float64) orb.Polygon {
	if step <= 0 {
		step = DefaultPrecision
	}
	c := rot.Apply(center)
	lambdaC, phiC := c[0]*radians, c[1]*radians
	north := phiC >= 0
	if math.Abs(phiC) < minCenterLatitude*radians {
		phiC = minCenterLatitude * radians
		if !north {
			phiC = -phiC
		}
	}
	tanC := math.Tan(phiC)

	west, east := -180+edge, 180-edge
	n := int(math.Ceil((east - west) / step))
	ring := make(orb.Ring, 0, n+4)
	for i := 0; i <= n; i++ {
		lambda := west + (east-west)*float64(i)/float64(n)
		phi := math.Atan(-math.Cos(lambda*radians-lambdaC) / tanC)
		ring = append(ring, orb.Point{lambda, phi * degrees})
	}
	pole := 90 - edge
	if !north {
		pole = -pole
	}
	ring = append(ring, orb.Point{east, pole}, orb.Point{west, pole}, ring[0])
	if !north {
		ring.Reverse()
	}
	invert(ring, rot)
	return orb.Polygon{ring}
}

// SplitAntimeridian splits ls wherever it crosses the antimeridian of the
// frame of the rotation rot. The crossing points are interpolated so
// that the pieces meet the edges of a cylindrical projection. Vertices
// that lie on the antimeridian are moved just inside the frame, on the
// side of the neighbouring vertex, rather than starting a new piece.
// The returned coordinates are geographic.
func SplitAntimeridian(ls orb.LineString, rot projection.Rotation) orb.MultiLineString {
	if len(ls) == 0 {
		return nil
	}
	frame := make(orb.LineString, len(ls))
	for i, p := range ls {
		frame[i] = rot.Apply(p)
	}
	out := splitFrame(frame)
	for _, line := range out {
		invert(line, rot)
	}
	return out
}

func invert(pts []orb.Point, rot projection.Rotation) {
	for i, p := range pts {
		pts[i] = rot.Invert(p)
	}
}

// splitFrame splits a line given in the coordinates of a rotated frame at
// the frame's antimeridian.
func splitFrame(frame orb.LineString) orb.MultiLineString {
	var (
		out     orb.MultiLineString
		current orb.LineString
	)
	prev := frame[0]
	current = append(current, prev)
	for _, next := range frame[1:] {
		if math.Abs(next[0]-prev[0]) > 180 {
			switch {
			case onSeam(next):
				next[0] = seamSide(prev[0])
			case onSeam(prev):
				if len(current) == 1 {
					current[0][0] = seamSide(next[0])
					break
				}
				current[len(current)-1][0] = seamSide(current[len(current)-2][0])
				out = append(out, current)
				current = orb.LineString{{seamSide(next[0]), prev[1]}}
			default:
				current, out = splitAt(current, out, prev, next)
			}
		}
		current = append(current, next)
		prev = next
	}
	out = append(out, current)
	for _, line := range out {
		snapToSeam(line)
	}
	return out
}

// splitAt ends current where the segment from prev to next crosses the
// antimeridian and returns the piece that continues on the other side.
func splitAt(current orb.LineString, out orb.MultiLineString, prev, next orb.Point) (orb.LineString, orb.MultiLineString) {
	span := (180 - math.Abs(prev[0])) + (180 - math.Abs(next[0]))
	f := 0.5
	if span > 0 {
		f = (180 - math.Abs(prev[0])) / span
	}
	lat := prev[1] + f*(next[1]-prev[1])
	current = append(current, orb.Point{seamSide(prev[0]), lat})
	out = append(out, current)
	return orb.LineString{{seamSide(next[0]), lat}}, out
}

// onSeam returns true if lon lies on the antimeridian to within edge.
func onSeam(p orb.Point) bool {
	return math.Abs(p[0]) >= 180-edge
}

// seamSide returns the longitude just inside the antimeridian on the
// same side as lon.
func seamSide(lon float64) float64 {
	if lon < 0 {
		return -(180 - edge)
	}
	return 180 - edge
}

// snapToSeam moves vertices on the antimeridian just inside the frame on
// the side of their neighbour within line.
func snapToSeam(line orb.LineString) {
	if len(line) < 2 {
		return
	}
	for i, p := range line {
		if !onSeam(p) {
			continue
		}
		nb := line[1]
		if i > 0 {
			nb = line[i-1]
		}
		if onSeam(nb) && i+1 < len(line) {
			nb = line[i+1]
		}
		line[i][0] = seamSide(nb[0])
	}
}
