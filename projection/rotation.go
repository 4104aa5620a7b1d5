// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package projection

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// Rotation represents a rotation of the sphere expressed as three angles
// in degrees: lambda (yaw about the polar axis), phi (pitch) and gamma
// (roll), applied in that order. Rotating by lambda moves the point at
// longitude -lambda to the center of the map.
type Rotation [3]float64

// Negate returns the rotation with each of its angles negated.
func (r Rotation) Negate() Rotation {
	return Rotation{-r[0], -r[1], -r[2]}
}

// IsZero returns true if r is the identity rotation.
func (r Rotation) IsZero() bool {
	return r == Rotation{}
}

// Apply rotates the geographic point p, in degrees.
func (r Rotation) Apply(p orb.Point) orb.Point {
	lambda, phi := r.apply(p[0]*radians, p[1]*radians)
	return orb.Point{lambda * degrees, phi * degrees}
}

// Invert applies the inverse of r to p, so that
// r.Invert(r.Apply(p)) == p to within floating point error.
func (r Rotation) Invert(p orb.Point) orb.Point {
	lambda, phi := r.invert(p[0]*radians, p[1]*radians)
	return orb.Point{lambda * degrees, phi * degrees}
}

// wrapRadians maps lambda into [-π, π], values within rounding error of
// ±π are left as is.
func wrapRadians(lambda float64) float64 {
	const epsilon = 1e-12
	if lambda >= -math.Pi-epsilon && lambda <= math.Pi+epsilon {
		return lambda
	}
	lambda = math.Mod(lambda+math.Pi, 2*math.Pi)
	if lambda < 0 {
		lambda += 2 * math.Pi
	}
	return lambda - math.Pi
}

func (r Rotation) apply(lambda, phi float64) (float64, float64) {
	lambda = wrapRadians(lambda + r[0]*radians)
	if r[1] == 0 && r[2] == 0 {
		return lambda, phi
	}
	sinDPhi, cosDPhi := math.Sincos(r[1] * radians)
	sinDGamma, cosDGamma := math.Sincos(r[2] * radians)
	cosPhi := math.Cos(phi)
	x := math.Cos(lambda) * cosPhi
	y := math.Sin(lambda) * cosPhi
	z := math.Sin(phi)
	k := z*cosDPhi + x*sinDPhi
	return math.Atan2(y*cosDGamma-k*sinDGamma, x*cosDPhi-z*sinDPhi),
		asin(k*cosDGamma + y*sinDGamma)
}

func (r Rotation) invert(lambda, phi float64) (float64, float64) {
	if r[1] != 0 || r[2] != 0 {
		sinDPhi, cosDPhi := math.Sincos(r[1] * radians)
		sinDGamma, cosDGamma := math.Sincos(r[2] * radians)
		cosPhi := math.Cos(phi)
		x := math.Cos(lambda) * cosPhi
		y := math.Sin(lambda) * cosPhi
		z := math.Sin(phi)
		k := z*cosDGamma - y*sinDGamma
		lambda = math.Atan2(y*cosDGamma+z*sinDGamma, x*cosDPhi+k*sinDPhi)
		phi = asin(k*cosDPhi - x*sinDPhi)
	}
	return wrapRadians(lambda - r[0]*radians), phi
}

// asin clamps its argument to [-1, 1] to absorb rounding error.
func asin(x float64) float64 {
	switch {
	case x > 1:
		return math.Pi / 2
	case x < -1:
		return -math.Pi / 2
	}
	return math.Asin(x)
}
