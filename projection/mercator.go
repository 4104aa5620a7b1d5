// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package projection

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// MaxMercatorLatitude is the latitude at which the web mercator
// projection becomes square; latitudes beyond it are clamped.
const MaxMercatorLatitude = 85.05112878

// webMercatorRadius is the sphere radius, in meters, used by
// project.WGS84.ToMercator.
const webMercatorRadius = 6378137.0

// mercatorRaw uses orb's spherical web mercator and rescales its output
// from meters to radians.
func mercatorRaw(lambda, phi float64) (float64, float64) {
	lat := math.Max(-MaxMercatorLatitude, math.Min(MaxMercatorLatitude, phi*degrees))
	m := project.WGS84.ToMercator(orb.Point{lambda * degrees, lat})
	return m[0] / webMercatorRadius, m[1] / webMercatorRadius
}
