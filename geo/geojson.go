// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package geo

import (
	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// HemisphereFeatures returns a feature collection containing the
// hemisphere centered on center as a polygon, its boundary as a
// multi-line string split at the antimeridian, and the center itself.
// Each feature has a "kind" property of "hemisphere", "boundary" or
// "center" respectively.
func HemisphereFeatures(center orb.Point, precision float64) *geojson.FeatureCollection {
	var identity projection.Rotation
	fc := geojson.NewFeatureCollection()

	hemisphere := geojson.NewFeature(Hemisphere(center, identity, precision))
	hemisphere.Properties["kind"] = "hemisphere"
	fc.Append(hemisphere)

	ring := Circle{Center: center, Radius: 90, Precision: precision}.Ring()
	boundary := geojson.NewFeature(SplitAntimeridian(orb.LineString(ring), identity))
	boundary.Properties["kind"] = "boundary"
	fc.Append(boundary)

	c := geojson.NewFeature(center)
	c.Properties["kind"] = "center"
	fc.Append(c)
	return fc
}
