// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/paulmach/orb"
)

// SubsolarPointMeeus returns the sub-solar point at time t computed from
// the sun's apparent equatorial coordinates and Greenwich apparent sidereal
// time as given in Meeus' Astronomical Algorithms. It is more expensive
// and somewhat more accurate than SolarPosition and is intended for
// validating it. The difference between terrestrial and universal time
// (about a minute) is ignored.
func SubsolarPointMeeus(t time.Time) orb.Point {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	gast := sidereal.Apparent(jd)
	return orb.Point{
		NormalizeLongitude(ra.Angle().Deg() - gast.Angle().Deg()),
		dec.Deg(),
	}
}
