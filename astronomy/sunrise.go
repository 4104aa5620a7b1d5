// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"github.com/golang/geo/s2"
	"github.com/nathan-osman/go-sunrise"
	"github.com/paulmach/orb"
)

// Place represents a named location on the earth's surface and the
// time zone used to report times for it.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
	Location  *time.Location
}

// Point returns the place's location as an orb.Point.
func (p Place) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

func (p Place) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// SunRiseAndSet returns the time of sunrise and sunset for the calendar
// date of date, as observed in the place's time zone. The returned
// times are in the place's time zone. Both times are the zero time.Time
// when the sun does not rise or set on that date.
func SunRiseAndSet(date time.Time, place Place) (rise, set time.Time) {
	loc := place.location()
	date = date.In(loc)
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}
	}
	return rise.In(loc), set.In(loc)
}

// SolarElevation returns the geometric elevation of the sun, in degrees,
// above the horizon at p at time t. Atmospheric refraction is ignored.
func SolarElevation(p orb.Point, t time.Time) float64 {
	ss := SolarPosition(t)
	here := s2.LatLngFromDegrees(p[1], p[0])
	sun := s2.LatLngFromDegrees(ss[1], ss[0])
	return 90 - here.Distance(sun).Degrees()
}

// IsDaylight returns true if the sun is above the horizon at the place
// at time t. It agrees with the night hemisphere drawn by the terminator
// overlay rather than with SunRiseAndSet, which allows for refraction and
// the sun's disc.
func IsDaylight(place Place, t time.Time) bool {
	return SolarElevation(place.Point(), t) > 0
}
