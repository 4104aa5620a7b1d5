// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"
)

// ApparentSolarNoon returns the mid-point between sunrise and sunset for
// the calendar date of date at the specified place. It returns the zero
// time.Time if the sun does not rise or set on that date.
func ApparentSolarNoon(date time.Time, place Place) time.Time {
	rise, set := SunRiseAndSet(date, place)
	if rise.IsZero() {
		return rise
	}
	return rise.Add(set.Sub(rise) / 2).In(place.location())
}

// SolarNoon returns the time at which the sun crosses the meridian at
// the place on the calendar date of date, computed from the equation of
// time. Unlike ApparentSolarNoon it is defined within the polar circles.
func SolarNoon(date time.Time, place Place) time.Time {
	loc := place.location()
	date = date.In(loc)
	anchor := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc).UTC()
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	// Evaluate the equation of time a second time, closer to the result.
	noon := day.Add(noonOffset(anchor, place.Longitude))
	noon = day.Add(noonOffset(noon, place.Longitude))
	switch d := noon.Sub(anchor); {
	case d > 12*time.Hour:
		noon = noon.Add(-24 * time.Hour)
	case d < -12*time.Hour:
		noon = noon.Add(24 * time.Hour)
	}
	return noon.In(loc)
}

// noonOffset returns the offset from UTC midnight of solar noon at
// longitude lon using the equation of time evaluated at t.
func noonOffset(t time.Time, lon float64) time.Duration {
	minutes := 720 - 4*lon - EquationOfTime(JulianCenturies(t))*degrees*4
	return time.Duration(math.Round(minutes * float64(time.Minute)))
}
