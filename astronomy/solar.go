// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides low precision solar ephemeris calculations
// suitable for drawing the day/night terminator on a map, along with
// seasonal dates and sunrise/sunset times.
//
// The solar position follows NOAA's solar calculator
// (https://gml.noaa.gov/grad/solcalc/), all internal angles are in radians.
package astronomy

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/soniakeys/unit"
)

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi

	millisPerDay   = 864e5
	daysPerCentury = 36525
)

// J2000 is the standard astronomical reference epoch, 2000-01-01T12:00 UTC.
var J2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// JulianCenturies returns the number of Julian centuries between J2000
// and t.
func JulianCenturies(t time.Time) float64 {
	return float64(t.Sub(J2000).Milliseconds()) / millisPerDay / daysPerCentury
}

// SolarPosition returns the geographic location of the sub-solar point
// at time t, that is the point on the earth's surface where the sun is at
// the zenith. The longitude is normalized to [-180, 180).
func SolarPosition(t time.Time) orb.Point {
	return NormalizePoint(solarPosition(t))
}

// SolarAntipode returns the point diametrically opposite to the sub-solar
// point at time t. It is the center of the night hemisphere. The longitude
// is normalized to [-180, 180).
func SolarAntipode(t time.Time) orb.Point {
	return NormalizePoint(Antipode(solarPosition(t)))
}

// Antipode returns the point on the opposite side of the globe to p.
// The longitude is not normalized.
func Antipode(p orb.Point) orb.Point {
	return orb.Point{p[0] + 180, -p[1]}
}

// NormalizeLongitude maps lon, in degrees, into [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	return unit.PMod(lon+180, 360) - 180
}

// NormalizePoint returns p with its longitude normalized to [-180, 180).
func NormalizePoint(p orb.Point) orb.Point {
	return orb.Point{NormalizeLongitude(p[0]), p[1]}
}

// solarPosition returns the un-normalized sub-solar point; the longitude
// lies in [-540, -180].
func solarPosition(t time.Time) orb.Point {
	t = t.UTC()
	c := JulianCenturies(t)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	longitude := float64(midnight.Sub(t).Milliseconds())/millisPerDay*360 - 180
	return orb.Point{
		longitude - EquationOfTime(c)*degrees,
		Declination(c) * degrees,
	}
}

// EquationOfTime returns the difference, in radians, between apparent
// and mean solar time at c Julian centuries since J2000.
func EquationOfTime(c float64) float64 {
	e := eccentricityEarthOrbit(c)
	m := solarGeometricMeanAnomaly(c)
	l := solarGeometricMeanLongitude(c)
	y := math.Tan(obliquityCorrection(c) / 2)
	y *= y
	return y*math.Sin(2*l) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l) -
		0.5*y*y*math.Sin(4*l) -
		1.25*e*e*math.Sin(2*m)
}

// Declination returns the sun's declination, in radians, at c Julian
// centuries since J2000.
func Declination(c float64) float64 {
	return math.Asin(math.Sin(obliquityCorrection(c)) * math.Sin(solarApparentLongitude(c)))
}

// moonNode is the longitude of the ascending node of the moon's orbit, in
// degrees, used for the nutation and aberration corrections.
func moonNode(c float64) float64 {
	return 125.04 - 1934.136*c
}

func solarApparentLongitude(c float64) float64 {
	return solarTrueLongitude(c) - (0.00569+0.00478*math.Sin(moonNode(c)*radians))*radians
}

func solarTrueLongitude(c float64) float64 {
	return solarGeometricMeanLongitude(c) + solarEquationOfCenter(c)
}

func solarGeometricMeanAnomaly(c float64) float64 {
	return (357.52911 + c*(35999.05029-0.0001537*c)) * radians
}

func solarGeometricMeanLongitude(c float64) float64 {
	l := unit.PMod(280.46646+c*(36000.76983+c*0.0003032), 360)
	return unit.AngleFromDeg(l).Rad()
}

func solarEquationOfCenter(c float64) float64 {
	m := solarGeometricMeanAnomaly(c)
	return (math.Sin(m)*(1.914602-c*(0.004817+0.000014*c)) +
		math.Sin(m+m)*(0.019993-0.000101*c) +
		math.Sin(m+m+m)*0.000289) * radians
}

func obliquityCorrection(c float64) float64 {
	return meanObliquityOfEcliptic(c) + 0.00256*math.Cos(moonNode(c)*radians)*radians
}

// meanObliquityOfEcliptic is 23°26′21.448″ less the secular correction
// terms, in radians.
func meanObliquityOfEcliptic(c float64) float64 {
	seconds := 21.448 - c*(46.8150+c*(0.00059-c*0.001813))
	return unit.FromSexa(' ', 23, 26, seconds) * radians
}

func eccentricityEarthOrbit(c float64) float64 {
	return 0.016708634 - c*(0.000042037+0.0000001267*c)
}
