// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// Event is one of the two equinoxes or two solstices.
type Event int

const (
	SpringEquinox Event = iota
	SummerSolstice
	AutumnEquinox
	WinterSolstice
)

var eventNames = [...]string{"SpringEquinox", "SummerSolstice", "AutumnEquinox", "WinterSolstice"}

var eventJDE = [...]func(int) float64{solstice.March, solstice.June, solstice.September, solstice.December}

func (e Event) String() string {
	if !e.valid() {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// In returns the UTC instant of the event in year. The underlying series
// yields terrestrial time which differs from UTC by about a minute. The
// zero time.Time is returned for an unknown event.
func (e Event) In(year int) time.Time {
	if !e.valid() {
		return time.Time{}
	}
	return julian.JDToTime(eventJDE[e](year)).UTC()
}

func (e Event) valid() bool {
	return e >= SpringEquinox && e <= WinterSolstice
}

// next returns the event that follows e, and whether it falls in the
// following year.
func (e Event) next() (Event, bool) {
	if e == WinterSolstice {
		return SpringEquinox, true
	}
	return e + 1, false
}

// Events returns the equinoxes and solstices in calendar order.
func Events() []Event {
	return []Event{SpringEquinox, SummerSolstice, AutumnEquinox, WinterSolstice}
}

// Period represents the interval [From, To).
type Period struct {
	From, To time.Time
}

// Contains returns true if t is within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && t.Before(p.To)
}

// Season is a northern hemisphere season that runs from its starting
// event to the next one.
type Season struct {
	Name  string
	Start Event
}

// In returns the period of the season that starts in year. Winter ends
// in the following year.
func (s Season) In(year int) Period {
	if !s.Start.valid() {
		return Period{}
	}
	end, wraps := s.Start.next()
	endYear := year
	if wraps {
		endYear++
	}
	return Period{From: s.Start.In(year), To: end.In(endYear)}
}

var (
	Spring = Season{Name: "Spring", Start: SpringEquinox}
	Summer = Season{Name: "Summer", Start: SummerSolstice}
	Autumn = Season{Name: "Autumn", Start: AutumnEquinox}
	Winter = Season{Name: "Winter", Start: WinterSolstice}
)

// Seasons returns the seasons that start in a year, in calendar order.
func Seasons() []Season {
	return []Season{Spring, Summer, Autumn, Winter}
}
