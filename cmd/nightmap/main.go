// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command nightmap renders the day/night terminator as SVG or GeoJSON,
// reports the position of the sun and serves the overlay over HTTP.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: nightmap
summary: render and serve the day/night terminator
commands:
  - name: svg
    summary: write the night overlay as an SVG document
  - name: geojson
    summary: write the night hemisphere, terminator and solar antipode as GeoJSON
  - name: subsolar
    summary: print the sub-solar point and solar antipode
  - name: daylight
    summary: print sunrise, sunset and solar noon for a place given as latitude,longitude or as an admin and postal code
    arguments:
      - <place>
  - name: seasons
    summary: print the solstices and equinoxes for a year
    arguments:
      - "[year]"
  - name: serve
    summary: serve the night overlay over HTTP
  - name: config
    summary: print the overlay configuration with defaults applied
    arguments:
      - "[config-file]"
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{}
	cmdSet.Set("svg").MustRunnerAndFlags(c.svg,
		subcmd.MustRegisteredFlagSet(&svgFlags{}))
	cmdSet.Set("geojson").MustRunnerAndFlags(c.geojson,
		subcmd.MustRegisteredFlagSet(&geojsonFlags{}))
	cmdSet.Set("subsolar").MustRunnerAndFlags(c.subsolar,
		subcmd.MustRegisteredFlagSet(&TimeFlags{}))
	cmdSet.Set("daylight").MustRunnerAndFlags(c.daylight,
		subcmd.MustRegisteredFlagSet(&daylightFlags{}))
	cmdSet.Set("seasons").MustRunnerAndFlags(c.seasons,
		subcmd.MustRegisteredFlagSet(&seasonsFlags{}))
	cmdSet.Set("serve").MustRunnerAndFlags(c.serve,
		subcmd.MustRegisteredFlagSet(&serveFlags{}))
	cmdSet.Set("config").MustRunnerAndFlags(c.config,
		subcmd.MustRegisteredFlagSet(&configFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
