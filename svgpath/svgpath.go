// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package svgpath provides support for creating and manipulating SVG
// path data strings.
package svgpath

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// FormatNumber formats v in its shortest decimal representation.
func FormatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round rounds v to the nearest multiple of precision with halves
// rounded up. A precision of zero or less leaves v unchanged.
func Round(v, precision float64) float64 {
	if precision <= 0 {
		return v
	}
	inv := 1 / precision
	return math.Floor(v*inv+0.5) / inv
}

var numberRE = regexp.MustCompile(`[\d\.-][\d\.e-]*`)

// RoundPath rounds every number in the path data string to the nearest
// multiple of precision. Tokens that look numeric but cannot be parsed,
// for example "1-2", are left unchanged.
func RoundPath(path string, precision float64) string {
	if len(path) == 0 || precision <= 0 {
		return path
	}
	return numberRE.ReplaceAllStringFunc(path, func(tok string) string {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return tok
		}
		return FormatNumber(Round(v, precision))
	})
}

// ConnectorPath returns a quadratic bezier from the origin to endPoint
// whose control point is placed according to curve. A curve of zero
// places the control point half way along the diagonal, positive values
// bend the connector towards the x axis.
func ConnectorPath(endPoint orb.Point, curve float64) string {
	e0, e1 := endPoint[0], endPoint[1]
	f := (curve + 1) / 2
	var b strings.Builder
	b.WriteString("M0,0 Q ")
	b.WriteString(FormatNumber(f * e0))
	b.WriteByte(',')
	b.WriteString(FormatNumber(e1 - f*e1))
	b.WriteByte(' ')
	b.WriteString(FormatNumber(e0))
	b.WriteByte(',')
	b.WriteString(FormatNumber(e1))
	return b.String()
}

// TextAnchor returns the SVG text-anchor to use for a label displaced
// horizontally by dx from the point it annotates.
func TextAnchor(dx float64) string {
	switch {
	case dx > 0:
		return "start"
	case dx < 0:
		return "end"
	default:
		return "middle"
	}
}
