// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mapui

import (
	"fmt"

	"cloudeng.io/mapviz/projection"
	"github.com/paulmach/orb"
)

// Axis selects a screen axis.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// CalculateResizeFactor returns the factor by which a map rendered at
// baseDimension has been scaled to be displayed at actualDimension.
func CalculateResizeFactor(actualDimension, baseDimension float64) float64 {
	return baseDimension / actualDimension
}

// CalculateMousePosition returns the position along axis, in screen
// units, of the map center relative to the middle of a width by height
// viewport, scaled by zoom and resizeFactor. The calculation is made
// with the rotation of proj undone.
func CalculateMousePosition(axis Axis, proj projection.Projection, center orb.Point, width, height, zoom, resizeFactor float64) float64 {
	unrotated := proj.WithRotation(proj.Rotation().Negate())
	p := unrotated.Project(orb.Point{-center[0], -center[1]})
	half := width / 2
	if axis == Y {
		half = height / 2
	}
	return (p[axis] - half) * zoom * (1 / resizeFactor)
}
