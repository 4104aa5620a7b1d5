// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mapui provides helpers for the interactive parts of a map:
// style transforms, the arithmetic needed to translate between mouse and
// map coordinates when dragging or zooming, and injecting the current
// projection and zoom into the children of a zoomable group.
package mapui

import "maps"

// Styles represents a set of style properties, keyed by property name.
type Styles map[string]string

const (
	strokeWidthProperty = "strokeWidth"
	fillProperty        = "fill"
)

// ReplaceStrokeWidth returns a copy of styles with any strokeWidth
// property set to "inherit".
func ReplaceStrokeWidth(styles Styles) Styles {
	out := maps.Clone(styles)
	if _, ok := out[strokeWidthProperty]; ok {
		out[strokeWidthProperty] = "inherit"
	}
	return out
}

// ChoroplethValue represents the value assigned to a region of a
// choropleth map.
type ChoroplethValue struct {
	Value string
}

// CreateChoroplethStyles returns a copy of styles with the fill property,
// if present, replaced by the choropleth value. styles is returned as is
// if value is nil.
func CreateChoroplethStyles(styles Styles, value *ChoroplethValue) Styles {
	if value == nil {
		return styles
	}
	out := maps.Clone(styles)
	if _, ok := out[fillProperty]; ok {
		out[fillProperty] = value.Value
	}
	return out
}
