// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mapui

import (
	"fmt"

	"cloudeng.io/mapviz/projection"
)

// ChildKind identifies the kind of a child of a zoomable group.
type ChildKind int

const (
	Other ChildKind = iota
	Geographies
	Markers
	Annotations
	Annotation
	Graticule
)

var childKindNames = map[ChildKind]string{
	Other:       "Other",
	Geographies: "Geographies",
	Markers:     "Markers",
	Annotations: "Annotations",
	Annotation:  "Annotation",
	Graticule:   "Graticule",
}

func (k ChildKind) String() string {
	if n, ok := childKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ChildKind(%d)", int(k))
}

// ChildKindFor returns the kind for a component identifier, Other if
// the identifier is not recognized.
func ChildKindFor(identifier string) ChildKind {
	for k, n := range childKindNames {
		if k != Other && n == identifier {
			return k
		}
	}
	return Other
}

// zoomable returns true for the kinds that are drawn in projected
// coordinates and scale with the zoom.
func (k ChildKind) zoomable() bool {
	switch k {
	case Markers, Annotations, Annotation, Graticule:
		return true
	}
	return false
}

// Child represents a child of a zoomable group.
type Child struct {
	Kind       ChildKind
	Key        string
	Projection projection.Projection
	Zoom       float64
	Props      map[string]any
}

// ZoomProps are the properties that a zoomable group passes on to its
// children.
type ZoomProps struct {
	Projection projection.Projection
	Zoom       float64
}

// InjectChildProps returns children with the projection, and for the
// zoomable kinds the zoom, from props applied. Children of other kinds
// are returned as is and nil children remain nil. When there is more than
// one child each modified child is keyed as "zoomable-child-<index>".
// The children themselves are not modified.
func InjectChildProps(children []*Child, props ZoomProps) []*Child {
	if len(children) == 0 {
		return nil
	}
	keyed := len(children) > 1
	out := make([]*Child, len(children))
	for i, c := range children {
		if c == nil {
			continue
		}
		if c.Kind != Geographies && !c.Kind.zoomable() {
			out[i] = c
			continue
		}
		nc := *c
		nc.Projection = props.Projection
		if c.Kind.zoomable() {
			nc.Zoom = props.Zoom
		}
		if keyed {
			nc.Key = fmt.Sprintf("zoomable-child-%d", i)
		}
		out[i] = &nc
	}
	return out
}
