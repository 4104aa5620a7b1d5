// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package night provides an overlay that shades the part of a map that is
// in darkness, that is, the hemisphere centered on the solar antipode.
// The overlay renders as an SVG group containing the night polygon and
// the terminator.
package night

import (
	"context"
	"fmt"
	"html"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/mapviz/astronomy"
	"cloudeng.io/mapviz/geo"
	"cloudeng.io/mapviz/projection"
	"cloudeng.io/mapviz/svgpath"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	// ComponentIdentifier identifies the overlay amongst the children of
	// a map.
	ComponentIdentifier = "Night"
	// GroupClass is the class of the SVG group the overlay renders.
	GroupClass = "rsm-night"
	// DefaultFill is the default fill of the night polygon.
	DefaultFill = "rgb(0,0,0,0.35)"
	// DefaultStroke is the default stroke for both paths.
	DefaultStroke = "#000"
)

// Style controls the appearance of the overlay. Fill is used for the
// night polygon and NightFill for the terminator path, an empty NightFill
// renders as "none". Attrs is rendered as the style attribute of both
// paths.
type Style struct {
	Fill      string
	Stroke    string
	NightFill string
	Attrs     map[string]string
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		Fill:   DefaultFill,
		Stroke: DefaultStroke,
		Attrs:  map[string]string{"pointer-events": "none"},
	}
}

// State is the rendered state of an overlay.
type State struct {
	Ready      bool
	NightPath  string
	CirclePath string
	Antipode   orb.Point
	ComputedAt time.Time
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	style           Style
	alwaysRecompute bool
	precision       float64
	step            float64
}

// WithStyle sets the style of the overlay.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithAlwaysRecompute controls whether Mount recomputes the overlay on
// every call rather than only on the first.
func WithAlwaysRecompute(v bool) Option {
	return func(o *options) {
		o.alwaysRecompute = v
	}
}

// WithPrecision sets the precision that path coordinates are rounded to,
// zero disables rounding.
func WithPrecision(p float64) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithStep sets the angular spacing, in degrees, of the vertices used
// for the terminator, geo.DefaultPrecision if zero.
func WithStep(step float64) Option {
	return func(o *options) {
		o.step = step
	}
}

// Overlay represents the night overlay. It is safe for concurrent use.
type Overlay struct {
	opts  options
	mu    sync.Mutex
	state State
}

// New returns a new overlay that is not yet ready.
func New(opts ...Option) *Overlay {
	o := &Overlay{}
	o.opts.style = DefaultStyle()
	for _, fn := range opts {
		fn(&o.opts)
	}
	return o
}

// Style returns the overlay's style.
func (o *Overlay) Style() Style {
	return o.opts.style
}

// ShouldUpdate returns true if the overlay is recomputed on every Mount.
func (o *Overlay) ShouldUpdate() bool {
	return o.opts.alwaysRecompute
}

// Mount computes the overlay for proj at time now. Only the first call
// computes anything unless the overlay was created WithAlwaysRecompute.
func (o *Overlay) Mount(ctx context.Context, proj projection.Projection, now time.Time) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Ready && !o.opts.alwaysRecompute {
		return o.state
	}
	o.recompute(ctx, proj, now)
	return o.state
}

// Recompute unconditionally computes the overlay for proj at time now.
func (o *Overlay) Recompute(ctx context.Context, proj projection.Projection, now time.Time) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.recompute(ctx, proj, now)
	return o.state
}

func (o *Overlay) recompute(ctx context.Context, proj projection.Projection, now time.Time) {
	center := astronomy.SolarAntipode(now)
	circle := geo.Circle{Center: center, Radius: 90, Precision: o.opts.step}
	gen := svgpath.Generator{Projection: proj, Precision: o.opts.precision}
	o.state = State{
		Ready:      true,
		NightPath:  gen.Polygon(geo.Hemisphere(center, proj.Rotation(), o.opts.step)),
		CirclePath: gen.MultiPolygon(circle.Polygons(proj.Rotation())),
		Antipode:   center,
		ComputedAt: now,
	}
	ctxlog.Logger(ctx).Debug("night overlay computed",
		"time", now,
		"antipode_lon", center[0],
		"antipode_lat", center[1],
		"night_path_bytes", len(o.state.NightPath))
}

// State returns a copy of the overlay's current state.
func (o *Overlay) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Render writes the overlay as an SVG group to w. Nothing is written
// if the overlay is not ready.
func (o *Overlay) Render(w io.Writer) error {
	st := o.State()
	if !st.Ready {
		return nil
	}
	s := o.opts.style
	style := styleAttr(s.Attrs)
	nightFill := s.NightFill
	if len(nightFill) == 0 {
		nightFill = "none"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<g class=%q>`, GroupClass)
	writePath(&sb, s.Fill, s.Stroke, st.NightPath, style)
	writePath(&sb, nightFill, s.Stroke, st.CirclePath, style)
	sb.WriteString("</g>")
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderDocument writes a standalone SVG document of the given size
// containing the overlay.
func (o *Overlay) RenderDocument(w io.Writer, width, height float64) error {
	ws, hs := svgpath.FormatNumber(width), svgpath.FormatNumber(height)
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, ws, hs, ws, hs); err != nil {
		return err
	}
	if err := o.Render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func writePath(sb *strings.Builder, fill, stroke, d, style string) {
	sb.WriteString("<path")
	attr(sb, "fill", fill)
	attr(sb, "stroke", stroke)
	attr(sb, "d", d)
	attr(sb, "style", style)
	sb.WriteString("/>")
}

func attr(sb *strings.Builder, name, value string) {
	if len(value) == 0 {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteByte('"')
}

func styleAttr(attrs map[string]string) string {
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, k+": "+attrs[k])
	}
	return strings.Join(parts, "; ")
}

// Features returns the night hemisphere at time now, its boundary and
// the solar antipode as a GeoJSON feature collection.
func (o *Overlay) Features(now time.Time) *geojson.FeatureCollection {
	fc := geo.HemisphereFeatures(astronomy.SolarAntipode(now), o.opts.step)
	for _, f := range fc.Features {
		f.Properties["time"] = now.UTC().Format(time.RFC3339)
	}
	return fc
}
