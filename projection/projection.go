// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package projection provides the map projections used to draw geographic
// shapes on a plane. A Projection rotates the sphere, applies a raw
// projection, and then scales and translates the result into screen
// coordinates with y increasing downwards, as used by SVG.
package projection

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Projection is the capability required by the overlay and the mouse
// position helpers: map a geographic point (longitude, latitude in
// degrees) to planar coordinates and query or set the current rotation.
type Projection interface {
	Project(p orb.Point) orb.Point
	Rotation() Rotation
	// WithRotation returns a copy of the projection that uses the
	// specified rotation. The receiver is not modified.
	WithRotation(r Rotation) Projection
}

// Kind identifies one of the supported projections.
type Kind int

const (
	Equirectangular Kind = iota
	Mercator
	Orthographic
)

var kindNames = []string{"equirectangular", "mercator", "orthographic"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the specified name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported projection: %q", name)
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	scale     float64
	translate orb.Point
	rotate    Rotation
}

// WithScale sets the scale factor, the number of screen units per
// radian at the center of the projection.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithTranslate sets the screen location of the projection's center.
func WithTranslate(x, y float64) Option {
	return func(o *options) {
		o.translate = orb.Point{x, y}
	}
}

// WithRotation sets the initial rotation.
func WithRotation(r Rotation) Option {
	return func(o *options) {
		o.rotate = r
	}
}

// Fit returns options that scale and center the projection so that the
// whole world fits within a width by height viewport.
func Fit(kind Kind, width, height float64) []Option {
	scale := width / (2 * math.Pi)
	switch kind {
	case Equirectangular:
		scale = math.Min(scale, height/math.Pi)
	case Orthographic:
		scale = math.Min(width, height) / 2
	}
	return []Option{WithScale(scale), WithTranslate(width/2, height/2)}
}

type raw func(lambda, phi float64) (x, y float64)

// Planar implements Projection for the supported projection kinds.
type Planar struct {
	kind Kind
	raw  raw
	options
}

// New returns a new projection of the specified kind. The default scale
// is 150 and the default translation is (480, 250).
func New(kind Kind, opts ...Option) *Planar {
	p := &Planar{kind: kind}
	p.scale = 150
	p.translate = orb.Point{480, 250}
	for _, fn := range opts {
		fn(&p.options)
	}
	switch kind {
	case Mercator:
		p.raw = mercatorRaw
	case Orthographic:
		p.raw = orthographicRaw
	default:
		p.kind = Equirectangular
		p.raw = equirectangularRaw
	}
	return p
}

// Kind returns the kind of the projection.
func (p *Planar) Kind() Kind {
	return p.kind
}

// Scale returns the projection's scale factor.
func (p *Planar) Scale() float64 {
	return p.scale
}

// Translate returns the projection's translation.
func (p *Planar) Translate() orb.Point {
	return p.translate
}

// Project implements Projection.
func (p *Planar) Project(pt orb.Point) orb.Point {
	lambda, phi := p.rotate.apply(pt[0]*radians, pt[1]*radians)
	x, y := p.raw(lambda, phi)
	return orb.Point{p.translate[0] + p.scale*x, p.translate[1] - p.scale*y}
}

// Rotation implements Projection.
func (p *Planar) Rotation() Rotation {
	return p.rotate
}

// WithRotation implements Projection.
func (p *Planar) WithRotation(r Rotation) Projection {
	cpy := *p
	cpy.rotate = r
	return &cpy
}

// Func returns the projection as an orb.Projection for use with
// the orb/project package.
func (p *Planar) Func() orb.Projection {
	return p.Project
}

func equirectangularRaw(lambda, phi float64) (float64, float64) {
	return lambda, phi
}

// orthographicRaw clamps points on the far side of the globe onto the
// horizon so that outlines which cross it follow the limb.
func orthographicRaw(lambda, phi float64) (float64, float64) {
	cosPhi := math.Cos(phi)
	x := cosPhi * math.Sin(lambda)
	y := math.Sin(phi)
	if cosPhi*math.Cos(lambda) >= 0 {
		return x, y
	}
	r := math.Hypot(x, y)
	if r == 0 {
		return 1, 0
	}
	return x / r, y / r
}
