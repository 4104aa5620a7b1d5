// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nightserver provides HTTP handlers that serve the night
// overlay as SVG and GeoJSON along with the solar position and daylight
// information for places.
package nightserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/mapviz/astronomy"
	"cloudeng.io/mapviz/night"
	"cloudeng.io/mapviz/places"
	"cloudeng.io/mapviz/projection"
	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 500
	maxDimension  = 10000
)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	clock    func() time.Time
	places   *places.DB
	registry *prometheus.Registry
}

// WithClock sets the function used to obtain the current time for
// requests that do not specify one.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithPlaces sets the postal code database used to resolve places.
func WithPlaces(db *places.DB) Option {
	return func(o *options) {
		o.places = db
	}
}

// WithRegistry sets the prometheus registry that metrics are registered
// with and served from.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// Server serves the night overlay. Requests for /night.svg without
// query parameters are served from an overlay that is computed on first
// use and thereafter only when refreshed, see Refresh and RunRefresh.
type Server struct {
	cfg     night.Config
	opts    options
	metrics *metrics
	proj    projection.Projection
	current *night.Overlay
}

// New returns a new Server using cfg for the overlay's defaults.
func New(cfg night.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	proj, err := cfg.NewProjection(DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, proj: proj, current: cfg.NewOverlay()}
	s.opts.clock = time.Now
	for _, fn := range opts {
		fn(&s.opts)
	}
	if s.opts.places == nil {
		s.opts.places = places.NewDB()
	}
	if s.opts.registry == nil {
		s.opts.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.opts.registry)
	return s, nil
}

// Refresh recomputes the overlay served for /night.svg requests that
// have no query parameters.
func (s *Server) Refresh(ctx context.Context) {
	s.observe(s.cfg.Projection.Name, s.current.Recompute(ctx, s.proj, s.opts.clock()))
}

// RunRefresh calls Refresh every interval until ctx is canceled.
func (s *Server) RunRefresh(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *Server) observe(kind string, st night.State) {
	s.metrics.overlays.WithLabelValues(kind).Inc()
	s.metrics.antipode.WithLabelValues("longitude").Set(st.Antipode[0])
	s.metrics.antipode.WithLabelValues("latitude").Set(st.Antipode[1])
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.metrics.instrument)
	router.Get("/night.svg", s.svg)
	router.Get("/night.geojson", s.geojson)
	router.Get("/subsolar", s.subsolar)
	router.Get("/daylight", s.daylight)
	router.Handle("/metrics", s.metrics.handler())
	return router
}

type request struct {
	when          time.Time
	cfg           night.Config
	width, height float64
}

func (s *Server) parse(q url.Values) (request, error) {
	req := request{
		when:   s.opts.clock(),
		cfg:    s.cfg,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	var errs errors.M
	if v := q.Get("t"); len(v) > 0 {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			errs.Append(fmt.Errorf("t: %w", err))
		}
		req.when = t
	}
	if v := q.Get("projection"); len(v) > 0 {
		if _, err := projection.ParseKind(v); err != nil {
			errs.Append(err)
		}
		req.cfg.Projection.Name = v
	}
	dimension := func(name string, def float64) float64 {
		v := q.Get(name)
		if len(v) == 0 {
			return def
		}
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 || d > maxDimension {
			errs.Append(fmt.Errorf("%v: must be a number in the range (0, %v]: %q", name, maxDimension, v))
		}
		return d
	}
	req.width = dimension("width", DefaultWidth)
	req.height = dimension("height", DefaultHeight)
	return req, errs.Err()
}

func badRequest(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (s *Server) svg(w http.ResponseWriter, r *http.Request) {
	req, err := s.parse(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	overlay := s.current
	if len(r.URL.RawQuery) == 0 {
		if !overlay.State().Ready {
			s.observe(req.cfg.Projection.Name, overlay.Mount(r.Context(), s.proj, req.when))
		}
	} else {
		proj, err := req.cfg.NewProjection(req.width, req.height)
		if err != nil {
			badRequest(w, err)
			return
		}
		overlay = req.cfg.NewOverlay()
		s.observe(req.cfg.Projection.Name, overlay.Recompute(r.Context(), proj, req.when))
	}

	var buf bytes.Buffer
	if err := overlay.RenderDocument(&buf, req.width, req.height); err != nil {
		ctxlog.Logger(r.Context()).Error("failed to render overlay", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) geojson(w http.ResponseWriter, r *http.Request) {
	req, err := s.parse(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	buf, err := req.cfg.NewOverlay().Features(req.when).MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(buf)
}

// Subsolar is the response of the /subsolar endpoint.
type Subsolar struct {
	Time     time.Time `json:"time"`
	Subsolar orb.Point `json:"subsolar"`
	Antipode orb.Point `json:"antipode"`
	Meeus    orb.Point `json:"meeus"`
}

func (s *Server) subsolar(w http.ResponseWriter, r *http.Request) {
	req, err := s.parse(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, r, Subsolar{
		Time:     req.when.UTC(),
		Subsolar: astronomy.SolarPosition(req.when),
		Antipode: astronomy.SolarAntipode(req.when),
		Meeus:    astronomy.SubsolarPointMeeus(req.when),
	})
}

// Daylight is the response of the /daylight endpoint.
type Daylight struct {
	Place     string    `json:"place"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Time      time.Time `json:"time"`
	Daylight  bool      `json:"daylight"`
	Elevation float64   `json:"elevation"`
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
	SolarNoon time.Time `json:"solar_noon"`
}

func (s *Server) daylight(w http.ResponseWriter, r *http.Request) {
	req, err := s.parse(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	place, err := s.opts.places.Resolve(r.URL.Query().Get("place"))
	if err != nil {
		badRequest(w, err)
		return
	}
	rise, set := astronomy.SunRiseAndSet(req.when, place)
	writeJSON(w, r, Daylight{
		Place:     place.Name,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Time:      req.when.UTC(),
		Daylight:  astronomy.IsDaylight(place, req.when),
		Elevation: astronomy.SolarElevation(place.Point(), req.when),
		Sunrise:   rise.UTC(),
		Sunset:    set.UTC(),
		SolarNoon: astronomy.SolarNoon(req.when, place).UTC(),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		ctxlog.Logger(r.Context()).Error("failed to encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}
