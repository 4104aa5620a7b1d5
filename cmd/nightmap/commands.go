// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/mapviz/astronomy"
	"cloudeng.io/mapviz/night"
	"cloudeng.io/mapviz/nightserver"
	"cloudeng.io/mapviz/places"
	"cloudeng.io/sync/errgroup"
	"cloudeng.io/webapp"
	"gopkg.in/yaml.v3"
)

type TimeFlags struct {
	cmdutil.LoggingFlags
	Time string `subcmd:"time,,'time in RFC3339 format, defaults to now'"`
}

type OverlayFlags struct {
	TimeFlags
	Config string `subcmd:"config,,'YAML configuration file for the overlay'"`
}

type svgFlags struct {
	OverlayFlags
	Projection string `subcmd:"projection,,'projection to use: equirectangular, mercator or orthographic, overrides the configuration'"`
	Width      int    `subcmd:"width,960,width of the map"`
	Height     int    `subcmd:"height,500,height of the map"`
	Output     string `subcmd:"output,,'output file, defaults to stdout'"`
}

type geojsonFlags struct {
	OverlayFlags
	Output string `subcmd:"output,,'output file, defaults to stdout'"`
}

type PlaceFlags struct {
	PostalCodes string `subcmd:"postal-codes,,'geonames.org postal code file used to resolve places given as admin and postal codes'"`
}

type daylightFlags struct {
	TimeFlags
	PlaceFlags
	TimeZone string `subcmd:"tz,,'IANA time zone to display times in, defaults to UTC'"`
}

type seasonsFlags struct {
	cmdutil.LoggingFlags
	TimeZone string `subcmd:"tz,,'IANA time zone to display times in, defaults to UTC'"`
}

type serveFlags struct {
	cmdutil.LoggingFlags
	PlaceFlags
	Config  string        `subcmd:"config,,'YAML configuration file for the overlay'"`
	Address string        `subcmd:"http,:8080,address to run the http server on"`
	Refresh time.Duration `subcmd:"refresh,1m,'interval at which the default overlay is recomputed, zero to disable'"`
}

type configFlags struct {
	cmdutil.LoggingFlags
}

type commands struct {
	out io.Writer
}

func (c *commands) stdout() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// withLogger returns a context carrying the logger configured by lf and
// a function to close it.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

func parseTime(v string) (time.Time, error) {
	if len(v) == 0 {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("--time: %w", err)
	}
	return t, nil
}

func loadConfig(ctx context.Context, filename string) (night.Config, error) {
	if len(filename) == 0 {
		return night.DefaultConfig(), nil
	}
	return night.ParseConfigFile(ctx, filename)
}

func loadPlaces(ctx context.Context, pf PlaceFlags) (*places.DB, error) {
	db := places.NewDB()
	if len(pf.PostalCodes) == 0 {
		return db, nil
	}
	return db, db.LoadFile(ctx, pf.PostalCodes)
}

func location(tz string) (*time.Location, error) {
	if len(tz) == 0 {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

func (c *commands) output(filename string, fn func(w io.Writer) error) error {
	if len(filename) == 0 {
		return fn(c.stdout())
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *commands) svg(ctx context.Context, values any, _ []string) error {
	fv := values.(*svgFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	when, err := parseTime(fv.Time)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, fv.Config)
	if err != nil {
		return err
	}
	if len(fv.Projection) > 0 {
		cfg.Projection.Name = fv.Projection
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	width, height := float64(fv.Width), float64(fv.Height)
	proj, err := cfg.NewProjection(width, height)
	if err != nil {
		return err
	}
	overlay := cfg.NewOverlay()
	overlay.Mount(ctx, proj, when)
	return c.output(fv.Output, func(w io.Writer) error {
		return overlay.RenderDocument(w, width, height)
	})
}

func (c *commands) geojson(ctx context.Context, values any, _ []string) error {
	fv := values.(*geojsonFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	when, err := parseTime(fv.Time)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, fv.Config)
	if err != nil {
		return err
	}
	buf, err := cfg.NewOverlay().Features(when).MarshalJSON()
	if err != nil {
		return err
	}
	return c.output(fv.Output, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n", buf)
		return err
	})
}

func (c *commands) subsolar(_ context.Context, values any, _ []string) error {
	fv := values.(*TimeFlags)
	when, err := parseTime(fv.Time)
	if err != nil {
		return err
	}
	ss := astronomy.SolarPosition(when)
	ap := astronomy.SolarAntipode(when)
	mp := astronomy.SubsolarPointMeeus(when)
	out := c.stdout()
	fmt.Fprintf(out, "time:      %v\n", when.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "sub-solar: %.4f %.4f\n", ss[0], ss[1])
	fmt.Fprintf(out, "antipode:  %.4f %.4f\n", ap[0], ap[1])
	fmt.Fprintf(out, "meeus:     %.4f %.4f\n", mp[0], mp[1])
	return nil
}

func (c *commands) daylight(ctx context.Context, values any, args []string) error {
	fv := values.(*daylightFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	when, err := parseTime(fv.Time)
	if err != nil {
		return err
	}
	db, err := loadPlaces(ctx, fv.PlaceFlags)
	if err != nil {
		return err
	}
	place, err := db.Resolve(args[0])
	if err != nil {
		return err
	}
	if place.Location, err = location(fv.TimeZone); err != nil {
		return err
	}
	rise, set := astronomy.SunRiseAndSet(when, place)
	out := c.stdout()
	fmt.Fprintf(out, "place:       %v (%.4f, %.4f)\n", place.Name, place.Latitude, place.Longitude)
	if rise.IsZero() {
		fmt.Fprintf(out, "sunrise:     none\nsunset:      none\n")
	} else {
		fmt.Fprintf(out, "sunrise:     %v\nsunset:      %v\n", rise.Format(time.RFC3339), set.Format(time.RFC3339))
	}
	fmt.Fprintf(out, "solar noon:  %v\n", astronomy.SolarNoon(when, place).Format(time.RFC3339))
	fmt.Fprintf(out, "elevation:   %.2f\n", astronomy.SolarElevation(place.Point(), when))
	fmt.Fprintf(out, "daylight:    %v\n", astronomy.IsDaylight(place, when))
	return nil
}

func (c *commands) seasons(_ context.Context, values any, args []string) error {
	fv := values.(*seasonsFlags)
	loc, err := location(fv.TimeZone)
	if err != nil {
		return err
	}
	year := time.Now().Year()
	if len(args) == 1 {
		if year, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid year: %q: %w", args[0], err)
		}
	}
	out := c.stdout()
	for _, e := range astronomy.Events() {
		fmt.Fprintf(out, "%-16v %v\n", e, e.In(year).In(loc).Format(time.RFC3339))
	}
	for _, s := range astronomy.Seasons() {
		p := s.In(year)
		fmt.Fprintf(out, "%-16v %v - %v\n", s.Name, p.From.In(loc).Format(time.DateOnly), p.To.In(loc).Format(time.DateOnly))
	}
	return nil
}

func (c *commands) serve(ctx context.Context, values any, _ []string) error {
	fv := values.(*serveFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	cfg, err := loadConfig(ctx, fv.Config)
	if err != nil {
		return err
	}
	db, err := loadPlaces(ctx, fv.PlaceFlags)
	if err != nil {
		return err
	}
	srv, err := nightserver.New(cfg, nightserver.WithPlaces(db))
	if err != nil {
		return err
	}
	ln, hs, err := webapp.NewHTTPServer(ctx, nightserver.ListenAddr(fv.Address), srv.Handler())
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("serving night overlay", "addr", ln.Addr().String(), "refresh", fv.Refresh)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return webapp.ServeWithShutdown(ctx, ln, hs, 5*time.Second)
	})
	if fv.Refresh > 0 {
		srv.Refresh(ctx)
		g.Go(func() error {
			return srv.RunRefresh(ctx, fv.Refresh)
		})
	}
	return g.Wait()
}

func (c *commands) config(ctx context.Context, values any, args []string) error {
	fv := values.(*configFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	var filename string
	if len(args) == 1 {
		filename = args[0]
	}
	cfg, err := loadConfig(ctx, filename)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(c.stdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
