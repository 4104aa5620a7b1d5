// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package places provides postal code lookups using data from
// www.geonames.org and parsing of explicit coordinates, yielding
// astronomy.Place values.
package places

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/mapviz/astronomy"
	"github.com/paulmach/orb"
)

// DB represents a postal code database.
type DB struct {
	lookup map[string]astronomy.Place
}

// NewDB returns a new, empty, DB.
func NewDB() *DB {
	return &DB{lookup: make(map[string]astronomy.Place)}
}

// Len returns the number of postal codes in the database.
func (db *DB) Len() int {
	return len(db.lookup)
}

// Lookup returns the place for the specified admin code and postal code
// (eg. AK 99553). GB and CA postal codes come in two formats, either the
// short form or long form:
//
//	GB: ENG BN91, or ENG "BN91 9AA".
//	CA: AB T0A, or AB "T0A 0A0".
func (db *DB) Lookup(admin, postal string) (astronomy.Place, bool) {
	p, ok := db.lookup[admin+" "+postal]
	return p, ok
}

// LoadFile loads the named geonames postal code file.
func (db *DB) LoadFile(ctx context.Context, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := db.Load(data); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("loaded postal codes", "file", filename, "entries", db.Len())
	return nil
}

// Load loads geonames postal code data, a tab separated file with 12
// fields per line.
func (db *DB) Load(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if len(scanner.Text()) == 0 {
			continue
		}
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 12 {
			return fmt.Errorf("invalid line, wrong number of fields: (%v != 12) %v", len(parts), scanner.Text())
		}
		ll, err := parseLatLong(parts[9], parts[10])
		if err != nil {
			return err
		}
		db.lookup[parts[4]+" "+parts[1]] = astronomy.Place{
			Name:      parts[2],
			Latitude:  ll[1],
			Longitude: ll[0],
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}
	return nil
}

func parseLatLong(latStr, longStr string) (orb.Point, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("invalid latitude: %v: %w", latStr, err)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(longStr), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("invalid longitude: %v: %w", longStr, err)
	}
	if lat < -90 || lat > 90 {
		return orb.Point{}, fmt.Errorf("latitude out of range: %v", lat)
	}
	if long < -180 || long > 180 {
		return orb.Point{}, fmt.Errorf("longitude out of range: %v", long)
	}
	return orb.Point{long, lat}, nil
}

// ParseLatLong parses a "latitude,longitude" pair in degrees.
func ParseLatLong(s string) (astronomy.Place, error) {
	latStr, longStr, ok := strings.Cut(s, ",")
	if !ok {
		return astronomy.Place{}, fmt.Errorf("expected latitude,longitude: %q", s)
	}
	ll, err := parseLatLong(latStr, longStr)
	if err != nil {
		return astronomy.Place{}, err
	}
	return astronomy.Place{Name: s, Latitude: ll[1], Longitude: ll[0]}, nil
}

// Resolve returns the place named by spec, which is either a
// "latitude,longitude" pair or an admin and postal code separated by a
// space (eg. "AK 99553") to be looked up in db.
func (db *DB) Resolve(spec string) (astronomy.Place, error) {
	if p, err := ParseLatLong(spec); err == nil {
		return p, nil
	}
	admin, postal, ok := strings.Cut(strings.TrimSpace(spec), " ")
	if !ok {
		return astronomy.Place{}, fmt.Errorf("unrecognised place: %q", spec)
	}
	p, ok := db.Lookup(admin, strings.TrimSpace(postal))
	if !ok {
		return astronomy.Place{}, fmt.Errorf("unknown postal code: %q", spec)
	}
	return p, nil
}
