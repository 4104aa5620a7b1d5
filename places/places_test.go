// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package places_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/mapviz/astronomy"
	"cloudeng.io/mapviz/places"
)

const sampleData = `
US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	-165.7854	1
GB	BN91	Worthing	England	ENG					50.818	-0.3754	
GB	AL3 8QE	Slip End	England	ENG	Bedfordshire		Central Bedfordshire	E06000056	51.8479	-0.4474	6
`

func TestLookup(t *testing.T) {
	db := places.NewDB()
	if err := db.Load([]byte(sampleData)); err != nil {
		t.Fatalf("failed to load sample data: %v", err)
	}
	if got, want := db.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		admin, postal string
		want          astronomy.Place
	}{
		{"AK", "99553", astronomy.Place{Name: "Akutan", Latitude: 54.143, Longitude: -165.7854}},
		{"ENG", "BN91", astronomy.Place{Name: "Worthing", Latitude: 50.818, Longitude: -0.3754}},
		{"ENG", "AL3 8QE", astronomy.Place{Name: "Slip End", Latitude: 51.8479, Longitude: -0.4474}},
	} {
		got, ok := db.Lookup(tc.admin, tc.postal)
		if !ok {
			t.Errorf("%v %v: not found", tc.admin, tc.postal)
			continue
		}
		if got != tc.want {
			t.Errorf("got %v, want %v", got, tc.want)
		}
	}
	if _, ok := db.Lookup("ENG", "AL3 8QF"); ok {
		t.Errorf("expected not to find AL3 8QF")
	}
}

func TestLoadErrors(t *testing.T) {
	for _, data := range []string{
		"US\t99553\tAkutan\n",
		"US	99553	Akutan	Alaska	AK	Aleutians East	013			north	-165.7854	1\n",
		"US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	-365.7854	1\n",
	} {
		if err := places.NewDB().Load([]byte(data)); err == nil {
			t.Errorf("%q: expected an error", data)
		}
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "postal.txt")
	if err := os.WriteFile(filename, []byte(sampleData), 0600); err != nil {
		t.Fatal(err)
	}
	db := places.NewDB()
	if err := db.LoadFile(ctx, filename); err != nil {
		t.Fatal(err)
	}
	p, err := db.Resolve("37.3229978, -122.0321823")
	if err != nil {
		t.Fatal(err)
	}
	if p.Latitude != 37.3229978 || p.Longitude != -122.0321823 {
		t.Errorf("unexpected place: %v", p)
	}
	p, err = db.Resolve("AK 99553")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Name, "Akutan"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, spec := range []string{"nowhere", "AK 00000", "91,0", "0,181"} {
		if _, err := db.Resolve(spec); err == nil {
			t.Errorf("%q: expected an error", spec)
		}
	}
}
