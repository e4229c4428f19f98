// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package confidence_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/mlm/confidence"
	"github.com/js-arias/mlm/diag"
)

func TestTable(t *testing.T) {
	tab := newTable()
	testTable(t, "table", tab)
}

func TestTSV(t *testing.T) {
	tab := newTable()

	var w bytes.Buffer
	if err := tab.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nt, err := confidence.ReadTSV(strings.NewReader(w.String()), "test")
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testTable(t, "tsv", nt)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"column count": "name\tRegion1\tRegion2\nA\t0.5\n",
		"non-numeric":  "name\tRegion1\nA\thigh\n",
		"negative":     "name\tRegion1\nA\t-0.5\n",
		"repeated":     "name\tRegion1\nA\t0.5\nA\t0.2\n",
		"region":       "name\tRegion1\tRegion1\nA\t0.5\t0.2\n",
	}
	for name, in := range tests {
		_, err := confidence.ReadTSV(strings.NewReader(in), name)
		var pe *diag.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: got error %v, want a parse error", name, err)
		}
	}
}

func TestEmpty(t *testing.T) {
	tab, err := confidence.ReadTSV(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatalf("unable to read empty table: %v", err)
	}

	log := diag.NewLog()
	for _, n := range []string{"A", "B", "C"} {
		if v := tab.Lookup(n, "Region1", log); v != confidence.Default {
			t.Errorf("node %q: got %.6f, want %.6f", n, v, confidence.Default)
		}
	}

	// a single warning for the missing region
	want := []diag.Warning{{Kind: diag.MissingRegion, Region: "Region1"}}
	if g := log.Warnings(); !reflect.DeepEqual(g, want) {
		t.Errorf("warnings: got %v, want %v", g, want)
	}
}

func TestLookupDefaults(t *testing.T) {
	tab := newTable()
	log := diag.NewLog()

	if v := tab.Lookup("X", "Asia", log); v != confidence.Default {
		t.Errorf("missing node: got %.6f, want %.6f", v, confidence.Default)
	}
	if v := tab.Lookup("A", "Oceania", log); v != confidence.Default {
		t.Errorf("missing region: got %.6f, want %.6f", v, confidence.Default)
	}
	tab.Lookup("B", "Oceania", log)

	want := []diag.Warning{
		{Kind: diag.MissingNode, Node: "X", Region: "Asia"},
		{Kind: diag.MissingRegion, Region: "Oceania"},
	}
	if g := log.Warnings(); !reflect.DeepEqual(g, want) {
		t.Errorf("warnings: got %v, want %v", g, want)
	}
}

func newTable() *confidence.Table {
	tab := confidence.New()

	tab.Set("A", "Africa", 0.8)
	tab.Set("A", "Asia", 0.2)
	tab.Set("B", "Africa", 0.1)
	tab.Set("B", "Asia", 0.9)
	tab.Set("C", "Africa", 0.5)
	tab.Set("C", "Asia", 0.5)
	return tab
}

func testTable(t testing.TB, name string, tab *confidence.Table) {
	t.Helper()

	nodes := []string{"A", "B", "C"}
	if g := tab.Nodes(); !reflect.DeepEqual(g, nodes) {
		t.Errorf("%s: nodes: got %v, want %v", name, g, nodes)
	}
	regions := []string{"Africa", "Asia"}
	if g := tab.Regions(); !reflect.DeepEqual(g, regions) {
		t.Errorf("%s: regions: got %v, want %v", name, g, regions)
	}

	vals := map[string]map[string]float64{
		"A": {"Africa": 0.8, "Asia": 0.2},
		"B": {"Africa": 0.1, "Asia": 0.9},
		"C": {"Africa": 0.5, "Asia": 0.5},
	}
	log := diag.NewLog()
	for n, rs := range vals {
		for r, w := range rs {
			if g := tab.Lookup(n, r, log); g != w {
				t.Errorf("%s: confidence of %q in %q: got %.6f, want %.6f", name, n, r, g, w)
			}
		}
	}
	if log.Len() > 0 {
		t.Errorf("%s: unexpected warnings:\n%s", name, log)
	}
}
