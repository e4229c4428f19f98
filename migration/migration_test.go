// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package migration_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/mlm/confidence"
	"github.com/js-arias/mlm/migration"
	"github.com/js-arias/mlm/tree"
	"github.com/js-arias/mlm/weight"
	"gopkg.in/yaml.v3"
)

// scenario returns the tree (A,B)C
// with A and C in Region1,
// and B in Region2.
func scenario(t testing.TB) *tree.Tree {
	t.Helper()

	tr, err := tree.New([]string{"C", "A", "B"}, []tree.Edge{
		{Child: "A", Parent: "C"},
		{Child: "B", Parent: "C"},
	})
	if err != nil {
		t.Fatalf("unable to build tree: %v", err)
	}
	tr.SetRegion("A", "Region1")
	tr.SetRegion("B", "Region2")
	tr.SetRegion("C", "Region1")

	if err := weight.Compute(tr, confidence.New(), nil); err != nil {
		t.Fatalf("compute: %v", err)
	}
	return tr
}

func TestAggregate(t *testing.T) {
	s, err := migration.Aggregate(scenario(t))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	want := migration.Stats{
		"Region1": {
			Total:  3,
			Local:  1,
			Origin: 2,
		},
		"Region2": {
			Total:   1,
			Sources: map[string]float64{"Region1": 1},
		},
	}
	if diff := cmp.Diff(want, s, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	for _, r := range s.Regions() {
		if g := s.Residual(r); g != s[r].Origin {
			t.Errorf("residual of %q: got %.6f, want %.6f", r, g, s[r].Origin)
		}
	}
}

func TestConservation(t *testing.T) {
	names := []string{"R", "N1", "N2", "N3", "A", "B", "C", "D", "E"}
	edges := []tree.Edge{
		{Child: "N1", Parent: "R"},
		{Child: "N2", Parent: "R"},
		{Child: "A", Parent: "N1"},
		{Child: "N3", Parent: "N1"},
		{Child: "B", Parent: "N3"},
		{Child: "C", Parent: "N3"},
		{Child: "D", Parent: "N2"},
		{Child: "E", Parent: "N2"},
	}
	tr, err := tree.New(names, edges)
	if err != nil {
		t.Fatalf("unable to build tree: %v", err)
	}
	regions := map[string]string{
		"R":  "Asia",
		"N1": "Asia",
		"N2": "Europe",
		"N3": "Africa",
		"A":  "Asia",
		"B":  "Africa",
		"C":  "Europe",
		"D":  "Europe",
		"E":  "Asia",
	}
	conf := confidence.New()
	for i, n := range names {
		tr.SetRegion(n, regions[n])
		conf.Set(n, regions[n], 0.3+0.07*float64(i))
	}
	if err := weight.Compute(tr, conf, nil); err != nil {
		t.Fatalf("compute: %v", err)
	}

	s, err := migration.Aggregate(tr)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	root := tr.Weight("R")
	for _, r := range []string{"Africa", "Asia", "Europe"} {
		want := 0.0
		if r == regions["R"] {
			want = root
		}
		if g := s.Residual(r); math.Abs(g-want) > 1e-12 {
			t.Errorf("residual of %q: got %v, want %v", r, g, want)
		}
	}

	// the weight arriving from a region
	// equals the weight of the children
	// of the nodes of that region
	// in a different region.
	fromAsia := tr.Weight("N2")
	if g := s["Europe"].Sources["Asia"]; g != fromAsia {
		t.Errorf("Europe from Asia: got %v, want %v", g, fromAsia)
	}
	if g := s["Africa"].Inflow(); g != tr.Weight("N3") {
		t.Errorf("Africa inflow: got %v, want %v", g, tr.Weight("N3"))
	}
}

func TestDeterminism(t *testing.T) {
	var prev string
	for i := 0; i < 5; i++ {
		s, err := migration.Aggregate(scenario(t))
		if err != nil {
			t.Fatalf("aggregate: %v", err)
		}
		var w bytes.Buffer
		if err := s.TSV(&w); err != nil {
			t.Fatalf("unable to write TSV data: %v", err)
		}
		if i > 0 && w.String() != prev {
			t.Fatalf("run %d: got\n%s\nwant\n%s", i, w.String(), prev)
		}
		prev = w.String()
	}
}

func TestNoWeights(t *testing.T) {
	tr, err := tree.New([]string{"C", "A", "B"}, []tree.Edge{
		{Child: "A", Parent: "C"},
		{Child: "B", Parent: "C"},
	})
	if err != nil {
		t.Fatalf("unable to build tree: %v", err)
	}
	if _, err := migration.Aggregate(tr); !errors.Is(err, migration.ErrNoWeights) {
		t.Errorf("got error %v, want %v", err, migration.ErrNoWeights)
	}
}

func TestTSV(t *testing.T) {
	s, err := migration.Aggregate(scenario(t))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	var w bytes.Buffer
	if err := s.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}

	want := "region\ttype\tsource\tweight\r\n" +
		"Region1\ttotal\t\t3.000000\r\n" +
		"Region1\tlocal\t\t1.000000\r\n" +
		"Region1\torigin\t\t2.000000\r\n" +
		"Region2\ttotal\t\t1.000000\r\n" +
		"Region2\tlocal\t\t0.000000\r\n" +
		"Region2\tsource\tRegion1\t1.000000\r\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("TSV mismatch (-want +got):\n%s", diff)
	}
}

func TestLog(t *testing.T) {
	s, err := migration.Aggregate(scenario(t))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	var w bytes.Buffer
	if err := s.Log(&w); err != nil {
		t.Fatalf("unable to write log: %v", err)
	}

	want := "Spread probabilities by region:\n" +
		"Region: Region1, Total Weight: 3.000000, Local Weight: 1.000000, Sources: {}\n" +
		"Region: Region2, Total Weight: 1.000000, Local Weight: 0.000000, Sources: {Region1: 1.000000}\n"
	if diff := cmp.Diff(want, w.String()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	s, err := migration.Aggregate(scenario(t))
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	var w bytes.Buffer
	if err := s.YAML(&w); err != nil {
		t.Fatalf("unable to write YAML data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	var doc []struct {
		Region  string             `yaml:"region"`
		Total   float64            `yaml:"total"`
		Local   float64            `yaml:"local"`
		Sources map[string]float64 `yaml:"sources"`
		Origin  float64            `yaml:"origin"`
	}
	if err := yaml.Unmarshal(w.Bytes(), &doc); err != nil {
		t.Fatalf("unable to decode YAML data: %v", err)
	}
	if len(doc) != 2 {
		t.Fatalf("regions: got %d, want %d", len(doc), 2)
	}
	if doc[0].Region != "Region1" || doc[0].Total != 3 || doc[0].Origin != 2 {
		t.Errorf("region 1: got %+v", doc[0])
	}
	if doc[1].Region != "Region2" || doc[1].Sources["Region1"] != 1 {
		t.Errorf("region 2: got %+v", doc[1])
	}
}
