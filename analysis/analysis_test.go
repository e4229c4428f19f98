// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package analysis_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/mlm/analysis"
	"github.com/js-arias/mlm/annotation"
	"github.com/js-arias/mlm/confidence"
	"github.com/js-arias/mlm/diag"
	"github.com/js-arias/mlm/migration"
	"github.com/js-arias/mlm/tree"
)

func TestRun(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("(A:0.1,B:0.2)C;"), "tree")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	m, err := annotation.ReadTSV(strings.NewReader("A\tRegion1\nB\tRegion2\nC\tRegion1\nX\tRegion3\n"), "annotations")
	if err != nil {
		t.Fatalf("unable to read annotations: %v", err)
	}
	conf, err := confidence.ReadTSV(strings.NewReader("name\n"), "confidence")
	if err != nil {
		t.Fatalf("unable to read confidence: %v", err)
	}

	res, err := analysis.Run(tr, m, conf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := migration.Stats{
		"Region1": {Total: 3, Local: 1, Origin: 2},
		"Region2": {Total: 1, Sources: map[string]float64{"Region1": 1}},
		"Region3": {},
	}
	if diff := cmp.Diff(want, res.Stats, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	warns := []diag.Warning{
		{Kind: diag.UnmatchedName, Node: "X"},
		{Kind: diag.MissingRegion, Region: "Region1"},
		{Kind: diag.MissingRegion, Region: "Region2"},
	}
	if diff := cmp.Diff(warns, res.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestRunConfidence(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("((A,B)D,C)E;"), "tree")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	m := annotation.New()
	m.Set("A", "Asia")
	m.Set("B", "Asia")
	m.Set("C", "Europe")
	m.Set("D", "Asia")
	m.Set("E", "Europe")

	conf := confidence.New()
	conf.Set("A", "Asia", 0.5)
	conf.Set("B", "Asia", 1)
	conf.Set("C", "Europe", 1)
	conf.Set("D", "Asia", 0.5)
	conf.Set("E", "Europe", 0.5)

	res, err := analysis.Run(tr, m, conf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	// D = 0.5 * (0.5 + 1) = 0.75
	// E = 0.5 * (0.75 + 1) = 0.875
	want := migration.Stats{
		"Asia":   {Total: 2.25, Local: 1.5, Sources: map[string]float64{"Europe": 0.75}},
		"Europe": {Total: 1.875, Local: 1, Origin: 0.875},
	}
	if diff := cmp.Diff(want, res.Stats, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestRunError(t *testing.T) {
	res, err := analysis.Run(&tree.Tree{}, annotation.New(), confidence.New())
	var se *diag.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("got error %v, want a structural error", err)
	}
	if res != nil {
		t.Errorf("got result %v, want nil", res)
	}
}
