// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diag_test

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/mlm/diag"
)

func TestLog(t *testing.T) {
	log := diag.NewLog()
	log.Warn(diag.Warning{Kind: diag.MissingRegion, Region: "Asia"})
	log.Warn(diag.Warning{Kind: diag.MissingNode, Node: "A", Region: "Europe"})
	log.Warn(diag.Warning{Kind: diag.MissingRegion, Region: "Asia"})
	log.Warn(diag.Warning{Kind: diag.UnmatchedName, Node: "X"})

	want := []diag.Warning{
		{Kind: diag.MissingRegion, Region: "Asia"},
		{Kind: diag.MissingNode, Node: "A", Region: "Europe"},
		{Kind: diag.UnmatchedName, Node: "X"},
	}
	if g := log.Warnings(); !reflect.DeepEqual(g, want) {
		t.Errorf("warnings: got %v, want %v", g, want)
	}

	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("log lines: got %d, want %d", len(lines), len(want))
	}
	for i, ln := range lines {
		if !strings.HasPrefix(ln, "WARNING: ") {
			t.Errorf("line %d: got %q, want prefix %q", i, ln, "WARNING: ")
		}
	}
}

func TestNilLog(t *testing.T) {
	var log *diag.Log
	log.Warn(diag.Warning{Kind: diag.MissingRegion, Region: "Asia"})
	if log.Len() != 0 {
		t.Errorf("nil log: got %d warnings", log.Len())
	}
}

func TestParseError(t *testing.T) {
	var err error = &diag.ParseError{Input: "tree.nwk", Line: 3, Err: io.ErrUnexpectedEOF}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("parse error does not unwrap")
	}
	want := "parse error: tree.nwk: on line 3: unexpected EOF"
	if g := err.Error(); g != want {
		t.Errorf("message: got %q, want %q", g, want)
	}
}
