// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package confidence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/mlm/diag"
)

// ReadTSV reads a confidence table from a TSV file.
//
// The first row is the header.
// The first column contains the node names,
// and each of the other columns is a region.
// Values must be non-negative numbers.
// A leading '#' in the header is ignored,
// as in the confidence files produced by TreeTime.
//
// Here is an example file:
//
//	#name	Africa	Asia	Europe
//	NODE_0000001	0.80	0.15	0.05
//	NODE_0000002	0.10	0.85	0.05
//
// The input name is used to identify the input
// in error messages.
func ReadTSV(r io.Reader, input string) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'

	head, err := tab.Read()
	if errors.Is(err, io.EOF) {
		return New(), nil
	}
	if err != nil {
		return nil, &diag.ParseError{Input: input, Line: 1, Err: fmt.Errorf("while reading header: %v", err)}
	}
	regions := make([]string, 0, len(head)-1)
	seen := make(map[string]bool, len(head))
	for _, h := range head[1:] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, &diag.ParseError{Input: input, Line: 1, Err: errors.New("empty region name in header")}
		}
		if seen[h] {
			return nil, &diag.ParseError{Input: input, Line: 1, Err: fmt.Errorf("repeated region %q", h)}
		}
		seen[h] = true
		regions = append(regions, h)
	}

	t := New()
	for _, r := range regions {
		t.AddRegion(r)
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				return nil, &diag.ParseError{Input: input, Line: ce.Line, Err: ce.Err}
			}
			return nil, &diag.ParseError{Input: input, Err: err}
		}
		ln, _ := tab.FieldPos(0)

		node := strings.TrimSpace(row[0])
		if node == "" {
			return nil, &diag.ParseError{Input: input, Line: ln, Err: errors.New("empty node name")}
		}
		if _, dup := t.nodes[node]; dup {
			return nil, &diag.ParseError{Input: input, Line: ln, Err: fmt.Errorf("repeated node %q", node)}
		}
		for i, r := range regions {
			s := strings.TrimSpace(row[i+1])
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &diag.ParseError{Input: input, Line: ln, Err: fmt.Errorf("region %q: %v", r, err)}
			}
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &diag.ParseError{Input: input, Line: ln, Err: fmt.Errorf("region %q: invalid confidence %q", r, s)}
			}
			t.Set(node, r, v)
		}
		if len(regions) == 0 {
			t.nodes[node] = make(map[string]float64)
		}
	}
	return t, nil
}

// TSV writes a confidence table as a TSV file.
// Undefined values are written as Default.
func (t *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	regions := t.Regions()
	header := append([]string{"#name"}, regions...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, n := range t.Nodes() {
		row := make([]string, 0, len(regions)+1)
		row = append(row, n)
		for _, r := range regions {
			v, ok := t.nodes[n][r]
			if !ok {
				v = Default
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
