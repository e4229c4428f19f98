// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annotation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/mlm/diag"
)

// ReadTSV reads a node-region mapping
// from a TSV file without header.
// Each row contains a node name
// and its region.
//
// Here is an example file:
//
//	NODE_0000000	Asia
//	NODE_0000001	Asia
//	Homo sapiens	Africa
//
// The input name is used to identify the input
// in error messages.
func ReadTSV(r io.Reader, input string) (*Map, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = 2
	tab.LazyQuotes = true

	m := New()
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

		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, &diag.ParseError{Input: input, Line: ln, Err: errors.New("empty node name")}
		}
		region := strings.TrimSpace(row[1])
		if region == "" {
			return nil, &diag.ParseError{Input: input, Line: ln, Err: fmt.Errorf("node %q: empty region", name)}
		}
		m.Set(name, region)
	}
	return m, nil
}

// TSV writes a node-region mapping as a TSV file.
func (m *Map) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	for _, n := range m.names {
		row := []string{
			n,
			m.region[n],
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
