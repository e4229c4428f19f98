// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package migration

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Types of rows in a TSV report.
const (
	TotalRow  = "total"
	LocalRow  = "local"
	SourceRow = "source"
	OriginRow = "origin"
)

// TSV writes the statistics as a TSV file.
//
// The TSV file contains the following fields:
//
//   - region, the name of the region
//   - type, the kind of weight,
//     either "total", "local", "source",
//     or "origin" for the weight of the root
//   - source, the region of the parent
//     (only for "source" rows)
//   - weight, the weight value
//
// Here is an example file:
//
//	region	type	source	weight
//	Region1	total		3.000000
//	Region1	local		1.000000
//	Region1	origin		2.000000
//	Region2	total		1.000000
//	Region2	local		0.000000
//	Region2	source	Region1	1.000000
func (s Stats) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"region", "type", "source", "weight"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, r := range s.Regions() {
		reg := s[r]
		rows := [][]string{
			{r, TotalRow, "", strconv.FormatFloat(reg.Total, 'f', 6, 64)},
			{r, LocalRow, "", strconv.FormatFloat(reg.Local, 'f', 6, 64)},
		}
		for _, src := range reg.sources() {
			rows = append(rows, []string{r, SourceRow, src, strconv.FormatFloat(reg.Sources[src], 'f', 6, 64)})
		}
		if reg.Origin != 0 {
			rows = append(rows, []string{r, OriginRow, "", strconv.FormatFloat(reg.Origin, 'f', 6, 64)})
		}
		if err := tab.WriteAll(rows); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

type yamlRegion struct {
	Region  string             `yaml:"region"`
	Total   float64            `yaml:"total"`
	Local   float64            `yaml:"local"`
	Sources map[string]float64 `yaml:"sources"`
	Origin  float64            `yaml:"origin,omitempty"`
}

// YAML writes the statistics as a YAML document.
//
// Here is an example output:
//
//	- region: Region1
//	  total: 3
//	  local: 1
//	  sources: {}
//	  origin: 2
//	- region: Region2
//	  total: 1
//	  local: 0
//	  sources:
//	    Region1: 1
func (s Stats) YAML(w io.Writer) error {
	regions := s.Regions()
	doc := make([]yamlRegion, 0, len(regions))
	for _, r := range regions {
		reg := s[r]
		doc = append(doc, yamlRegion{
			Region:  r,
			Total:   reg.Total,
			Local:   reg.Local,
			Sources: reg.Sources,
			Origin:  reg.Origin,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// Log writes the statistics as human readable lines,
// one for each region.
func (s Stats) Log(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Spread probabilities by region:\n")
	for _, r := range s.Regions() {
		reg := s[r]
		src := make([]string, 0, len(reg.Sources))
		for _, sr := range reg.sources() {
			src = append(src, fmt.Sprintf("%s: %.6f", sr, reg.Sources[sr]))
		}
		fmt.Fprintf(bw, "Region: %s, Total Weight: %.6f, Local Weight: %.6f, Sources: {%s}\n", r, reg.Total, reg.Local, strings.Join(src, ", "))
	}
	return bw.Flush()
}

func (r *Region) sources() []string {
	src := make([]string, 0, len(r.Sources))
	for s := range r.Sources {
		src = append(src, s)
	}
	slices.Sort(src)
	return src
}
